package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GH-BookingService/internal/domain"
	"github.com/m04kA/GH-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GH-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"room_id",
	"name",
	"address",
	"id_number",
	"phone",
	"purpose",
	"check_in_date",
	"check_in_time",
	"check_out_date",
	"check_out_time",
	"total_amount",
	"advance_amount",
	"is_paid",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями.
// Репозиторий не следит за инвариантом "нет пересекающихся бронирований" -
// это ответственность слоя выше (availability service / create_booking usecase).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все бронирования, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("check_in_date DESC, id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.Name,
		&booking.Address,
		&booking.IDNumber,
		&booking.Phone,
		&booking.Purpose,
		&booking.CheckInDate,
		&booking.CheckInTime,
		&booking.CheckOutDate,
		&booking.CheckOutTime,
		&booking.TotalAmount,
		&booking.AdvanceAmount,
		&booking.IsPaid,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// GetByRoomID получает все бронирования комнаты.
//
// Если вызов происходит внутри транзакции, строки блокируются FOR UPDATE -
// так последовательность "проверить доступность, затем создать" в
// create_booking usecase защищена от конкурентной вставки для той же комнаты.
func (r *Repository) GetByRoomID(ctx context.Context, roomID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("check_in_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByDateRange получает бронирования, пересекающиеся с окном [from, to).
// Полуоткрытая семантика: бронирование с выездом ровно в from не попадает.
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Lt{"check_in_date": to}).
		Where(squirrel.Gt{"check_out_date": from}).
		OrderBy("check_in_date ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Create создает новое бронирование.
// created_at/updated_at выставляются базой и возвращаются в booking.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"room_id",
			"name",
			"address",
			"id_number",
			"phone",
			"purpose",
			"check_in_date",
			"check_in_time",
			"check_out_date",
			"check_out_time",
			"total_amount",
			"advance_amount",
			"is_paid",
		).
		Values(
			booking.RoomID,
			booking.Name,
			booking.Address,
			booking.IDNumber,
			booking.Phone,
			booking.Purpose,
			booking.CheckInDate,
			booking.CheckInTime,
			booking.CheckOutDate,
			booking.CheckOutTime,
			booking.TotalAmount,
			booking.AdvanceAmount,
			booking.IsPaid,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// Update частично обновляет бронирование, nil-поля update не изменяются.
// updated_at обновляется всегда.
func (r *Repository) Update(ctx context.Context, id int64, update domain.BookingUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
	}
	if update.Address != nil {
		updateBuilder = updateBuilder.Set("address", *update.Address)
	}
	if update.IDNumber != nil {
		updateBuilder = updateBuilder.Set("id_number", *update.IDNumber)
	}
	if update.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", *update.Phone)
	}
	if update.Purpose != nil {
		updateBuilder = updateBuilder.Set("purpose", *update.Purpose)
	}
	if update.CheckInTime != nil {
		updateBuilder = updateBuilder.Set("check_in_time", *update.CheckInTime)
	}
	if update.CheckOutTime != nil {
		updateBuilder = updateBuilder.Set("check_out_time", *update.CheckOutTime)
	}
	if update.TotalAmount != nil {
		updateBuilder = updateBuilder.Set("total_amount", *update.TotalAmount)
	}
	if update.AdvanceAmount != nil {
		updateBuilder = updateBuilder.Set("advance_amount", *update.AdvanceAmount)
	}
	if update.IsPaid != nil {
		updateBuilder = updateBuilder.Set("is_paid", *update.IsPaid)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление).
// Отмена в этой системе - это hard delete без сохранения истории,
// как и в исходной реализации.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.RoomID,
			&booking.Name,
			&booking.Address,
			&booking.IDNumber,
			&booking.Phone,
			&booking.Purpose,
			&booking.CheckInDate,
			&booking.CheckInTime,
			&booking.CheckOutDate,
			&booking.CheckOutTime,
			&booking.TotalAmount,
			&booking.AdvanceAmount,
			&booking.IsPaid,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
