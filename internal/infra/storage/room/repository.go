package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/GH-BookingService/internal/domain"
	"github.com/m04kA/GH-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GH-BookingService/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

var roomColumns = []string{
	"id",
	"number",
	"name",
	"type",
	"description",
	"price",
	"has_ac",
	"capacity",
	"image",
	"is_available",
}

// Repository репозиторий для работы с комнатами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все комнаты в порядке создания (id ASC)
func (r *Repository) List(ctx context.Context) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

// ListAvailable возвращает комнаты, доступные для проживания в окне
// [checkIn, checkOut) с учетом опциональных фильтров.
//
// Комната попадает в выдачу, если:
// - она административно доступна (is_available = true)
// - она проходит заданные фильтры (type / max price / AC)
// - у нее нет ни одного бронирования, пересекающегося с окном
//
// Множество занятых комнат вычисляется одним подзапросом, а не
// проверкой каждой комнаты в цикле.
func (r *Repository) ListAvailable(ctx context.Context, checkIn, checkOut time.Time, filter domain.RoomFilter) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"is_available": true})

	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.MaxPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"price": *filter.MaxPrice})
	}
	if filter.HasAC != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"has_ac": *filter.HasAC})
	}

	// Исключаем комнаты с пересекающимся бронированием.
	// Полуоткрытые интервалы: check_in_date < конец окна AND check_out_date > начало окна.
	selectBuilder = selectBuilder.
		Where(squirrel.Expr(
			"id NOT IN (SELECT room_id FROM bookings WHERE check_in_date < ? AND check_out_date > ?)",
			checkOut, checkIn,
		)).
		OrderBy("id ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByNumber получает комнату по уникальному человекочитаемому номеру
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	return r.getOne(ctx, squirrel.Eq{"number": number}, "GetByNumber")
}

// Create создает новую комнату
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"number",
			"name",
			"type",
			"description",
			"price",
			"has_ac",
			"capacity",
			"image",
			"is_available",
		).
		Values(
			room.Number,
			room.Name,
			room.Type,
			room.Description,
			room.Price,
			room.HasAC,
			room.Capacity,
			room.Image,
			room.IsAvailable,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.ID)
	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return nil, ErrRoomNumberTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return room, nil
}

// Update частично обновляет комнату, nil-поля update не изменяются
func (r *Repository) Update(ctx context.Context, id int64, update domain.RoomUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("rooms").Where(squirrel.Eq{"id": id})

	if update.Number != nil {
		updateBuilder = updateBuilder.Set("number", *update.Number)
	}
	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
	}
	if update.Type != nil {
		updateBuilder = updateBuilder.Set("type", *update.Type)
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
	}
	if update.Price != nil {
		updateBuilder = updateBuilder.Set("price", *update.Price)
	}
	if update.HasAC != nil {
		updateBuilder = updateBuilder.Set("has_ac", *update.HasAC)
	}
	if update.Capacity != nil {
		updateBuilder = updateBuilder.Set("capacity", *update.Capacity)
	}
	if update.Image != nil {
		updateBuilder = updateBuilder.Set("image", *update.Image)
	}
	if update.IsAvailable != nil {
		updateBuilder = updateBuilder.Set("is_available", *update.IsAvailable)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return ErrRoomNumberTaken
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// Delete удаляет комнату. Если на комнату ссылаются бронирования,
// удаление блокируется внешним ключом (restrict-delete).
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isPQError(err, pqForeignKeyViolation) {
			return ErrRoomHasBookings
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// getOne выполняет выборку одной комнаты по условию
func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Number,
		&room.Name,
		&room.Type,
		&room.Description,
		&room.Price,
		&room.HasAC,
		&room.Capacity,
		&room.Image,
		&room.IsAvailable,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan room: %v", ErrScanRow, op, err)
	}

	return &room, nil
}

// scanRooms сканирует результаты запроса в слайс комнат
func (r *Repository) scanRooms(rows *sql.Rows) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0)

	for rows.Next() {
		var room domain.Room

		err := rows.Scan(
			&room.ID,
			&room.Number,
			&room.Name,
			&room.Type,
			&room.Description,
			&room.Price,
			&room.HasAC,
			&room.Capacity,
			&room.Image,
			&room.IsAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRooms - scan row: %v", ErrScanRow, err)
		}

		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRooms - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// isPQError проверяет код ошибки PostgreSQL
func isPQError(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}
