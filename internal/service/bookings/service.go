package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "github.com/m04kA/GH-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/GH-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями.
// Создание нового бронирования идет через create_booking usecase,
// потому что требует транзакционной проверки доступности.
type Service struct {
	bookingRepo  BookingRepository
	siteClient   SiteClient
	logger       Logger
	queryTimeout time.Duration
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	siteClient SiteClient,
	logger Logger,
	queryTimeout time.Duration,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		siteClient:   siteClient,
		logger:       logger,
		queryTimeout: queryTimeout,
	}
}

// List возвращает все бронирования
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, s.mapStorageError("List", err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		return nil, s.mapStorageError("GetByID", err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByRoom возвращает все бронирования комнаты
func (s *Service) GetByRoom(ctx context.Context, roomID int64) (*models.BookingListResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	bookings, err := s.bookingRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		return nil, s.mapStorageError("GetByRoom", err)
	}

	s.logger.Info("GetByRoom: fetched %d bookings for room=%d", len(bookings), roomID)
	return models.FromDomainBookingList(bookings), nil
}

// GetByDateRange возвращает бронирования, пересекающиеся с окном [from, to)
func (s *Service) GetByDateRange(ctx context.Context, from, to time.Time) (*models.BookingListResponse, error) {
	if !from.Before(to) {
		return nil, ErrInvalidDateRange
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	bookings, err := s.bookingRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		return nil, s.mapStorageError("GetByDateRange", err)
	}

	s.logger.Info("GetByDateRange: fetched %d bookings for window %s - %s",
		len(bookings), from.Format("2006-01-02"), to.Format("2006-01-02"))
	return models.FromDomainBookingList(bookings), nil
}

// Update частично обновляет бронирование (данные гостя, суммы, флаг оплаты).
// Возвращает обновленное бронирование.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid request for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: empty update", ErrInvalidInput)
	}

	if update.TotalAmount != nil && *update.TotalAmount < 0 {
		return nil, fmt.Errorf("%w: totalAmount must be non-negative", ErrInvalidInput)
	}
	if update.AdvanceAmount != nil && *update.AdvanceAmount < 0 {
		return nil, fmt.Errorf("%w: advanceAmount must be non-negative", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.bookingRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		return nil, s.mapStorageError("Update", err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapStorageError("Update", err)
	}

	s.logger.Info("Update: booking id=%d updated", id)
	s.siteClient.RevalidateGuesthouse(ctx)

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование. Отмена - это hard delete, как в исходной
// системе; истории отмен не остается. Возвращает удаленное бронирование.
// Повторная отмена того же ID отдает ErrBookingNotFound.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		return nil, s.mapStorageError("Cancel", err)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Конкурентная отмена успела первой
			s.logger.Warn("Cancel: booking id=%d already deleted", id)
			return nil, ErrBookingNotFound
		}
		return nil, s.mapStorageError("Cancel", err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled (room=%d, %s - %s)",
		id, booking.RoomID,
		booking.CheckInDate.Format("2006-01-02"), booking.CheckOutDate.Format("2006-01-02"))
	s.siteClient.RevalidateGuesthouse(ctx)

	return models.FromDomainBooking(booking), nil
}

// mapStorageError переводит ошибки хранилища в ошибки сервиса
func (s *Service) mapStorageError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		s.logger.Error("%s: storage timeout: %v", op, err)
		return fmt.Errorf("%w: %s", ErrStorageUnavailable, op)
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
