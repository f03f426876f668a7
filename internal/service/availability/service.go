package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
	"github.com/m04kA/GH-BookingService/internal/service/availability/models"
	roomsModels "github.com/m04kA/GH-BookingService/internal/service/rooms/models"
)

// Service сервис проверки доступности комнат по датам.
//
// Доступность по датам не связана с административным флагом is_available:
// здесь решается только вопрос "есть ли пересекающееся бронирование".
type Service struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	logger       Logger
	queryTimeout time.Duration
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	logger Logger,
	queryTimeout time.Duration,
) *Service {
	return &Service{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
		queryTimeout: queryTimeout,
	}
}

// IsRoomAvailable возвращает true, если у комнаты нет ни одного бронирования,
// пересекающегося с окном [checkIn, checkOut).
//
// Проверяются ВСЕ бронирования комнаты, без предварительной фильтрации -
// корректность инварианта "нет двойных бронирований" важнее экономии на скане.
func (s *Service) IsRoomAvailable(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	if !checkIn.Before(checkOut) {
		return false, ErrInvalidDateRange
	}

	bookings, err := s.bookingRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		return false, s.mapStorageError("IsRoomAvailable", err)
	}

	for _, b := range bookings {
		if b.OverlapsWindow(checkIn, checkOut) {
			return false, nil
		}
	}

	return true, nil
}

// GetRoomAvailability возвращает доступность каждой комнаты для окна
// [checkIn, checkOut). В ответе ровно одна запись на каждую существующую
// комнату, порядок совпадает с порядком создания комнат.
func (s *Service) GetRoomAvailability(ctx context.Context, checkIn, checkOut time.Time) (*models.RoomAvailabilityResponse, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, s.mapStorageError("GetRoomAvailability", err)
	}

	entries := make([]domain.RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		available, err := s.IsRoomAvailable(ctx, room.ID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.RoomAvailability{
			RoomID:      room.ID,
			IsAvailable: available,
		})
	}

	s.logger.Info("GetRoomAvailability: evaluated %d rooms for window %s - %s",
		len(entries), checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))

	return models.FromDomainAvailability(entries), nil
}

// GetAvailableRooms возвращает комнаты, которые административно доступны,
// проходят фильтры и не имеют пересекающихся бронирований в окне.
// Множество занятых комнат вычисляется одним запросом в репозитории,
// а не циклом по комнатам.
func (s *Service) GetAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, filter *RoomFilterRequest) (*roomsModels.RoomListResponse, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}

	domainFilter, err := filter.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAvailableRooms: invalid filter: %v", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	rooms, err := s.roomRepo.ListAvailable(ctx, checkIn, checkOut, domainFilter)
	if err != nil {
		return nil, s.mapStorageError("GetAvailableRooms", err)
	}

	s.logger.Info("GetAvailableRooms: %d rooms available for window %s - %s",
		len(rooms), checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))

	return roomsModels.FromDomainRoomList(rooms), nil
}

// RoomFilterRequest опциональные фильтры выборки доступных комнат
type RoomFilterRequest struct {
	Type     *string
	MaxPrice *float64
	HasAC    *bool
}

// ToDomainFilter конвертирует фильтр в domain.RoomFilter с валидацией типа
func (f *RoomFilterRequest) ToDomainFilter() (domain.RoomFilter, error) {
	if f == nil {
		return domain.RoomFilter{}, nil
	}

	filter := domain.RoomFilter{
		MaxPrice: f.MaxPrice,
		HasAC:    f.HasAC,
	}

	if f.Type != nil {
		t := domain.RoomType(*f.Type)
		if !t.IsValid() {
			return domain.RoomFilter{}, fmt.Errorf("%w: %q", ErrInvalidRoomType, *f.Type)
		}
		filter.Type = &t
	}

	return filter, nil
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
