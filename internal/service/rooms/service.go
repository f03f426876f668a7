package rooms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
	roomRepo "github.com/m04kA/GH-BookingService/internal/infra/storage/room"
	"github.com/m04kA/GH-BookingService/internal/service/rooms/models"
)

// Service сервис для работы с комнатами
type Service struct {
	roomRepo     RoomRepository
	siteClient   SiteClient
	logger       Logger
	queryTimeout time.Duration
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	roomRepo RoomRepository,
	siteClient SiteClient,
	logger Logger,
	queryTimeout time.Duration,
) *Service {
	return &Service{
		roomRepo:     roomRepo,
		siteClient:   siteClient,
		logger:       logger,
		queryTimeout: queryTimeout,
	}
}

// List возвращает все комнаты в порядке создания
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, s.mapStorageError("List", err)
	}

	s.logger.Info("List: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		return nil, s.mapStorageError("GetByID", err)
	}

	return models.FromDomainRoom(room), nil
}

// GetByNumber получает комнату по человекочитаемому номеру
func (s *Service) GetByNumber(ctx context.Context, number string) (*models.RoomResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	room, err := s.roomRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByNumber: room number=%s not found", number)
			return nil, ErrRoomNotFound
		}
		return nil, s.mapStorageError("GetByNumber", err)
	}

	return models.FromDomainRoom(room), nil
}

// Create создает новую комнату
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	room := &domain.Room{
		Number:      req.Number,
		Name:        req.Name,
		Type:        domain.RoomType(req.Type),
		Description: req.Description,
		Price:       req.Price,
		HasAC:       req.HasAC,
		Capacity:    req.Capacity,
		Image:       req.Image,
		IsAvailable: isAvailable,
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNumberTaken) {
			s.logger.Warn("Create: room number=%s already taken", req.Number)
			return nil, ErrRoomNumberTaken
		}
		return nil, s.mapStorageError("Create", err)
	}

	s.logger.Info("Create: room id=%d number=%s created", created.ID, created.Number)
	s.siteClient.RevalidateGuesthouse(ctx)

	return models.FromDomainRoom(created), nil
}

// Update частично обновляет комнату
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	if req.Type != nil && !domain.RoomType(*req.Type).IsValid() {
		s.logger.Warn("Update: invalid room type=%s", *req.Type)
		return nil, ErrInvalidRoomType
	}

	update := req.ToDomainUpdate()
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: empty update", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.roomRepo.Update(ctx, id, update); err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			s.logger.Warn("Update: room id=%d not found", id)
			return nil, ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrRoomNumberTaken):
			s.logger.Warn("Update: room number already taken for id=%d", id)
			return nil, ErrRoomNumberTaken
		default:
			return nil, s.mapStorageError("Update", err)
		}
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapStorageError("Update", err)
	}

	s.logger.Info("Update: room id=%d updated", id)
	s.siteClient.RevalidateGuesthouse(ctx)

	return models.FromDomainRoom(room), nil
}

// Delete удаляет комнату.
// Политика restrict-delete: комната с бронированиями не удаляется.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			s.logger.Warn("Delete: room id=%d not found", id)
			return ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrRoomHasBookings):
			s.logger.Warn("Delete: room id=%d has bookings, delete restricted", id)
			return ErrRoomHasBookings
		default:
			return s.mapStorageError("Delete", err)
		}
	}

	s.logger.Info("Delete: room id=%d deleted", id)
	s.siteClient.RevalidateGuesthouse(ctx)

	return nil
}

// mapStorageError переводит ошибки хранилища в ошибки сервиса.
// Таймауты отдаются как retryable ErrStorageUnavailable.
func (s *Service) mapStorageError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		s.logger.Error("%s: storage timeout: %v", op, err)
		return fmt.Errorf("%w: %s", ErrStorageUnavailable, op)
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// validateCreateRequest валидирует запрос на создание комнаты
func validateCreateRequest(req *models.CreateRoomRequest) error {
	if req.Number == "" {
		return fmt.Errorf("%w: number is required", ErrInvalidInput)
	}
	if len(req.Number) > domain.MaxNumberLength {
		return fmt.Errorf("%w: number is too long", ErrInvalidInput)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !domain.RoomType(req.Type).IsValid() {
		return ErrInvalidRoomType
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	return nil
}
