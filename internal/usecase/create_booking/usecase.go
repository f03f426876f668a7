package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GH-BookingService/internal/domain"
	roomRepo "github.com/m04kA/GH-BookingService/internal/infra/storage/room"
	"github.com/m04kA/GH-BookingService/pkg/txmanager"
)

// UseCase use case для создания бронирования.
//
// Последовательность "проверить доступность, затем создать" выполняется в
// сериализуемой транзакции с блокировкой бронирований комнаты (FOR UPDATE в
// репозитории). Два конкурентных запроса на одну комнату с пересекающимися
// датами не могут оба пройти проверку: один создаст бронирование, второй
// увидит его и получит ErrRoomNotAvailable.
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	siteClient  SiteClient
	logger      Logger
	opts        Options
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	siteClient SiteClient,
	logger Logger,
	opts Options,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		siteClient:  siteClient,
		logger:      logger,
		opts:        opts,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%s, guest=%s, window=%s - %s",
		req.RoomNumber, req.Name,
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.opts); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем комнату по внешнему номеру
	room, err := uc.roomRepo.GetByNumber(ctx, req.RoomNumber)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room number=%s not found", req.RoomNumber)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room number=%s: %v", req.RoomNumber, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 3. Проверка доступности и вставка - одна сериализуемая транзакция
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Берем все бронирования комнаты с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.GetByRoomID(txCtx, room.ID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for room=%d: %v", room.ID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.2. Исчерпывающая проверка пересечений по всем бронированиям комнаты
		for _, b := range existing {
			if b.OverlapsWindow(req.CheckInDate, req.CheckOutDate) {
				uc.logger.Warn("CreateBooking: room=%s occupied by booking id=%d (%s - %s)",
					req.RoomNumber, b.ID,
					b.CheckInDate.Format(domain.DateFormat), b.CheckOutDate.Format(domain.DateFormat))
				return ErrRoomNotAvailable
			}
		}

		// 3.3. Создаем бронирование; isPaid всегда false при создании
		booking := &domain.Booking{
			RoomID:        room.ID,
			Name:          req.Name,
			Address:       req.Address,
			IDNumber:      req.IDNumber,
			Phone:         req.Phone,
			Purpose:       req.Purpose,
			CheckInDate:   req.CheckInDate,
			CheckInTime:   req.CheckInTime,
			CheckOutDate:  req.CheckOutDate,
			CheckOutTime:  req.CheckOutTime,
			TotalAmount:   req.TotalAmount,
			AdvanceAmount: req.AdvanceAmount,
			IsPaid:        false,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: serialization failure for room=%s: %v", req.RoomNumber, err)
			return nil, fmt.Errorf("%w: %v", ErrRetryable, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for room=%s", result.ID, req.RoomNumber)

	// 4. Сбрасываем кэш страницы гостевого дома (не фатально при ошибке)
	uc.siteClient.RevalidateGuesthouse(ctx)

	return &Response{
		ID:            result.ID,
		RoomID:        result.RoomID,
		RoomNumber:    room.Number,
		Name:          result.Name,
		Address:       result.Address,
		IDNumber:      result.IDNumber,
		Phone:         result.Phone,
		Purpose:       result.Purpose,
		CheckInDate:   result.CheckInDate,
		CheckInTime:   result.CheckInTime,
		CheckOutDate:  result.CheckOutDate,
		CheckOutTime:  result.CheckOutTime,
		TotalAmount:   result.TotalAmount,
		AdvanceAmount: result.AdvanceAmount,
		IsPaid:        result.IsPaid,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
