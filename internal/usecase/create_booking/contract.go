package create_booking

import (
	"context"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByRoomID(ctx context.Context, roomID int64) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SiteClient интерфейс клиента инвалидации кэша сайта
type SiteClient interface {
	RevalidateGuesthouse(ctx context.Context)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Options бизнес-настройки usecase
type Options struct {
	// EnforceAdvanceLimit требовать advanceAmount <= totalAmount.
	// Исходная система это не проверяла, поэтому по умолчанию выключено.
	EnforceAdvanceLimit bool
}
