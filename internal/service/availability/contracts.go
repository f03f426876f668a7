package availability

import (
	"context"
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time, filter domain.RoomFilter) ([]*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByRoomID(ctx context.Context, roomID int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
