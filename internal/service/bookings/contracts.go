package bookings

import (
	"context"
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByRoomID(ctx context.Context, roomID int64) ([]*domain.Booking, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
	Update(ctx context.Context, id int64, update domain.BookingUpdate) error
	Delete(ctx context.Context, id int64) error
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
