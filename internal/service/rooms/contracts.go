package rooms

import (
	"context"
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time, filter domain.RoomFilter) ([]*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Update(ctx context.Context, id int64, update domain.RoomUpdate) error
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
