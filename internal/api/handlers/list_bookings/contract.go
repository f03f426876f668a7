package list_bookings

import (
	"context"
	"time"

	"github.com/m04kA/GH-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context) (*models.BookingListResponse, error)
	GetByRoom(ctx context.Context, roomID int64) (*models.BookingListResponse, error)
	GetByDateRange(ctx context.Context, from, to time.Time) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
