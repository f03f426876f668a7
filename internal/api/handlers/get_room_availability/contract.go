package get_room_availability

import (
	"context"
	"time"

	"github.com/m04kA/GH-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetRoomAvailability(ctx context.Context, checkIn, checkOut time.Time) (*models.RoomAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
