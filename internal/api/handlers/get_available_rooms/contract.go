package get_available_rooms

import (
	"context"
	"time"

	"github.com/m04kA/GH-BookingService/internal/service/availability"
	roomsModels "github.com/m04kA/GH-BookingService/internal/service/rooms/models"
)

type AvailabilityService interface {
	GetAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, filter *availability.RoomFilterRequest) (*roomsModels.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
