package create_booking

import (
	"time"

	"github.com/m04kA/GH-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Комната задается внешним номером ("101"), а не внутренним ID.
type Request struct {
	RoomNumber    string
	Name          string
	Address       string
	IDNumber      string
	Phone         string
	Purpose       string
	CheckInDate   time.Time
	CheckInTime   types.TimeString
	CheckOutDate  time.Time
	CheckOutTime  types.TimeString
	TotalAmount   float64
	AdvanceAmount float64
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	RoomID        int64
	RoomNumber    string
	Name          string
	Address       string
	IDNumber      string
	Phone         string
	Purpose       string
	CheckInDate   time.Time
	CheckInTime   types.TimeString
	CheckOutDate  time.Time
	CheckOutTime  types.TimeString
	TotalAmount   float64
	AdvanceAmount float64
	IsPaid        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
