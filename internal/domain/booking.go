package domain

import (
	"time"

	"github.com/m04kA/GH-BookingService/pkg/types"
)

// Booking represents a guest house room reservation
type Booking struct {
	ID     int64
	RoomID int64

	// Guest identity
	Name     string
	Address  string
	IDNumber string
	Phone    string
	Purpose  string

	// Stay window: [CheckInDate, CheckOutDate), выезд в день X не конфликтует
	// с заездом в день X
	CheckInDate  time.Time
	CheckOutDate time.Time

	// Advisory times of day, не участвуют в проверке пересечений
	CheckInTime  types.TimeString
	CheckOutTime types.TimeString

	TotalAmount   float64
	AdvanceAmount float64
	IsPaid        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Nights returns the number of nights covered by the booking
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// OverlapsWindow returns true if the booking intersects the given stay window
func (b *Booking) OverlapsWindow(checkIn, checkOut time.Time) bool {
	return Overlaps(b.CheckInDate, b.CheckOutDate, checkIn, checkOut)
}

// BookingUpdate частичное обновление бронирования.
// nil-поля не изменяются. Даты заезда/выезда и комната не меняются
// через update - для переноса дат бронирование отменяется и создается заново,
// иначе обновление обошло бы проверку доступности.
type BookingUpdate struct {
	Name          *string
	Address       *string
	IDNumber      *string
	Phone         *string
	Purpose       *string
	CheckInTime   *types.TimeString
	CheckOutTime  *types.TimeString
	TotalAmount   *float64
	AdvanceAmount *float64
	IsPaid        *bool
}

// IsEmpty returns true if the update changes nothing
func (u BookingUpdate) IsEmpty() bool {
	return u.Name == nil && u.Address == nil && u.IDNumber == nil &&
		u.Phone == nil && u.Purpose == nil &&
		u.CheckInTime == nil && u.CheckOutTime == nil &&
		u.TotalAmount == nil && u.AdvanceAmount == nil && u.IsPaid == nil
}
