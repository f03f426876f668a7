package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/GH-BookingService/pkg/ptr"
)

func TestBooking_OverlapsWindow(t *testing.T) {
	booking := &Booking{
		CheckInDate:  date("2026-03-20"),
		CheckOutDate: date("2026-03-22"),
	}

	// Заезд в день выезда существующего бронирования разрешен
	assert.False(t, booking.OverlapsWindow(date("2026-03-22"), date("2026-03-24")))
	// Выезд в день заезда существующего бронирования разрешен
	assert.False(t, booking.OverlapsWindow(date("2026-03-18"), date("2026-03-20")))

	assert.True(t, booking.OverlapsWindow(date("2026-03-21"), date("2026-03-23")))
	assert.True(t, booking.OverlapsWindow(date("2026-03-19"), date("2026-03-21")))
}

func TestBooking_Nights(t *testing.T) {
	booking := &Booking{
		CheckInDate:  date("2026-03-20"),
		CheckOutDate: date("2026-03-22"),
	}
	assert.Equal(t, 2, booking.Nights())
}

func TestBookingUpdate_IsEmpty(t *testing.T) {
	assert.True(t, BookingUpdate{}.IsEmpty())
	assert.False(t, BookingUpdate{Name: ptr.Ptr("John Doe")}.IsEmpty())
	assert.False(t, BookingUpdate{IsPaid: ptr.Ptr(true)}.IsEmpty())
}

func TestRoomType_IsValid(t *testing.T) {
	assert.True(t, TypeACDouble.IsValid())
	assert.True(t, TypeNonAC.IsValid())
	assert.True(t, TypeDormitory.IsValid())
	assert.False(t, RoomType("Penthouse").IsValid())
	assert.False(t, RoomType("").IsValid())
}
