package models

import (
	"errors"
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
	"github.com/m04kA/GH-BookingService/pkg/types"
)

var (
	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format, expected HH:MM")
)

// UpdateBookingRequest запрос на частичное обновление бронирования.
// Даты заезда/выезда и комната через update не меняются.
type UpdateBookingRequest struct {
	Name          *string  `json:"name,omitempty"`
	Address       *string  `json:"address,omitempty"`
	IDNumber      *string  `json:"idNumber,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	Purpose       *string  `json:"purpose,omitempty"`
	CheckInTime   *string  `json:"checkInTime,omitempty"`
	CheckOutTime  *string  `json:"checkOutTime,omitempty"`
	TotalAmount   *float64 `json:"totalAmount,omitempty"`
	AdvanceAmount *float64 `json:"advanceAmount,omitempty"`
	IsPaid        *bool    `json:"isPaid,omitempty"`
}

// ToDomainUpdate конвертирует запрос в domain.BookingUpdate с валидацией времени
func (r *UpdateBookingRequest) ToDomainUpdate() (domain.BookingUpdate, error) {
	update := domain.BookingUpdate{
		Name:          r.Name,
		Address:       r.Address,
		IDNumber:      r.IDNumber,
		Phone:         r.Phone,
		Purpose:       r.Purpose,
		TotalAmount:   r.TotalAmount,
		AdvanceAmount: r.AdvanceAmount,
		IsPaid:        r.IsPaid,
	}

	if r.CheckInTime != nil {
		ts, err := types.NewTimeStringFromString(*r.CheckInTime)
		if err != nil {
			return domain.BookingUpdate{}, ErrInvalidTime
		}
		update.CheckInTime = &ts
	}
	if r.CheckOutTime != nil {
		ts, err := types.NewTimeStringFromString(*r.CheckOutTime)
		if err != nil {
			return domain.BookingUpdate{}, ErrInvalidTime
		}
		update.CheckOutTime = &ts
	}

	return update, nil
}

// BookingResponse бронирование в ответе сервиса
type BookingResponse struct {
	ID            int64   `json:"id"`
	RoomID        int64   `json:"roomId"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	IDNumber      string  `json:"idNumber"`
	Phone         string  `json:"phone"`
	Purpose       string  `json:"purpose"`
	CheckInDate   string  `json:"checkInDate"`
	CheckInTime   string  `json:"checkInTime"`
	CheckOutDate  string  `json:"checkOutDate"`
	CheckOutTime  string  `json:"checkOutTime"`
	TotalAmount   float64 `json:"totalAmount"`
	AdvanceAmount float64 `json:"advanceAmount"`
	IsPaid        bool    `json:"isPaid"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		RoomID:        b.RoomID,
		Name:          b.Name,
		Address:       b.Address,
		IDNumber:      b.IDNumber,
		Phone:         b.Phone,
		Purpose:       b.Purpose,
		CheckInDate:   b.CheckInDate.Format(domain.DateFormat),
		CheckInTime:   b.CheckInTime.String(),
		CheckOutDate:  b.CheckOutDate.Format(domain.DateFormat),
		CheckOutTime:  b.CheckOutTime.String(),
		TotalAmount:   b.TotalAmount,
		AdvanceAmount: b.AdvanceAmount,
		IsPaid:        b.IsPaid,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует слайс domain.Booking в BookingListResponse
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out}
}
