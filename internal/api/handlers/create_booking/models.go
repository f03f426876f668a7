package create_booking

import (
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
	createBooking "github.com/m04kA/GH-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/GH-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomNumber    string  `json:"roomNumber"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	IDNumber      string  `json:"idNumber"`
	Phone         string  `json:"phone"`
	Purpose       string  `json:"purpose"`
	CheckInDate   string  `json:"checkInDate"`  // "2026-03-20"
	CheckInTime   string  `json:"checkInTime"`  // "14:00"
	CheckOutDate  string  `json:"checkOutDate"` // "2026-03-22"
	CheckOutTime  string  `json:"checkOutTime"` // "11:00"
	TotalAmount   float64 `json:"totalAmount"`
	AdvanceAmount float64 `json:"advanceAmount"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	RoomID        int64   `json:"roomId"`
	RoomNumber    string  `json:"roomNumber"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим даты
	checkInDate, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOutDate, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	checkInTime, err := types.NewTimeStringFromString(r.CheckInTime)
	if err != nil {
		return nil, err
	}
	checkOutTime, err := types.NewTimeStringFromString(r.CheckOutTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomNumber:    r.RoomNumber,
		Name:          r.Name,
		Address:       r.Address,
		IDNumber:      r.IDNumber,
		Phone:         r.Phone,
		Purpose:       r.Purpose,
		CheckInDate:   checkInDate,
		CheckInTime:   checkInTime,
		CheckOutDate:  checkOutDate,
		CheckOutTime:  checkOutTime,
		TotalAmount:   r.TotalAmount,
		AdvanceAmount: r.AdvanceAmount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		RoomID:        resp.RoomID,
		RoomNumber:    resp.RoomNumber,
		Name:          resp.Name,
		Address:       resp.Address,
		IDNumber:      resp.IDNumber,
		Phone:         resp.Phone,
		Purpose:       resp.Purpose,
		CheckInDate:   resp.CheckInDate.Format(domain.DateFormat),
		CheckInTime:   resp.CheckInTime.String(),
		CheckOutDate:  resp.CheckOutDate.Format(domain.DateFormat),
		CheckOutTime:  resp.CheckOutTime.String(),
		TotalAmount:   resp.TotalAmount,
		AdvanceAmount: resp.AdvanceAmount,
		IsPaid:        resp.IsPaid,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
