package models

import (
	"github.com/m04kA/GH-BookingService/internal/domain"
)

// RoomAvailabilityEntry доступность одной комнаты для запрошенного окна
type RoomAvailabilityEntry struct {
	RoomID      int64 `json:"roomId"`
	IsAvailable bool  `json:"isAvailable"`
}

// RoomAvailabilityResponse доступность всех комнат, в порядке создания комнат
type RoomAvailabilityResponse struct {
	Availability []*RoomAvailabilityEntry `json:"availability"`
}

// FromDomainAvailability конвертирует слайс domain.RoomAvailability в ответ
func FromDomainAvailability(entries []domain.RoomAvailability) *RoomAvailabilityResponse {
	out := make([]*RoomAvailabilityEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, &RoomAvailabilityEntry{
			RoomID:      e.RoomID,
			IsAvailable: e.IsAvailable,
		})
	}
	return &RoomAvailabilityResponse{Availability: out}
}
