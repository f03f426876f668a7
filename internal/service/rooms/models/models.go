package models

import (
	"github.com/m04kA/GH-BookingService/internal/domain"
)

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	Number      string  `json:"number"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	HasAC       bool    `json:"hasAC"`
	Capacity    int     `json:"capacity"`
	Image       string  `json:"image"`
	IsAvailable *bool   `json:"isAvailable,omitempty"` // по умолчанию true
}

// UpdateRoomRequest запрос на частичное обновление комнаты
type UpdateRoomRequest struct {
	Number      *string  `json:"number,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	HasAC       *bool    `json:"hasAC,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	Image       *string  `json:"image,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

// RoomResponse комната в ответе сервиса
type RoomResponse struct {
	ID          int64   `json:"id"`
	Number      string  `json:"number"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	HasAC       bool    `json:"hasAC"`
	Capacity    int     `json:"capacity"`
	Image       string  `json:"image"`
	IsAvailable bool    `json:"isAvailable"`
}

// RoomListResponse список комнат
type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain.Room в RoomResponse
func FromDomainRoom(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:          room.ID,
		Number:      room.Number,
		Name:        room.Name,
		Type:        string(room.Type),
		Description: room.Description,
		Price:       room.Price,
		HasAC:       room.HasAC,
		Capacity:    room.Capacity,
		Image:       room.Image,
		IsAvailable: room.IsAvailable,
	}
}

// FromDomainRoomList конвертирует слайс domain.Room в RoomListResponse
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	out := make([]*RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, FromDomainRoom(room))
	}
	return &RoomListResponse{Rooms: out}
}

// ToDomainUpdate конвертирует UpdateRoomRequest в domain.RoomUpdate.
// Валидация типа выполняется на уровне сервиса.
func (r *UpdateRoomRequest) ToDomainUpdate() domain.RoomUpdate {
	update := domain.RoomUpdate{
		Number:      r.Number,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		HasAC:       r.HasAC,
		Capacity:    r.Capacity,
		Image:       r.Image,
		IsAvailable: r.IsAvailable,
	}
	if r.Type != nil {
		t := domain.RoomType(*r.Type)
		update.Type = &t
	}
	return update
}
