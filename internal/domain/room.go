package domain

// RoomType represents the category of a guest house room
type RoomType string

const (
	TypeACDouble  RoomType = "AC Double Room"
	TypeNonAC     RoomType = "Non-AC Room"
	TypeDormitory RoomType = "Dormitory"
)

// RoomTypes перечень всех допустимых типов комнат
var RoomTypes = []RoomType{
	TypeACDouble,
	TypeNonAC,
	TypeDormitory,
}

// IsValid returns true if the room type is one of the known types
func (t RoomType) IsValid() bool {
	for _, rt := range RoomTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// Room represents a physical guest house room
type Room struct {
	ID          int64
	Number      string // Человекочитаемый номер комнаты ("101", "D1"), уникален
	Name        string
	Type        RoomType
	Description string
	Price       float64 // Цена за ночь
	HasAC       bool
	Capacity    int
	Image       string
	IsAvailable bool // Административный флаг, не зависит от занятости по датам
}

// RoomFilter опциональные фильтры для выборки комнат.
// Все заданные условия объединяются по AND, nil-поля игнорируются.
type RoomFilter struct {
	Type     *RoomType
	MaxPrice *float64
	HasAC    *bool
}

// IsEmpty returns true if no filter criteria are set
func (f RoomFilter) IsEmpty() bool {
	return f.Type == nil && f.MaxPrice == nil && f.HasAC == nil
}

// RoomUpdate частичное обновление комнаты, nil-поля не изменяются
type RoomUpdate struct {
	Number      *string
	Name        *string
	Type        *RoomType
	Description *string
	Price       *float64
	HasAC       *bool
	Capacity    *int
	Image       *string
	IsAvailable *bool
}

// IsEmpty returns true if the update changes nothing
func (u RoomUpdate) IsEmpty() bool {
	return u.Number == nil && u.Name == nil && u.Type == nil &&
		u.Description == nil && u.Price == nil && u.HasAC == nil &&
		u.Capacity == nil && u.Image == nil && u.IsAvailable == nil
}

// RoomAvailability per-room availability for a requested stay window
type RoomAvailability struct {
	RoomID      int64
	IsAvailable bool
}
