package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomNumberTaken возвращается, когда номер комнаты уже занят
	ErrRoomNumberTaken = errors.New("room number already taken")

	// ErrRoomHasBookings возвращается при попытке удалить комнату
	// с существующими бронированиями
	ErrRoomHasBookings = errors.New("room has bookings and cannot be deleted")

	// ErrInvalidRoomType возвращается, когда тип комнаты не входит в перечисление
	ErrInvalidRoomType = errors.New("invalid room type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStorageUnavailable возвращается, когда хранилище не ответило за
	// отведенный таймаут. Ошибка retryable.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms service: internal error")
)
