package availability

import "errors"

var (
	// ErrInvalidRoomType возвращается, когда тип комнаты в фильтре
	// не входит в перечисление
	ErrInvalidRoomType = errors.New("invalid room type")

	// ErrInvalidDateRange возвращается, когда дата заезда не раньше даты выезда
	ErrInvalidDateRange = errors.New("check-in date must be before check-out date")

	// ErrStorageUnavailable возвращается, когда хранилище не ответило за
	// отведенный таймаут. Ошибка retryable.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability service: internal error")
)
