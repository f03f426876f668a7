package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено.
	// Повторная отмена уже отмененного бронирования тоже отдает эту ошибку.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDateRange возвращается при некорректном окне дат
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrStorageUnavailable возвращается, когда хранилище не ответило за
	// отведенный таймаут. Ошибка retryable.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
