package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната с указанным номером не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomNotAvailable возвращается, когда у комнаты есть бронирование,
	// пересекающееся с запрошенным окном дат
	ErrRoomNotAvailable = errors.New("create_booking: room is not available for the selected dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrRetryable возвращается, когда конкурентная нагрузка не дала
	// завершить транзакцию; запрос можно повторить
	ErrRetryable = errors.New("create_booking: temporary failure, retry the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
