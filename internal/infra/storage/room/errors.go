package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrRoomNumberTaken возвращается при попытке создать комнату
	// с уже занятым номером
	ErrRoomNumberTaken = errors.New("room.repository: room number already taken")

	// ErrRoomHasBookings возвращается при попытке удалить комнату,
	// на которую ссылаются бронирования (политика restrict-delete)
	ErrRoomHasBookings = errors.New("room.repository: room has bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
