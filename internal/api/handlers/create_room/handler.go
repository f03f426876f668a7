package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	"github.com/m04kA/GH-BookingService/internal/service/rooms"
	"github.com/m04kA/GH-BookingService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNumberTaken        = "комната с таким номером уже существует"
	msgInvalidRoomType    = "некорректный тип комнаты"
	msgInvalidInput       = "некорректные данные комнаты"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNumberTaken):
			h.logger.Warn("POST /rooms - Room number taken: number=%s", req.Number)
			handlers.RespondConflict(w, msgNumberTaken)

		case errors.Is(err, rooms.ErrInvalidRoomType):
			h.logger.Warn("POST /rooms - Invalid room type: type=%s", req.Type)
			handlers.RespondBadRequest(w, msgInvalidRoomType)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rooms.ErrStorageUnavailable):
			h.logger.Warn("POST /rooms - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /rooms - Failed to create room: number=%s, error=%v", req.Number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: room_id=%d, number=%s", room.ID, room.Number)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
