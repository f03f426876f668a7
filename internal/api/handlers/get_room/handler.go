package get_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	"github.com/m04kA/GH-BookingService/internal/service/rooms"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgNotFound      = "комната не найдена"
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

// Handle GET /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomIDStr := vars["roomId"]

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	room, err := h.service.GetByID(r.Context(), roomID)
	if err != nil {
		h.respondError(w, "GET /rooms/{id}", roomIDStr, err)
		return
	}

	h.logger.Info("GET /rooms/{id} - Room retrieved: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, room)
}

// HandleByNumber GET /api/v1/rooms/by-number/{number}
func (h *Handler) HandleByNumber(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	number := vars["number"]

	room, err := h.service.GetByNumber(r.Context(), number)
	if err != nil {
		h.respondError(w, "GET /rooms/by-number/{number}", number, err)
		return
	}

	h.logger.Info("GET /rooms/by-number/{number} - Room retrieved: number=%s", number)
	handlers.RespondJSON(w, http.StatusOK, room)
}

func (h *Handler) respondError(w http.ResponseWriter, op, key string, err error) {
	switch {
	case errors.Is(err, rooms.ErrRoomNotFound):
		h.logger.Warn("%s - Room not found: %s", op, key)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, rooms.ErrStorageUnavailable):
		h.logger.Warn("%s - Storage unavailable: %v", op, err)
		handlers.RespondServiceUnavailable(w)

	default:
		h.logger.Error("%s - Failed to get room %s: %v", op, key, err)
		handlers.RespondInternalError(w)
	}
}
