package get_available_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	"github.com/m04kA/GH-BookingService/internal/service/availability"
)

const (
	msgInvalidQuery     = "некорректные параметры запроса, ожидаются checkIn и checkOut в формате YYYY-MM-DD"
	msgInvalidDateRange = "дата заезда должна быть раньше даты выезда"
	msgInvalidRoomType  = "некорректный тип комнаты"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available?checkIn=...&checkOut=...&type=...&maxPrice=...&hasAC=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	params, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetAvailableRooms(r.Context(), params.CheckIn, params.CheckOut, params.Filter)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDateRange):
			h.logger.Warn("GET /rooms/available - Invalid date range: %s - %s",
				r.URL.Query().Get("checkIn"), r.URL.Query().Get("checkOut"))
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, availability.ErrInvalidRoomType):
			h.logger.Warn("GET /rooms/available - Invalid room type: %s", r.URL.Query().Get("type"))
			handlers.RespondBadRequest(w, msgInvalidRoomType)

		case errors.Is(err, availability.ErrStorageUnavailable):
			h.logger.Warn("GET /rooms/available - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /rooms/available - Failed to get available rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/available - %d rooms available", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}
