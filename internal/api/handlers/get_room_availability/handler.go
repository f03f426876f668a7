package get_room_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	"github.com/m04kA/GH-BookingService/internal/domain"
	"github.com/m04kA/GH-BookingService/internal/service/availability"
)

const (
	msgInvalidQuery     = "некорректные параметры запроса, ожидаются checkIn и checkOut в формате YYYY-MM-DD"
	msgInvalidDateRange = "дата заезда должна быть раньше даты выезда"
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

// Handle GET /api/v1/rooms/availability?checkIn=...&checkOut=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkInStr := r.URL.Query().Get("checkIn")
	checkOutStr := r.URL.Query().Get("checkOut")

	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		h.logger.Warn("GET /rooms/availability - Invalid checkIn: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}
	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		h.logger.Warn("GET /rooms/availability - Invalid checkOut: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetRoomAvailability(r.Context(), checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDateRange):
			h.logger.Warn("GET /rooms/availability - Invalid date range: %s - %s", checkInStr, checkOutStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, availability.ErrStorageUnavailable):
			h.logger.Warn("GET /rooms/availability - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /rooms/availability - Failed to get availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/availability - Evaluated %d rooms", len(result.Availability))
	handlers.RespondJSON(w, http.StatusOK, result)
}
