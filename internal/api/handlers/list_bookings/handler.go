package list_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/GH-BookingService/internal/api/handlers"
	"github.com/m04kA/GH-BookingService/internal/domain"
	"github.com/m04kA/GH-BookingService/internal/service/bookings"
	"github.com/m04kA/GH-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRoomID    = "некорректный ID комнаты"
	msgInvalidDates     = "некорректный формат дат, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "дата начала должна быть раньше даты окончания"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
//
// Опциональные фильтры: ?roomId=N либо ?from=YYYY-MM-DD&to=YYYY-MM-DD.
// Без фильтров возвращаются все бронирования.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var result *models.BookingListResponse
	var err error

	switch {
	case query.Get("roomId") != "":
		var roomID int64
		roomID, err = strconv.ParseInt(query.Get("roomId"), 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid room ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoomID)
			return
		}
		result, err = h.service.GetByRoom(r.Context(), roomID)

	case query.Get("from") != "" || query.Get("to") != "":
		var from, to time.Time
		from, err = time.Parse(domain.DateFormat, query.Get("from"))
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDates)
			return
		}
		to, err = time.Parse(domain.DateFormat, query.Get("to"))
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDates)
			return
		}
		result, err = h.service.GetByDateRange(r.Context(), from, to)

	default:
		result, err = h.service.List(r.Context())
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidDateRange):
			h.logger.Warn("GET /bookings - Invalid date range: from=%s, to=%s",
				query.Get("from"), query.Get("to"))
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, bookings.ErrStorageUnavailable):
			h.logger.Warn("GET /bookings - Storage unavailable: %v", err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Listed %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
