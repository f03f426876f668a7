package get_available_rooms

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
	"github.com/m04kA/GH-BookingService/internal/service/availability"
)

// queryParams распарсенные параметры запроса
type queryParams struct {
	CheckIn  time.Time
	CheckOut time.Time
	Filter   *availability.RoomFilterRequest
}

// parseQuery извлекает окно дат и опциональные фильтры из query string.
// checkIn и checkOut обязательны, формат YYYY-MM-DD.
func parseQuery(values url.Values) (*queryParams, error) {
	checkInStr := values.Get("checkIn")
	checkOutStr := values.Get("checkOut")
	if checkInStr == "" || checkOutStr == "" {
		return nil, fmt.Errorf("checkIn and checkOut are required")
	}

	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		return nil, fmt.Errorf("invalid checkIn: %w", err)
	}
	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid checkOut: %w", err)
	}

	filter := &availability.RoomFilterRequest{}

	if typeStr := values.Get("type"); typeStr != "" {
		filter.Type = &typeStr
	}

	if maxPriceStr := values.Get("maxPrice"); maxPriceStr != "" {
		maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid maxPrice: %w", err)
		}
		filter.MaxPrice = &maxPrice
	}

	if hasACStr := values.Get("hasAC"); hasACStr != "" {
		hasAC, err := strconv.ParseBool(hasACStr)
		if err != nil {
			return nil, fmt.Errorf("invalid hasAC: %w", err)
		}
		filter.HasAC = &hasAC
	}

	return &queryParams{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Filter:   filter,
	}, nil
}
