package create_booking

import (
	"fmt"
	"regexp"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

// phonePattern допустимые символы телефона: цифры, +, -, скобки, пробелы
var phonePattern = regexp.MustCompile(`^[0-9+\-() ]+$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, opts Options) error {
	if req.RoomNumber == "" {
		return fmt.Errorf("%w: roomNumber is required", ErrInvalidInput)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}

	if req.IDNumber == "" {
		return fmt.Errorf("%w: idNumber is required", ErrInvalidInput)
	}
	if len(req.IDNumber) > domain.MaxIDNumberLength {
		return fmt.Errorf("%w: idNumber is too long", ErrInvalidInput)
	}

	if err := validatePhone(req.Phone); err != nil {
		return err
	}

	if req.Purpose == "" {
		return fmt.Errorf("%w: purpose is required", ErrInvalidInput)
	}

	// Даты обязательны, заезд строго раньше выезда
	if req.CheckInDate.IsZero() || req.CheckOutDate.IsZero() {
		return fmt.Errorf("%w: checkInDate and checkOutDate are required", ErrInvalidInput)
	}
	if !req.CheckInDate.Before(req.CheckOutDate) {
		return fmt.Errorf("%w: checkInDate must be before checkOutDate", ErrInvalidInput)
	}

	// Время заезда/выезда - справочная информация, но формат проверяем
	if req.CheckInTime.IsZero() {
		return fmt.Errorf("%w: checkInTime is required", ErrInvalidInput)
	}
	if err := req.CheckInTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkInTime format: %v", ErrInvalidInput, err)
	}
	if req.CheckOutTime.IsZero() {
		return fmt.Errorf("%w: checkOutTime is required", ErrInvalidInput)
	}
	if err := req.CheckOutTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid checkOutTime format: %v", ErrInvalidInput, err)
	}

	if req.TotalAmount <= 0 {
		return fmt.Errorf("%w: totalAmount must be positive", ErrInvalidInput)
	}
	if req.AdvanceAmount <= 0 {
		return fmt.Errorf("%w: advanceAmount must be positive", ErrInvalidInput)
	}

	// Проверка advance <= total опциональна: исходная система её не делала
	if opts.EnforceAdvanceLimit && req.AdvanceAmount > req.TotalAmount {
		return fmt.Errorf("%w: advanceAmount must not exceed totalAmount", ErrInvalidInput)
	}

	return nil
}

// validatePhone проверяет формат телефона
func validatePhone(phone string) error {
	if len(phone) < domain.MinPhoneLength {
		return fmt.Errorf("%w: phone must be at least %d characters", ErrInvalidInput, domain.MinPhoneLength)
	}
	if len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: phone contains invalid characters", ErrInvalidInput)
	}
	return nil
}
