package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime <= 0 || req.EndTime <= 0 {
		return fmt.Errorf("%w: start and end times are required", ErrInvalidInput)
	}

	if req.EndTime <= req.StartTime {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}

	durationMinutes := int((req.EndTime - req.StartTime) / 60)
	if durationMinutes < domain.MinDurationMinutes || durationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.MenuName == "" {
		return fmt.Errorf("%w: menuName is required", ErrInvalidInput)
	}

	if req.MenuPrice < 0 {
		return fmt.Errorf("%w: menuPrice must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата визита не в прошлом
func validateDate(date, now time.Time) error {
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
