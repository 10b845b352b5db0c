package check_slot

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.StartTime <= 0 || req.EndTime <= 0 {
		return fmt.Errorf("%w: start and end times are required", ErrInvalidInput)
	}

	if req.EndTime <= req.StartTime {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}

	return nil
}
