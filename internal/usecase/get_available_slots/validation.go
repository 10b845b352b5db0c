package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Mode != "" && req.Mode != ModeDense && req.Mode != ModeOnion {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	return nil
}

// normalizeOnionParams подставляет дефолты для незаполненных параметров onion
func normalizeOnionParams(req *Request) {
	if req.SlotSizeMinutes <= 0 {
		req.SlotSizeMinutes = domain.DefaultOnionSlotSizeMinutes
	}
	if req.Layer <= 0 {
		req.Layer = domain.DefaultOnionLayer
	}
	if req.AllowOverlapMinutes < 0 {
		req.AllowOverlapMinutes = 0
	}
}
