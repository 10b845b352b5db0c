package check_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	checkSlot "github.com/m04kA/SMC-SalonService/internal/usecase/check_slot"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidStaffID     = "некорректный ID мастера"
	msgInvalidQueryParams = "некорректные параметры запроса"
	msgConfigNotFound     = "конфигурация расписания салона не найдена"
)

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SlotAvailabilityResponse HTTP response model
type SlotAvailabilityResponse struct {
	Available bool `json:"available"`
}

// Handle GET /api/v1/salons/{salonId}/staffs/{staffId}/slot-availability
// Query params: date (YYYY-MM-DD), start (unix), end (unix)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staffs/{id}/slot-availability - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/staffs/{id}/slot-availability - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	query := r.URL.Query()
	start, startErr := strconv.ParseInt(query.Get("start"), 10, 64)
	end, endErr := strconv.ParseInt(query.Get("end"), 10, 64)
	if startErr != nil || endErr != nil {
		h.logger.Warn("GET /salons/{id}/staffs/{id}/slot-availability - Invalid start/end params")
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	useCaseReq := &checkSlot.Request{
		SalonID:   salonID,
		StaffID:   staffID,
		Date:      query.Get("date"),
		StartTime: start,
		EndTime:   end,
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSlot.ErrConfigNotFound):
			h.logger.Warn("GET /salons/{id}/staffs/{id}/slot-availability - Config not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, checkSlot.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/staffs/{id}/slot-availability - Invalid input: salon_id=%d, error=%v",
				salonID, err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)

		default:
			h.logger.Error("GET /salons/{id}/staffs/{id}/slot-availability - Failed to check slot: salon_id=%d, staff_id=%d, error=%v",
				salonID, staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/staffs/{id}/slot-availability - Checked: salon_id=%d, staff_id=%d, available=%t",
		salonID, staffID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, SlotAvailabilityResponse{Available: result.Available})
}
