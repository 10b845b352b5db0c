package get_salon_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-SalonService/internal/service/schedule"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgConfigNotFound = "конфигурация расписания салона не найдена"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/schedule-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/schedule-config - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	result, err := h.service.GetConfig(r.Context(), salonID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrConfigNotFound):
			h.logger.Warn("GET /salons/{id}/schedule-config - Config not found: salon_id=%d", salonID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		default:
			h.logger.Error("GET /salons/{id}/schedule-config - Failed to get config: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/schedule-config - Config fetched: salon_id=%d", salonID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
