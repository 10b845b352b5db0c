package update_salon_config

import "github.com/m04kA/SMC-SalonService/internal/service/schedule/models"

// UpdateConfigRequest HTTP request model
// Поля-указатели: отсутствующие в теле запроса поля не изменяются
type UpdateConfigRequest struct {
	ReservationIntervalMinutes *int `json:"reservationIntervalMinutes,omitempty"`
	AvailableSheet             *int `json:"availableSheet,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateConfigRequest) ToServiceRequest(salonID, userID int64) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		UserID:                     userID,
		SalonID:                    salonID,
		ReservationIntervalMinutes: r.ReservationIntervalMinutes,
		AvailableSheet:             r.AvailableSheet,
	}
}
