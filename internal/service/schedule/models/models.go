package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на создание или обновление конфигурации салона
// Поддерживает частичное обновление - nil поля не изменяются
type UpdateConfigRequest struct {
	UserID                     int64 `json:"userId"`
	SalonID                    int64 `json:"salonId"`
	ReservationIntervalMinutes *int  `json:"reservationIntervalMinutes,omitempty"`
	AvailableSheet             *int  `json:"availableSheet,omitempty"`
}

// ApplyToConfig применяет частичное обновление к конфигурации
func (r *UpdateConfigRequest) ApplyToConfig(cfg *domain.SalonScheduleConfig) {
	if r.ReservationIntervalMinutes != nil {
		cfg.ReservationIntervalMinutes = *r.ReservationIntervalMinutes
	}
	if r.AvailableSheet != nil {
		cfg.AvailableSheet = *r.AvailableSheet
	}
}

// Response модели

// ConfigResponse ответ с конфигурацией салона
type ConfigResponse struct {
	ID                         int64     `json:"id"`
	SalonID                    int64     `json:"salonId"`
	ReservationIntervalMinutes int       `json:"reservationIntervalMinutes"`
	AvailableSheet             int       `json:"availableSheet"`
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

// StaffConfigResponse ответ с конфигурацией мастера
type StaffConfigResponse struct {
	StaffID     int64  `json:"staffId"`
	SalonID     int64  `json:"salonId"`
	DisplayName string `json:"displayName"`
	Priority    int    `json:"priority"`
}

// StaffConfigListResponse ответ со списком мастеров салона
type StaffConfigListResponse struct {
	Staffs []StaffConfigResponse `json:"staffs"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.SalonScheduleConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		ID:                         c.ID,
		SalonID:                    c.SalonID,
		ReservationIntervalMinutes: c.ReservationIntervalMinutes,
		AvailableSheet:             c.AvailableSheet,
		CreatedAt:                  c.CreatedAt,
		UpdatedAt:                  c.UpdatedAt,
	}
}

// FromDomainStaffConfigList конвертирует список domain моделей в DTO
func FromDomainStaffConfigList(configs []*domain.StaffConfig) *StaffConfigListResponse {
	resp := &StaffConfigListResponse{
		Staffs: make([]StaffConfigResponse, 0, len(configs)),
	}

	for _, c := range configs {
		resp.Staffs = append(resp.Staffs, StaffConfigResponse{
			StaffID:     c.StaffID,
			SalonID:     c.SalonID,
			DisplayName: c.DisplayName,
			Priority:    c.Priority,
		})
	}

	return resp
}
