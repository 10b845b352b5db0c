package schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetSalonConfig(ctx context.Context, salonID int64) (*domain.SalonScheduleConfig, error)
	UpsertSalonConfig(ctx context.Context, cfg *domain.SalonScheduleConfig) (*domain.SalonScheduleConfig, error)
	GetStaffConfig(ctx context.Context, staffID int64) (*domain.StaffConfig, error)
	ListStaffConfigs(ctx context.Context, salonID int64) ([]*domain.StaffConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
