package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SnapshotService интерфейс сервиса сборки снапшотов доступности
type SnapshotService interface {
	LoadDay(ctx context.Context, salonID int64, date time.Time) (*availability.DaySnapshot, error)
	LoadStaff(ctx context.Context, day *availability.DaySnapshot, staffID int64) (*availability.StaffSnapshot, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	ListStaffConfigs(ctx context.Context, salonID int64) ([]*domain.StaffConfig, error)
	GetStaffConfig(ctx context.Context, staffID int64) (*domain.StaffConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
