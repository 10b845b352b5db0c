package check_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/availability"
)

// SnapshotService интерфейс сервиса сборки снапшотов доступности
type SnapshotService interface {
	LoadDay(ctx context.Context, salonID int64, date time.Time) (*availability.DaySnapshot, error)
	LoadStaff(ctx context.Context, day *availability.DaySnapshot, staffID int64) (*availability.StaffSnapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
