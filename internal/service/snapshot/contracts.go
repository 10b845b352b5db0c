package snapshot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetSalonConfig(ctx context.Context, salonID int64) (*domain.SalonScheduleConfig, error)
	GetSalonWeekDay(ctx context.Context, salonID int64, weekday time.Weekday) (*domain.SalonWeekSchedule, error)
	HasSalonException(ctx context.Context, salonID int64, date time.Time, exceptionType string) (bool, error)
	GetStaffWeekDay(ctx context.Context, staffID int64, weekday time.Weekday) (*domain.StaffWeekSchedule, error)
	ListStaffSchedules(ctx context.Context, staffID int64, date time.Time) ([]*domain.StaffSchedule, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
