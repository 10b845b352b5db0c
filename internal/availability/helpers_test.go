package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// testDate понедельник, полночь UTC
var testDate = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

// at возвращает unix-время "HH:MM" в пределах testDate
func at(hhmm string) int64 {
	ts, err := types.TimeString(hhmm).UnixOn(testDate)
	if err != nil {
		panic(err)
	}
	return ts
}

func openHours(start, end string) *domain.DaySchedule {
	return &domain.DaySchedule{
		IsOpen:    true,
		StartHour: types.TimeString(start),
		EndHour:   types.TimeString(end),
	}
}

func newDay(cfg domain.SalonScheduleConfig, hours *domain.DaySchedule) *DaySnapshot {
	return &DaySnapshot{
		Date:       testDate,
		Config:     cfg,
		SalonHours: hours,
	}
}

func defaultConfig() domain.SalonScheduleConfig {
	return domain.SalonScheduleConfig{
		SalonID:                    1,
		ReservationIntervalMinutes: 30,
		AvailableSheet:             1,
	}
}

func reservation(staffID int64, start, end string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		SalonID:   1,
		StaffID:   staffID,
		Date:      testDate,
		StartTime: at(start),
		EndTime:   at(end),
		Status:    status,
	}
}

func block(start, end string) *domain.StaffSchedule {
	return &domain.StaffSchedule{
		Date:      testDate,
		Type:      domain.ScheduleTypeBlock,
		StartTime: ptr.Ptr(at(start)),
		EndTime:   ptr.Ptr(at(end)),
	}
}

func allDayHoliday() *domain.StaffSchedule {
	return &domain.StaffSchedule{
		Date:     testDate,
		Type:     domain.ScheduleTypeHoliday,
		IsAllDay: true,
	}
}
