package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Schedule exception types
const (
	ScheduleTypeHoliday = "holiday"
	ScheduleTypeBlock   = "block"
)

// DaySchedule represents opening hours for one weekday
// Нулевые или некорректные часы трактуются вызывающим кодом как отсутствие записи
type DaySchedule struct {
	IsOpen    bool
	StartHour types.TimeString
	EndHour   types.TimeString
}

// SalonWeekSchedule represents salon opening hours for one weekday
type SalonWeekSchedule struct {
	ID        int64
	SalonID   int64
	Weekday   time.Weekday
	DaySchedule
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaffWeekSchedule represents staff working hours for one weekday
// Отсутствие записи означает, что мастер работает по часам салона;
// запись с IsOpen=false - что мастер в этот день недели не работает
type StaffWeekSchedule struct {
	ID        int64
	StaffID   int64
	SalonID   int64
	Weekday   time.Weekday
	DaySchedule
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SalonScheduleException represents a full-day salon closure (e.g. a holiday)
type SalonScheduleException struct {
	ID        int64
	SalonID   int64
	Date      time.Time
	Type      string
	CreatedAt time.Time
}

// StaffSchedule represents a dated staff unavailability record:
// either a full-day absence (IsAllDay) or a partial blackout block
// with StartTime/EndTime in unix seconds
type StaffSchedule struct {
	ID        int64
	StaffID   int64
	SalonID   int64
	Date      time.Time
	Type      string
	IsAllDay  bool
	StartTime *int64 // unix seconds, nil для all-day записей
	EndTime   *int64 // unix seconds, nil для all-day записей
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlock returns true if the record is a timed partial blackout
func (s *StaffSchedule) IsBlock() bool {
	return !s.IsAllDay && s.StartTime != nil && s.EndTime != nil
}
