package check_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	snapshotService "github.com/m04kA/SMC-SalonService/internal/service/snapshot"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var testDate = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

const testDateStr = "2025-11-03"

func at(hhmm string) int64 {
	ts, err := types.TimeString(hhmm).UnixOn(testDate)
	if err != nil {
		panic(err)
	}
	return ts
}

type stubSnapshots struct {
	day    *availability.DaySnapshot
	dayErr error
}

func (s *stubSnapshots) LoadDay(_ context.Context, _ int64, _ time.Time) (*availability.DaySnapshot, error) {
	if s.dayErr != nil {
		return nil, s.dayErr
	}
	return s.day, nil
}

func (s *stubSnapshots) LoadStaff(_ context.Context, day *availability.DaySnapshot, staffID int64) (*availability.StaffSnapshot, error) {
	staff := &availability.StaffSnapshot{StaffID: staffID}
	for _, r := range day.SalonReservations {
		if r.StaffID == staffID {
			staff.Reservations = append(staff.Reservations, r)
		}
	}
	return staff, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func openDay() *availability.DaySnapshot {
	return &availability.DaySnapshot{
		Date: testDate,
		Config: domain.SalonScheduleConfig{
			SalonID:                    1,
			ReservationIntervalMinutes: 30,
			AvailableSheet:             1,
		},
		SalonHours: &domain.DaySchedule{
			IsOpen:    true,
			StartHour: types.TimeString("09:00"),
			EndHour:   types.TimeString("18:00"),
		},
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&stubSnapshots{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero salon", &Request{SalonID: 0, StaffID: 10, Date: testDateStr, StartTime: at("10:00"), EndTime: at("11:00")}},
		{"zero staff", &Request{SalonID: 1, StaffID: 0, Date: testDateStr, StartTime: at("10:00"), EndTime: at("11:00")}},
		{"missing times", &Request{SalonID: 1, StaffID: 10, Date: testDateStr}},
		{"inverted interval", &Request{SalonID: 1, StaffID: 10, Date: testDateStr, StartTime: at("11:00"), EndTime: at("10:00")}},
		{"bad date", &Request{SalonID: 1, StaffID: 10, Date: "not-a-date", StartTime: at("10:00"), EndTime: at("11:00")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ConfigNotFound(t *testing.T) {
	uc := NewUseCase(&stubSnapshots{dayErr: snapshotService.ErrConfigNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SalonID: 1, StaffID: 10, Date: testDateStr,
		StartTime: at("10:00"), EndTime: at("11:00"),
	})
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestExecute_Availability(t *testing.T) {
	day := openDay()
	day.SalonReservations = []*domain.Reservation{
		{
			StaffID:   10,
			StartTime: at("13:00"),
			EndTime:   at("14:00"),
			Status:    domain.StatusConfirmed,
		},
	}
	uc := NewUseCase(&stubSnapshots{day: day}, nopLogger{})

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"free morning slot", "10:00", "11:00", true},
		{"overlaps reservation", "13:30", "14:30", false},
		{"adjacent after reservation", "14:00", "15:00", true},
		{"outside opening hours", "08:00", "09:00", false},
		{"spills past closing", "17:30", "18:30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{
				SalonID: 1, StaffID: 10, Date: testDateStr,
				StartTime: at(tt.start), EndTime: at(tt.end),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Available)
		})
	}
}
