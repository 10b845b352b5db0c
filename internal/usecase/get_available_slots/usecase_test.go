package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	snapshotService "github.com/m04kA/SMC-SalonService/internal/service/snapshot"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
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
	day      *availability.DaySnapshot
	dayErr   error
	staffErr error
}

func (s *stubSnapshots) LoadDay(_ context.Context, _ int64, _ time.Time) (*availability.DaySnapshot, error) {
	if s.dayErr != nil {
		return nil, s.dayErr
	}
	return s.day, nil
}

func (s *stubSnapshots) LoadStaff(_ context.Context, day *availability.DaySnapshot, staffID int64) (*availability.StaffSnapshot, error) {
	if s.staffErr != nil {
		return nil, s.staffErr
	}
	staff := &availability.StaffSnapshot{StaffID: staffID}
	for _, r := range day.SalonReservations {
		if r.StaffID == staffID {
			staff.Reservations = append(staff.Reservations, r)
		}
	}
	return staff, nil
}

type stubScheduleRepo struct {
	configs []*domain.StaffConfig
	listErr error
}

func (s *stubScheduleRepo) ListStaffConfigs(_ context.Context, _ int64) ([]*domain.StaffConfig, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.configs, nil
}

func (s *stubScheduleRepo) GetStaffConfig(_ context.Context, staffID int64) (*domain.StaffConfig, error) {
	for _, c := range s.configs {
		if c.StaffID == staffID {
			return c, nil
		}
	}
	return nil, scheduleRepo.ErrScheduleNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func openDay(salonID int64) *availability.DaySnapshot {
	return &availability.DaySnapshot{
		Date: testDate,
		Config: domain.SalonScheduleConfig{
			SalonID:                    salonID,
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

func staffConfig(staffID, salonID int64, priority int) *domain.StaffConfig {
	return &domain.StaffConfig{
		StaffID:     staffID,
		SalonID:     salonID,
		DisplayName: fmt.Sprintf("Master %d", staffID),
		Priority:    priority,
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&stubSnapshots{}, &stubScheduleRepo{}, 5, 4, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero salon", &Request{SalonID: 0, Date: testDateStr, DurationMinutes: 60}},
		{"negative staff", &Request{SalonID: 1, StaffID: ptr.Ptr(int64(-1)), Date: testDateStr, DurationMinutes: 60}},
		{"unknown mode", &Request{SalonID: 1, Date: testDateStr, DurationMinutes: 60, Mode: "spiral"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_LenientEmptyResponses(t *testing.T) {
	snapshots := &stubSnapshots{day: openDay(1)}
	repo := &stubScheduleRepo{configs: []*domain.StaffConfig{staffConfig(10, 1, 100)}}
	uc := NewUseCase(snapshots, repo, 5, 4, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"unparsable date", &Request{SalonID: 1, Date: "03.11.2025", DurationMinutes: 60}},
		{"zero duration", &Request{SalonID: 1, Date: testDateStr, DurationMinutes: 0}},
		{"unknown staff", &Request{SalonID: 1, StaffID: ptr.Ptr(int64(999)), Date: testDateStr, DurationMinutes: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Empty(t, resp.Staffs)
		})
	}
}

func TestExecute_StaffFromAnotherSalon(t *testing.T) {
	snapshots := &stubSnapshots{day: openDay(1)}
	repo := &stubScheduleRepo{configs: []*domain.StaffConfig{staffConfig(10, 2, 100)}}
	uc := NewUseCase(snapshots, repo, 5, 4, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:         1,
		StaffID:         ptr.Ptr(int64(10)),
		Date:            testDateStr,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Staffs)
}

func TestExecute_ConfigNotFound(t *testing.T) {
	snapshots := &stubSnapshots{dayErr: snapshotService.ErrConfigNotFound}
	uc := NewUseCase(snapshots, &stubScheduleRepo{}, 5, 4, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, Date: testDateStr, DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestExecute_DenseSingleStaff(t *testing.T) {
	day := openDay(1)
	day.SalonReservations = []*domain.Reservation{
		{
			StaffID:   10,
			StartTime: at("10:00"),
			EndTime:   at("11:00"),
			Status:    domain.StatusConfirmed,
		},
	}
	snapshots := &stubSnapshots{day: day}
	repo := &stubScheduleRepo{configs: []*domain.StaffConfig{staffConfig(10, 1, 100)}}
	uc := NewUseCase(snapshots, repo, 5, 4, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:         1,
		StaffID:         ptr.Ptr(int64(10)),
		Date:            testDateStr,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	require.Len(t, resp.Staffs, 1)

	staff := resp.Staffs[0]
	assert.Equal(t, int64(10), staff.StaffID)
	assert.Equal(t, "Master 10", staff.DisplayName)
	require.NotEmpty(t, staff.Slots)

	// Первый слот от открытия, бронирование 10:00-11:00 исключено
	assert.Equal(t, at("09:00"), staff.Slots[0].StartTime)
	for _, s := range staff.Slots {
		assert.False(t, s.StartTime < at("11:00") && s.EndTime > at("10:00"),
			"slot [%d, %d) overlaps the reservation", s.StartTime, s.EndTime)
	}
}

func TestExecute_TopNTruncation(t *testing.T) {
	snapshots := &stubSnapshots{day: openDay(1)}
	repo := &stubScheduleRepo{configs: []*domain.StaffConfig{
		staffConfig(10, 1, 300),
		staffConfig(20, 1, 200),
		staffConfig(30, 1, 100),
	}}
	uc := NewUseCase(snapshots, repo, 2, 4, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:         1,
		Date:            testDateStr,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	require.Len(t, resp.Staffs, 2)
	assert.Equal(t, int64(10), resp.Staffs[0].StaffID)
	assert.Equal(t, int64(20), resp.Staffs[1].StaffID)
}

func TestExecute_OnionModeDefaults(t *testing.T) {
	snapshots := &stubSnapshots{day: openDay(1)}
	repo := &stubScheduleRepo{configs: []*domain.StaffConfig{staffConfig(10, 1, 100)}}
	uc := NewUseCase(snapshots, repo, 5, 4, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:         1,
		StaffID:         ptr.Ptr(int64(10)),
		Date:            testDateStr,
		DurationMinutes: 60,
		Mode:            ModeOnion,
	})
	require.NoError(t, err)
	assert.Equal(t, ModeOnion, resp.Mode)
	require.Len(t, resp.Staffs, 1)

	slots := resp.Staffs[0].Slots
	require.NotEmpty(t, slots)
	// Передний якорь от открытия и задний от закрытия присутствуют
	assert.Equal(t, at("09:00"), slots[0].StartTime)
	assert.Equal(t, at("18:00"), slots[len(slots)-1].EndTime)
	// Дефолтный layer=2: не больше 4 слотов на пустом окне
	assert.LessOrEqual(t, len(slots), 4)
}

func TestExecute_StaffLoadFailure(t *testing.T) {
	snapshots := &stubSnapshots{day: openDay(1), staffErr: errors.New("db is down")}
	repo := &stubScheduleRepo{configs: []*domain.StaffConfig{staffConfig(10, 1, 100)}}
	uc := NewUseCase(snapshots, repo, 5, 4, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:         1,
		Date:            testDateStr,
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrInternal)
}
