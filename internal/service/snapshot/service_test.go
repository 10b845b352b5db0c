package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var testDate = time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC) // понедельник

type fakeScheduleRepo struct {
	config       *domain.SalonScheduleConfig
	salonDays    map[time.Weekday]*domain.SalonWeekSchedule
	staffDays    map[time.Weekday]*domain.StaffWeekSchedule
	exceptions   []*domain.StaffSchedule
	holiday      bool
	configErr    error
	salonDayErr  error
	holidayErr   error
	staffDayErr  error
	exceptionErr error
}

func (f *fakeScheduleRepo) GetSalonConfig(_ context.Context, _ int64) (*domain.SalonScheduleConfig, error) {
	if f.configErr != nil {
		return nil, f.configErr
	}
	return f.config, nil
}

func (f *fakeScheduleRepo) GetSalonWeekDay(_ context.Context, _ int64, weekday time.Weekday) (*domain.SalonWeekSchedule, error) {
	if f.salonDayErr != nil {
		return nil, f.salonDayErr
	}
	day, ok := f.salonDays[weekday]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return day, nil
}

func (f *fakeScheduleRepo) HasSalonException(_ context.Context, _ int64, _ time.Time, _ string) (bool, error) {
	if f.holidayErr != nil {
		return false, f.holidayErr
	}
	return f.holiday, nil
}

func (f *fakeScheduleRepo) GetStaffWeekDay(_ context.Context, _ int64, weekday time.Weekday) (*domain.StaffWeekSchedule, error) {
	if f.staffDayErr != nil {
		return nil, f.staffDayErr
	}
	day, ok := f.staffDays[weekday]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return day, nil
}

func (f *fakeScheduleRepo) ListStaffSchedules(_ context.Context, _ int64, _ time.Time) ([]*domain.StaffSchedule, error) {
	if f.exceptionErr != nil {
		return nil, f.exceptionErr
	}
	return f.exceptions, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	filter       domain.ReservationsFilter
	err          error
}

func (f *fakeReservationRepo) ListWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	f.filter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.reservations, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultConfig() *domain.SalonScheduleConfig {
	return &domain.SalonScheduleConfig{
		SalonID:                    1,
		ReservationIntervalMinutes: 30,
		AvailableSheet:             2,
	}
}

func mondayHours(start, end string) *domain.SalonWeekSchedule {
	return &domain.SalonWeekSchedule{
		SalonID: 1,
		Weekday: time.Monday,
		DaySchedule: domain.DaySchedule{
			IsOpen:    true,
			StartHour: types.TimeString(start),
			EndHour:   types.TimeString(end),
		},
	}
}

func TestLoadDay(t *testing.T) {
	reservations := []*domain.Reservation{
		{ID: 1, StaffID: 10, Status: domain.StatusConfirmed},
		{ID: 2, StaffID: 20, Status: domain.StatusPending},
	}
	schedule := &fakeScheduleRepo{
		config:    defaultConfig(),
		salonDays: map[time.Weekday]*domain.SalonWeekSchedule{time.Monday: mondayHours("09:00", "18:00")},
		holiday:   true,
	}
	resRepo := &fakeReservationRepo{reservations: reservations}
	svc := NewService(schedule, resRepo, nopLogger{})

	day, err := svc.LoadDay(context.Background(), 1, testDate)
	require.NoError(t, err)

	assert.Equal(t, testDate, day.Date)
	assert.Equal(t, 30, day.Config.ReservationIntervalMinutes)
	require.NotNil(t, day.SalonHours)
	assert.Equal(t, types.TimeString("09:00"), day.SalonHours.StartHour)
	assert.True(t, day.SalonHoliday)
	assert.Len(t, day.SalonReservations, 2)

	// Фильтр бронирований ограничен одним днем
	require.NotNil(t, resRepo.filter.StartDate)
	require.NotNil(t, resRepo.filter.EndDate)
	assert.True(t, resRepo.filter.StartDate.Equal(*resRepo.filter.EndDate))
}

func TestLoadDay_ConfigNotFound(t *testing.T) {
	schedule := &fakeScheduleRepo{configErr: scheduleRepo.ErrConfigNotFound}
	svc := NewService(schedule, &fakeReservationRepo{}, nopLogger{})

	_, err := svc.LoadDay(context.Background(), 1, testDate)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadDay_NoWeekScheduleTolerated(t *testing.T) {
	// Отсутствие записи на день недели - закрытый день, а не ошибка
	schedule := &fakeScheduleRepo{config: defaultConfig()}
	svc := NewService(schedule, &fakeReservationRepo{}, nopLogger{})

	day, err := svc.LoadDay(context.Background(), 1, testDate)
	require.NoError(t, err)
	assert.Nil(t, day.SalonHours)
}

func TestLoadDay_RepoFailure(t *testing.T) {
	schedule := &fakeScheduleRepo{config: defaultConfig(), holidayErr: errors.New("db is down")}
	svc := NewService(schedule, &fakeReservationRepo{}, nopLogger{})

	_, err := svc.LoadDay(context.Background(), 1, testDate)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestLoadStaff(t *testing.T) {
	staffDay := &domain.StaffWeekSchedule{
		StaffID: 10,
		Weekday: time.Monday,
		DaySchedule: domain.DaySchedule{
			IsOpen:    true,
			StartHour: types.TimeString("10:00"),
			EndHour:   types.TimeString("16:00"),
		},
	}
	block := &domain.StaffSchedule{StaffID: 10, Type: domain.ScheduleTypeBlock}
	schedule := &fakeScheduleRepo{
		config:     defaultConfig(),
		salonDays:  map[time.Weekday]*domain.SalonWeekSchedule{time.Monday: mondayHours("09:00", "18:00")},
		staffDays:  map[time.Weekday]*domain.StaffWeekSchedule{time.Monday: staffDay},
		exceptions: []*domain.StaffSchedule{block},
	}
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		{ID: 1, StaffID: 10},
		{ID: 2, StaffID: 20},
		{ID: 3, StaffID: 10},
	}}
	svc := NewService(schedule, resRepo, nopLogger{})

	day, err := svc.LoadDay(context.Background(), 1, testDate)
	require.NoError(t, err)

	staff, err := svc.LoadStaff(context.Background(), day, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(10), staff.StaffID)
	require.NotNil(t, staff.WeekHours)
	assert.Equal(t, types.TimeString("10:00"), staff.WeekHours.StartHour)
	assert.Len(t, staff.Exceptions, 1)

	// Бронирования мастера выбраны из дневного среза, чужие отброшены
	require.Len(t, staff.Reservations, 2)
	assert.Equal(t, int64(1), staff.Reservations[0].ID)
	assert.Equal(t, int64(3), staff.Reservations[1].ID)
}

func TestLoadStaff_NoWeekScheduleTolerated(t *testing.T) {
	schedule := &fakeScheduleRepo{
		config:    defaultConfig(),
		salonDays: map[time.Weekday]*domain.SalonWeekSchedule{time.Monday: mondayHours("09:00", "18:00")},
	}
	svc := NewService(schedule, &fakeReservationRepo{}, nopLogger{})

	day, err := svc.LoadDay(context.Background(), 1, testDate)
	require.NoError(t, err)

	// Мастер без персонального расписания работает по часам салона
	staff, err := svc.LoadStaff(context.Background(), day, 10)
	require.NoError(t, err)
	assert.Nil(t, staff.WeekHours)
}
