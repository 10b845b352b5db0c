package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type fakeScheduleRepo struct {
	config       *domain.SalonScheduleConfig
	staffConfigs map[int64]*domain.StaffConfig
	staffList    []*domain.StaffConfig

	upserted *domain.SalonScheduleConfig
}

func (f *fakeScheduleRepo) GetSalonConfig(_ context.Context, _ int64) (*domain.SalonScheduleConfig, error) {
	if f.config == nil {
		return nil, scheduleRepo.ErrConfigNotFound
	}
	return f.config, nil
}

func (f *fakeScheduleRepo) UpsertSalonConfig(_ context.Context, cfg *domain.SalonScheduleConfig) (*domain.SalonScheduleConfig, error) {
	f.upserted = cfg
	cfg.ID = 1
	return cfg, nil
}

func (f *fakeScheduleRepo) GetStaffConfig(_ context.Context, staffID int64) (*domain.StaffConfig, error) {
	cfg, ok := f.staffConfigs[staffID]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return cfg, nil
}

func (f *fakeScheduleRepo) ListStaffConfigs(_ context.Context, _ int64) ([]*domain.StaffConfig, error) {
	return f.staffList, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func salonStaff() map[int64]*domain.StaffConfig {
	return map[int64]*domain.StaffConfig{
		10: {StaffID: 10, SalonID: 1},
		20: {StaffID: 20, SalonID: 2},
	}
}

func TestGetConfig(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := &fakeScheduleRepo{config: &domain.SalonScheduleConfig{
			ID:                         1,
			SalonID:                    1,
			ReservationIntervalMinutes: 30,
			AvailableSheet:             2,
		}}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.GetConfig(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 30, resp.ReservationIntervalMinutes)
		assert.Equal(t, 2, resp.AvailableSheet)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, nopLogger{})

		_, err := svc.GetConfig(context.Background(), 1)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})
}

func TestUpdateConfig(t *testing.T) {
	t.Run("partial update of existing config", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			config: &domain.SalonScheduleConfig{
				SalonID:                    1,
				ReservationIntervalMinutes: 30,
				AvailableSheet:             2,
			},
			staffConfigs: salonStaff(),
		}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
			UserID:                     10,
			SalonID:                    1,
			ReservationIntervalMinutes: ptr.Ptr(15),
		})
		require.NoError(t, err)

		// Интервал обновлен, незаданное поле сохранило значение
		assert.Equal(t, 15, resp.ReservationIntervalMinutes)
		assert.Equal(t, 2, resp.AvailableSheet)
		require.NotNil(t, repo.upserted)
	})

	t.Run("creates config from defaults", func(t *testing.T) {
		repo := &fakeScheduleRepo{staffConfigs: salonStaff()}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
			UserID:         10,
			SalonID:        1,
			AvailableSheet: ptr.Ptr(3),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultReservationIntervalMinutes, resp.ReservationIntervalMinutes)
		assert.Equal(t, 3, resp.AvailableSheet)
	})

	t.Run("access denied for stranger", func(t *testing.T) {
		repo := &fakeScheduleRepo{staffConfigs: salonStaff()}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
			UserID:  999,
			SalonID: 1,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("access denied for staff of another salon", func(t *testing.T) {
		repo := &fakeScheduleRepo{staffConfigs: salonStaff()}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
			UserID:  20,
			SalonID: 1,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("out of bounds values rejected", func(t *testing.T) {
		repo := &fakeScheduleRepo{staffConfigs: salonStaff()}
		svc := NewService(repo, nopLogger{})

		_, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
			UserID:                     10,
			SalonID:                    1,
			ReservationIntervalMinutes: ptr.Ptr(3),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestListStaff(t *testing.T) {
	repo := &fakeScheduleRepo{staffList: []*domain.StaffConfig{
		{StaffID: 10, SalonID: 1, DisplayName: "Анна", Priority: 200},
		{StaffID: 30, SalonID: 1, DisplayName: "Мария", Priority: 100},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListStaff(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Staffs, 2)
	assert.Equal(t, "Анна", resp.Staffs[0].DisplayName)
	assert.Equal(t, 200, resp.Staffs[0].Priority)
}
