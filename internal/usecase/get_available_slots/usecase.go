package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	snapshotService "github.com/m04kA/SMC-SalonService/internal/service/snapshot"
)

// UseCase use case для получения доступных слотов салона
type UseCase struct {
	snapshots    SnapshotService
	scheduleRepo ScheduleRepository
	staffTopN    int
	fanOutLimit  int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	snapshots SnapshotService,
	scheduleRepo ScheduleRepository,
	staffTopN int,
	fanOutLimit int,
	logger Logger,
) *UseCase {
	if staffTopN <= 0 {
		staffTopN = 1
	}
	if fanOutLimit <= 0 {
		fanOutLimit = 1
	}
	return &UseCase{
		snapshots:    snapshots,
		scheduleRepo: scheduleRepo,
		staffTopN:    staffTopN,
		fanOutLimit:  fanOutLimit,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Закрытый салон, праздник, отсутствие мастеров, некорректная дата или
// длительность дают пустой ответ, а не ошибку - для читающего API это
// равнозначно "слотов нет". Отсутствие конфигурации салона - ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: salon=%d, staff=%v, date=%s, duration=%d, mode=%s",
		req.SalonID, req.StaffID, req.Date, req.DurationMinutes, req.Mode)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	if req.Mode == "" {
		req.Mode = ModeDense
	}
	normalizeOnionParams(req)

	resp := &Response{
		SalonID: req.SalonID,
		Date:    req.Date,
		Mode:    req.Mode,
		Staffs:  []StaffSlots{},
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.UTC)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: unparsable date=%q for salon=%d", req.Date, req.SalonID)
		return resp, nil
	}

	if req.DurationMinutes <= 0 {
		uc.logger.Warn("GetAvailableSlots: non-positive duration=%d for salon=%d", req.DurationMinutes, req.SalonID)
		return resp, nil
	}

	day, err := uc.snapshots.LoadDay(ctx, req.SalonID, date)
	if err != nil {
		if errors.Is(err, snapshotService.ErrConfigNotFound) {
			return nil, ErrConfigNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to load day snapshot for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to load day snapshot: %v", ErrInternal, err)
	}

	staffConfigs, err := uc.selectStaff(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(staffConfigs) == 0 {
		uc.logger.Info("GetAvailableSlots: no eligible staff for salon=%d", req.SalonID)
		return resp, nil
	}

	// Расчет по мастерам независим - распараллеливаем с ограничением
	results := make([]StaffSlots, len(staffConfigs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.fanOutLimit)

	for i, sc := range staffConfigs {
		i, sc := i, sc
		g.Go(func() error {
			staff, err := uc.snapshots.LoadStaff(gctx, day, sc.StaffID)
			if err != nil {
				return fmt.Errorf("%w: failed to load staff=%d snapshot: %v", ErrInternal, sc.StaffID, err)
			}

			results[i] = StaffSlots{
				StaffID:     sc.StaffID,
				DisplayName: sc.DisplayName,
				Slots:       uc.computeSlots(day, staff, req),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAvailableSlots: staff fan-out failed for salon=%d: %v", req.SalonID, err)
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r.Slots)
	}
	resp.Staffs = results

	uc.logger.Info("GetAvailableSlots: generated %d slots across %d staffs for salon=%d, date=%s",
		total, len(results), req.SalonID, req.Date)

	return resp, nil
}

// selectStaff выбирает мастеров для расчета: запрошенного или топ по приоритету
func (uc *UseCase) selectStaff(ctx context.Context, req *Request) ([]*domain.StaffConfig, error) {
	if req.StaffID != nil {
		cfg, err := uc.scheduleRepo.GetStaffConfig(ctx, *req.StaffID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("GetAvailableSlots: staff=%d is not registered in salon=%d", *req.StaffID, req.SalonID)
				return nil, nil
			}
			uc.logger.Error("GetAvailableSlots: failed to get staff=%d config: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff config: %v", ErrInternal, err)
		}
		if cfg.SalonID != req.SalonID {
			uc.logger.Warn("GetAvailableSlots: staff=%d belongs to salon=%d, not salon=%d",
				*req.StaffID, cfg.SalonID, req.SalonID)
			return nil, nil
		}
		return []*domain.StaffConfig{cfg}, nil
	}

	configs, err := uc.scheduleRepo.ListStaffConfigs(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list staff configs for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to list staff configs: %v", ErrInternal, err)
	}

	if len(configs) > uc.staffTopN {
		configs = configs[:uc.staffTopN]
	}
	return configs, nil
}

// computeSlots прогоняет движок доступности для одного мастера
func (uc *UseCase) computeSlots(day *availability.DaySnapshot, staff *availability.StaffSnapshot, req *Request) []Slot {
	win := availability.ResolveWindow(day, staff)
	intervals := availability.CarveBlocks(win, staff.Exceptions)
	ix := availability.BuildOccupancy(day, staff)

	var slots []domain.AvailableSlot
	if req.Mode == ModeOnion {
		slots = availability.GenerateOnion(intervals, ix, req.DurationMinutes, availability.OnionParams{
			SlotSizeMinutes:     req.SlotSizeMinutes,
			Layer:               req.Layer,
			DisableBackSlots:    req.DisableBackSlots,
			AllowOverlapMinutes: req.AllowOverlapMinutes,
		})
	} else {
		slots = availability.GenerateDense(intervals, ix, req.DurationMinutes)
	}

	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			HasOverlap: s.HasOverlap,
		})
	}
	return out
}
