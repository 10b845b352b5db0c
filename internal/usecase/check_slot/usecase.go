package check_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	snapshotService "github.com/m04kA/SMC-SalonService/internal/service/snapshot"
)

// UseCase use case проверки доступности конкретного слота.
// Используется как шлюз перед созданием бронирования, поэтому в отличие от
// генерации слотов некорректный вход здесь - жесткая ошибка, а не пустой ответ
type UseCase struct {
	snapshots SnapshotService
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(snapshots SnapshotService, logger Logger) *UseCase {
	return &UseCase{
		snapshots: snapshots,
		logger:    logger,
	}
}

// Execute выполняет проверку доступности слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlot: salon=%d, staff=%d, date=%s, start=%d, end=%d",
		req.SalonID, req.StaffID, req.Date, req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlot: validation failed: %v", err)
		return nil, err
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.UTC)
	if err != nil {
		uc.logger.Warn("CheckSlot: unparsable date=%q", req.Date)
		return nil, fmt.Errorf("%w: invalid date format, expected %s", ErrInvalidInput, domain.DateFormat)
	}

	day, err := uc.snapshots.LoadDay(ctx, req.SalonID, date)
	if err != nil {
		if errors.Is(err, snapshotService.ErrConfigNotFound) {
			return nil, ErrConfigNotFound
		}
		uc.logger.Error("CheckSlot: failed to load day snapshot for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to load day snapshot: %v", ErrInternal, err)
	}

	staff, err := uc.snapshots.LoadStaff(ctx, day, req.StaffID)
	if err != nil {
		uc.logger.Error("CheckSlot: failed to load staff=%d snapshot: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to load staff snapshot: %v", ErrInternal, err)
	}

	available := availability.ValidateSlot(day, staff, req.StartTime, req.EndTime)

	uc.logger.Info("CheckSlot: salon=%d, staff=%d, [%d, %d) available=%t",
		req.SalonID, req.StaffID, req.StartTime, req.EndTime, available)

	return &Response{Available: available}, nil
}
