package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	customerClient "github.com/m04kA/SMC-SalonService/internal/integrations/customerservice"
	snapshotService "github.com/m04kA/SMC-SalonService/internal/service/snapshot"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	snapshots       SnapshotService
	customerClient  CustomerServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	snapshots SnapshotService,
	customerClient CustomerServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		snapshots:       snapshots,
		customerClient:  customerClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности слота и вставка выполняются в одной сериализуемой
// транзакции: чтение бронирований дня блокирует строки (FOR UPDATE), поэтому
// два конкурирующих клиента не могут занять один слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: customer=%d, salon=%d, staff=%d, date=%s, start=%d",
		req.CustomerID, req.SalonID, req.StaffID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Парсим и проверяем дату визита
	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.UTC)
	if err != nil {
		uc.logger.Warn("CreateReservation: unparsable date=%q", req.Date)
		return nil, fmt.Errorf("%w: invalid date format, expected %s", ErrInvalidInput, domain.DateFormat)
	}

	if err := validateDate(date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем, что мастер принадлежит салону
	staffCfg, err := uc.scheduleRepo.GetStaffConfig(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("CreateReservation: staff=%d is not registered", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateReservation: failed to get staff=%d config: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff config: %v", ErrInternal, err)
	}
	if staffCfg.SalonID != req.SalonID {
		uc.logger.Warn("CreateReservation: staff=%d belongs to salon=%d, not salon=%d",
			req.StaffID, staffCfg.SalonID, req.SalonID)
		return nil, ErrStaffNotFound
	}

	// 4. Получаем профиль клиента для денормализации имени
	// При недоступности CustomerService бронирование создается без имени
	var customerName *string
	customer, err := uc.customerClient.GetCustomerWithGracefulDegradation(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateReservation: customer=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Warn("CreateReservation: proceeding without customer name for customer=%d: %v",
			req.CustomerID, err)
	} else {
		customerName = &customer.Name
	}

	// 5. Проверяем слот и создаем бронирование в сериализуемой транзакции
	var result *domain.Reservation

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		day, err := uc.snapshots.LoadDay(txCtx, req.SalonID, date)
		if err != nil {
			if errors.Is(err, snapshotService.ErrConfigNotFound) {
				return ErrConfigNotFound
			}
			uc.logger.Error("CreateReservation: failed to load day snapshot for salon=%d: %v", req.SalonID, err)
			return fmt.Errorf("%w: failed to load day snapshot: %v", ErrInternal, err)
		}

		staff, err := uc.snapshots.LoadStaff(txCtx, day, req.StaffID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to load staff=%d snapshot: %v", req.StaffID, err)
			return fmt.Errorf("%w: failed to load staff snapshot: %v", ErrInternal, err)
		}

		if !availability.ValidateSlot(day, staff, req.StartTime, req.EndTime) {
			uc.logger.Warn("CreateReservation: slot [%d, %d) not available for staff=%d",
				req.StartTime, req.EndTime, req.StaffID)
			return ErrSlotNotAvailable
		}

		reservation := &domain.Reservation{
			SalonID:    req.SalonID,
			StaffID:    req.StaffID,
			CustomerID: req.CustomerID,
			Date:       date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			Status:     domain.StatusConfirmed,
			// Денормализация данных услуги и клиента
			MenuName:     req.MenuName,
			MenuPrice:    req.MenuPrice,
			CustomerName: customerName,
			Notes:        req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		SalonID:      result.SalonID,
		StaffID:      result.StaffID,
		CustomerID:   result.CustomerID,
		Date:         result.Date.Format(domain.DateFormat),
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		MenuName:     result.MenuName,
		MenuPrice:    result.MenuPrice,
		CustomerName: result.CustomerName,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
