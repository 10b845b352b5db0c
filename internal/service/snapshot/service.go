package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
)

// Service собирает снапшоты данных для расчета доступности.
// Генерация слотов и проверка слота обязаны читать данные через один и тот же
// код - иначе их представления о дне салона могут разойтись
type Service struct {
	scheduleRepo    ScheduleRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса снапшотов
func NewService(
	scheduleRepo ScheduleRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:    scheduleRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// LoadDay загружает срез данных салона на дату: конфигурацию, часы работы,
// признак праздника и все активные бронирования салона.
// Отсутствие конфигурации - ошибка: без шага сетки расчет невозможен
func (s *Service) LoadDay(ctx context.Context, salonID int64, date time.Time) (*availability.DaySnapshot, error) {
	cfg, err := s.scheduleRepo.GetSalonConfig(ctx, salonID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			s.logger.Warn("LoadDay: config not found for salon=%d", salonID)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("LoadDay: failed to load config for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: LoadDay - load config: %v", ErrInternal, err)
	}

	day := &availability.DaySnapshot{
		Date:   date,
		Config: *cfg,
	}

	salonHours, err := s.scheduleRepo.GetSalonWeekDay(ctx, salonID, date.Weekday())
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		s.logger.Error("LoadDay: failed to load salon hours for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: LoadDay - load salon hours: %v", ErrInternal, err)
	}
	if salonHours != nil {
		day.SalonHours = &salonHours.DaySchedule
	}

	holiday, err := s.scheduleRepo.HasSalonException(ctx, salonID, date, domain.ScheduleTypeHoliday)
	if err != nil {
		s.logger.Error("LoadDay: failed to check holiday for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: LoadDay - check holiday: %v", ErrInternal, err)
	}
	day.SalonHoliday = holiday

	reservations, err := s.reservationRepo.ListWithFilter(ctx, domain.ReservationsFilter{
		SalonID:   salonID,
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		s.logger.Error("LoadDay: failed to load reservations for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: LoadDay - load reservations: %v", ErrInternal, err)
	}
	day.SalonReservations = reservations

	return day, nil
}

// LoadStaff загружает срез данных мастера на дату поверх уже загруженного
// дневного среза. Бронирования мастера выбираются из дневного среза без
// повторного похода в БД
func (s *Service) LoadStaff(ctx context.Context, day *availability.DaySnapshot, staffID int64) (*availability.StaffSnapshot, error) {
	staff := &availability.StaffSnapshot{StaffID: staffID}

	weekHours, err := s.scheduleRepo.GetStaffWeekDay(ctx, staffID, day.Date.Weekday())
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		s.logger.Error("LoadStaff: failed to load week hours for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: LoadStaff - load week hours: %v", ErrInternal, err)
	}
	if weekHours != nil {
		staff.WeekHours = &weekHours.DaySchedule
	}

	exceptions, err := s.scheduleRepo.ListStaffSchedules(ctx, staffID, day.Date)
	if err != nil {
		s.logger.Error("LoadStaff: failed to load exceptions for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: LoadStaff - load exceptions: %v", ErrInternal, err)
	}
	staff.Exceptions = exceptions

	for _, res := range day.SalonReservations {
		if res.StaffID == staffID {
			staff.Reservations = append(staff.Reservations, res)
		}
	}

	return staff, nil
}
