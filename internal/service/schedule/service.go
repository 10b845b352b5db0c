package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

// Service сервис для работы с конфигурацией расписания салонов
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфигурации расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetConfig получает конфигурацию сетки бронирования салона
// Публичный метод - используется клиентами для отображения сетки
func (s *Service) GetConfig(ctx context.Context, salonID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetConfig: fetching config for salon=%d", salonID)

	config, err := s.scheduleRepo.GetSalonConfig(ctx, salonID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			s.logger.Warn("GetConfig: config not found for salon=%d", salonID)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("GetConfig: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetConfig: successfully fetched config id=%d for salon=%d", config.ID, salonID)
	return models.FromDomainConfig(config), nil
}

// UpdateConfig создает или обновляет конфигурацию сетки бронирования салона
// Доступно только мастерам салона. Поддерживает частичное обновление
func (s *Service) UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateConfig: updating config for salon=%d by user=%d", req.SalonID, req.UserID)

	// 1. Проверяем права доступа (только мастер салона)
	if err := s.checkSalonAccess(ctx, req.SalonID, req.UserID); err != nil {
		s.logger.Warn("UpdateConfig: access denied for user=%d to salon=%d", req.UserID, req.SalonID)
		return nil, err
	}

	// 2. Получаем существующую конфигурацию или стартуем с дефолтов
	config, err := s.scheduleRepo.GetSalonConfig(ctx, req.SalonID)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			s.logger.Error("UpdateConfig: repository error for salon=%d: %v", req.SalonID, err)
			return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
		}
		config = &domain.SalonScheduleConfig{
			SalonID:                    req.SalonID,
			ReservationIntervalMinutes: domain.DefaultReservationIntervalMinutes,
			AvailableSheet:             domain.DefaultAvailableSheet,
		}
	}

	// 3. Применяем частичное обновление и валидируем результат
	req.ApplyToConfig(config)
	if !config.IsValid() {
		s.logger.Warn("UpdateConfig: validation failed for salon=%d: interval=%d, sheet=%d",
			req.SalonID, config.ReservationIntervalMinutes, config.AvailableSheet)
		return nil, fmt.Errorf("%w: interval must be %d..%d minutes, sheet must be %d..%d",
			ErrInvalidInput,
			domain.MinReservationIntervalMinutes, domain.MaxReservationIntervalMinutes,
			domain.MinAvailableSheet, domain.MaxAvailableSheet)
	}

	// 4. Сохраняем
	updated, err := s.scheduleRepo.UpsertSalonConfig(ctx, config)
	if err != nil {
		s.logger.Error("UpdateConfig: repository error for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: successfully saved config id=%d for salon=%d", updated.ID, req.SalonID)
	return models.FromDomainConfig(updated), nil
}

// ListStaff получает список мастеров салона в порядке приоритета
// Публичный метод - используется клиентами для выбора мастера
func (s *Service) ListStaff(ctx context.Context, salonID int64) (*models.StaffConfigListResponse, error) {
	s.logger.Info("ListStaff: fetching staff configs for salon=%d", salonID)

	configs, err := s.scheduleRepo.ListStaffConfigs(ctx, salonID)
	if err != nil {
		s.logger.Error("ListStaff: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListStaff: successfully fetched %d staff configs for salon=%d", len(configs), salonID)
	return models.FromDomainStaffConfigList(configs), nil
}

// checkSalonAccess проверяет, что пользователь зарегистрирован мастером этого салона
func (s *Service) checkSalonAccess(ctx context.Context, salonID int64, userID int64) error {
	cfg, err := s.scheduleRepo.GetStaffConfig(ctx, userID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkSalonAccess: failed to get staff config for user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkSalonAccess - repository error: %v", ErrInternal, err)
	}

	if cfg.SalonID != salonID {
		return ErrAccessDenied
	}

	return nil
}
