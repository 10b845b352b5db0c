package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с расписаниями и конфигурацией салонов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSalonConfig получает конфигурацию сетки бронирования салона
func (r *Repository) GetSalonConfig(ctx context.Context, salonID int64) (*domain.SalonScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"reservation_interval_minutes",
		"available_sheet",
		"created_at",
		"updated_at",
	).
		From("salon_schedule_configs").
		Where(squirrel.Eq{"salon_id": salonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSalonConfig - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.SalonScheduleConfig
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.SalonID,
		&cfg.ReservationIntervalMinutes,
		&cfg.AvailableSheet,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSalonConfig - scan config: %v", ErrScanRow, err)
	}

	return &cfg, nil
}

// UpsertSalonConfig создает или обновляет конфигурацию сетки бронирования салона
func (r *Repository) UpsertSalonConfig(ctx context.Context, cfg *domain.SalonScheduleConfig) (*domain.SalonScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salon_schedule_configs").
		Columns("salon_id", "reservation_interval_minutes", "available_sheet").
		Values(cfg.SalonID, cfg.ReservationIntervalMinutes, cfg.AvailableSheet).
		Suffix(`ON CONFLICT (salon_id) DO UPDATE SET
			reservation_interval_minutes = EXCLUDED.reservation_interval_minutes,
			available_sheet = EXCLUDED.available_sheet,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSalonConfig - build upsert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSalonConfig - execute upsert: %v", ErrExecQuery, err)
	}

	return cfg, nil
}

// GetSalonWeekDay получает часы работы салона на указанный день недели
// Возвращает ErrScheduleNotFound, если запись для этого дня отсутствует
func (r *Repository) GetSalonWeekDay(ctx context.Context, salonID int64, weekday time.Weekday) (*domain.SalonWeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"weekday",
		"is_open",
		"start_hour",
		"end_hour",
		"created_at",
		"updated_at",
	).
		From("salon_week_schedules").
		Where(squirrel.Eq{"salon_id": salonID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSalonWeekDay - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.SalonWeekSchedule
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.SalonID,
		&s.Weekday,
		&s.IsOpen,
		&s.StartHour,
		&s.EndHour,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSalonWeekDay - scan schedule: %v", ErrScanRow, err)
	}

	return &s, nil
}

// UpsertSalonWeekDay создает или обновляет часы работы салона на день недели
func (r *Repository) UpsertSalonWeekDay(ctx context.Context, s *domain.SalonWeekSchedule) (*domain.SalonWeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salon_week_schedules").
		Columns("salon_id", "weekday", "is_open", "start_hour", "end_hour").
		Values(s.SalonID, int(s.Weekday), s.IsOpen, s.StartHour, s.EndHour).
		Suffix(`ON CONFLICT (salon_id, weekday) DO UPDATE SET
			is_open = EXCLUDED.is_open,
			start_hour = EXCLUDED.start_hour,
			end_hour = EXCLUDED.end_hour,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSalonWeekDay - build upsert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSalonWeekDay - execute upsert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// HasSalonException проверяет наличие исключения (например, праздника)
// указанного типа у салона на конкретную дату
func (r *Repository) HasSalonException(ctx context.Context, salonID int64, date time.Time, exceptionType string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("salon_schedule_exceptions").
		Where(squirrel.Eq{
			"salon_id":       salonID,
			"exception_date": date,
			"type":           exceptionType,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasSalonException - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasSalonException - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// CreateSalonException создает исключение расписания салона на дату
func (r *Repository) CreateSalonException(ctx context.Context, e *domain.SalonScheduleException) (*domain.SalonScheduleException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salon_schedule_exceptions").
		Columns("salon_id", "exception_date", "type").
		Values(e.SalonID, e.Date, e.Type).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSalonException - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSalonException - execute insert: %v", ErrExecQuery, err)
	}

	return e, nil
}

// GetStaffWeekDay получает часы работы мастера на указанный день недели
// Возвращает ErrScheduleNotFound, если у мастера нет записи на этот день -
// в этом случае мастер работает по часам салона
func (r *Repository) GetStaffWeekDay(ctx context.Context, staffID int64, weekday time.Weekday) (*domain.StaffWeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"salon_id",
		"weekday",
		"is_open",
		"start_hour",
		"end_hour",
		"created_at",
		"updated_at",
	).
		From("staff_week_schedules").
		Where(squirrel.Eq{"staff_id": staffID, "weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffWeekDay - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.StaffWeekSchedule
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.StaffID,
		&s.SalonID,
		&s.Weekday,
		&s.IsOpen,
		&s.StartHour,
		&s.EndHour,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffWeekDay - scan schedule: %v", ErrScanRow, err)
	}

	return &s, nil
}

// UpsertStaffWeekDay создает или обновляет часы работы мастера на день недели
func (r *Repository) UpsertStaffWeekDay(ctx context.Context, s *domain.StaffWeekSchedule) (*domain.StaffWeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_week_schedules").
		Columns("staff_id", "salon_id", "weekday", "is_open", "start_hour", "end_hour").
		Values(s.StaffID, s.SalonID, int(s.Weekday), s.IsOpen, s.StartHour, s.EndHour).
		Suffix(`ON CONFLICT (staff_id, weekday) DO UPDATE SET
			is_open = EXCLUDED.is_open,
			start_hour = EXCLUDED.start_hour,
			end_hour = EXCLUDED.end_hour,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertStaffWeekDay - build upsert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertStaffWeekDay - execute upsert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// ListStaffSchedules получает датированные записи недоступности мастера
// (отгулы и частичные блокировки) на указанную дату
func (r *Repository) ListStaffSchedules(ctx context.Context, staffID int64, date time.Time) ([]*domain.StaffSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"salon_id",
		"schedule_date",
		"type",
		"is_all_day",
		"start_time",
		"end_time",
		"notes",
		"created_at",
		"updated_at",
	).
		From("staff_schedules").
		Where(squirrel.Eq{"staff_id": staffID, "schedule_date": date}).
		OrderBy("start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffSchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffSchedules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.StaffSchedule, 0)
	for rows.Next() {
		var s domain.StaffSchedule
		err = rows.Scan(
			&s.ID,
			&s.StaffID,
			&s.SalonID,
			&s.Date,
			&s.Type,
			&s.IsAllDay,
			&s.StartTime,
			&s.EndTime,
			&s.Notes,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListStaffSchedules - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaffSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// CreateStaffSchedule создает датированную запись недоступности мастера
func (r *Repository) CreateStaffSchedule(ctx context.Context, s *domain.StaffSchedule) (*domain.StaffSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_schedules").
		Columns("staff_id", "salon_id", "schedule_date", "type", "is_all_day", "start_time", "end_time", "notes").
		Values(s.StaffID, s.SalonID, s.Date, s.Type, s.IsAllDay, s.StartTime, s.EndTime, s.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateStaffSchedule - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateStaffSchedule - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// ListStaffConfigs получает конфигурации мастеров салона,
// отсортированные по убыванию приоритета
func (r *Repository) ListStaffConfigs(ctx context.Context, salonID int64) ([]*domain.StaffConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"salon_id",
		"display_name",
		"priority",
		"created_at",
		"updated_at",
	).
		From("staff_configs").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("priority DESC, staff_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffConfigs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffConfigs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.StaffConfig, 0)
	for rows.Next() {
		var c domain.StaffConfig
		err = rows.Scan(
			&c.ID,
			&c.StaffID,
			&c.SalonID,
			&c.DisplayName,
			&c.Priority,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListStaffConfigs - scan row: %v", ErrScanRow, err)
		}
		configs = append(configs, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaffConfigs - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// GetStaffConfig получает конфигурацию мастера
// Возвращает ErrScheduleNotFound, если мастер не зарегистрирован
func (r *Repository) GetStaffConfig(ctx context.Context, staffID int64) (*domain.StaffConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"salon_id",
		"display_name",
		"priority",
		"created_at",
		"updated_at",
	).
		From("staff_configs").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffConfig - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.StaffConfig
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.StaffID,
		&c.SalonID,
		&c.DisplayName,
		&c.Priority,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffConfig - scan config: %v", ErrScanRow, err)
	}

	return &c, nil
}
