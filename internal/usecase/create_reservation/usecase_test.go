package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/availability"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/internal/integrations/customerservice"
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

type fakeReservationRepo struct {
	created *domain.Reservation
	err     error
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	res.ID = 42
	res.CreatedAt = time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	res.UpdatedAt = res.CreatedAt
	f.created = res
	return res, nil
}

type stubScheduleRepo struct {
	staffCfg *domain.StaffConfig
}

func (s *stubScheduleRepo) GetStaffConfig(_ context.Context, _ int64) (*domain.StaffConfig, error) {
	if s.staffCfg == nil {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return s.staffCfg, nil
}

type stubSnapshots struct {
	day *availability.DaySnapshot
}

func (s *stubSnapshots) LoadDay(_ context.Context, _ int64, _ time.Time) (*availability.DaySnapshot, error) {
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

type stubCustomerClient struct {
	customer *customerservice.Customer
	err      error
}

func (s *stubCustomerClient) GetCustomerWithGracefulDegradation(_ context.Context, _ int64) (*customerservice.Customer, error) {
	return s.customer, s.err
}

// passthroughTxManager выполняет функцию без транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

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

func newTestUseCase(repo *fakeReservationRepo, schedule *stubScheduleRepo, day *availability.DaySnapshot, customers *stubCustomerClient) *UseCase {
	uc := NewUseCase(
		repo,
		schedule,
		&stubSnapshots{day: day},
		customers,
		passthroughTxManager{},
		nopLogger{},
	)
	uc.timeProvider = fixedClock{now: time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerID: 7,
		SalonID:    1,
		StaffID:    10,
		Date:       testDateStr,
		StartTime:  at("10:00"),
		EndTime:    at("11:00"),
		MenuName:   "Стрижка",
		MenuPrice:  1500,
	}
}

func defaultStaffCfg() *domain.StaffConfig {
	return &domain.StaffConfig{StaffID: 10, SalonID: 1, DisplayName: "Master 10"}
}

func defaultCustomer() *stubCustomerClient {
	return &stubCustomerClient{customer: &customerservice.Customer{ID: 7, Name: "Иван Петров"}}
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &stubScheduleRepo{staffCfg: defaultStaffCfg()}, openDay(), defaultCustomer())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero customer", func(r *Request) { r.CustomerID = 0 }},
		{"zero salon", func(r *Request) { r.SalonID = 0 }},
		{"empty date", func(r *Request) { r.Date = "" }},
		{"inverted interval", func(r *Request) { r.StartTime, r.EndTime = r.EndTime, r.StartTime }},
		{"too short", func(r *Request) { r.EndTime = r.StartTime + 60 }},
		{"empty menu name", func(r *Request) { r.MenuName = "" }},
		{"negative price", func(r *Request) { r.MenuPrice = -1 }},
		{"bad date format", func(r *Request) { r.Date = "03/11/2025" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &stubScheduleRepo{staffCfg: defaultStaffCfg()}, openDay(), defaultCustomer())
	uc.timeProvider = fixedClock{now: time.Date(2025, 11, 10, 10, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_StaffNotFound(t *testing.T) {
	t.Run("unregistered staff", func(t *testing.T) {
		uc := newTestUseCase(&fakeReservationRepo{}, &stubScheduleRepo{}, openDay(), defaultCustomer())
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("staff from another salon", func(t *testing.T) {
		cfg := &domain.StaffConfig{StaffID: 10, SalonID: 2}
		uc := newTestUseCase(&fakeReservationRepo{}, &stubScheduleRepo{staffCfg: cfg}, openDay(), defaultCustomer())
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})
}

func TestExecute_CustomerNotFound(t *testing.T) {
	customers := &stubCustomerClient{err: customerservice.ErrCustomerNotFound}
	uc := newTestUseCase(&fakeReservationRepo{}, &stubScheduleRepo{staffCfg: defaultStaffCfg()}, openDay(), customers)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_CustomerServiceDegraded(t *testing.T) {
	repo := &fakeReservationRepo{}
	customers := &stubCustomerClient{err: customerservice.ErrServiceDegraded}
	uc := newTestUseCase(repo, &stubScheduleRepo{staffCfg: defaultStaffCfg()}, openDay(), customers)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Бронирование создано, но без имени клиента
	assert.Nil(t, resp.CustomerName)
	require.NotNil(t, repo.created)
	assert.Nil(t, repo.created.CustomerName)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	day := openDay()
	day.SalonReservations = []*domain.Reservation{
		{
			StaffID:   10,
			StartTime: at("10:00"),
			EndTime:   at("11:00"),
			Status:    domain.StatusConfirmed,
		},
	}
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, &stubScheduleRepo{staffCfg: defaultStaffCfg()}, day, defaultCustomer())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, &stubScheduleRepo{staffCfg: defaultStaffCfg()}, openDay(), defaultCustomer())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(1), resp.SalonID)
	assert.Equal(t, int64(10), resp.StaffID)
	assert.Equal(t, int64(7), resp.CustomerID)
	assert.Equal(t, testDateStr, resp.Date)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Стрижка", resp.MenuName)
	require.NotNil(t, resp.CustomerName)
	assert.Equal(t, "Иван Петров", *resp.CustomerName)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
}
