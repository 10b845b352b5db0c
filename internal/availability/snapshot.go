package availability

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// DaySnapshot срез данных салона на одну дату, прочитанный вызывающим кодом
// Движок не выполняет I/O и не мутирует срез: все расчеты - чистые функции
// от снапшота, поэтому результат детерминирован для одного и того же снапшота
type DaySnapshot struct {
	// Date полночь целевого дня в таймзоне салона
	Date time.Time

	Config domain.SalonScheduleConfig

	// SalonHours запись недельного расписания салона на weekday даты,
	// nil - записи нет (салон закрыт в этот день недели)
	SalonHours *domain.DaySchedule

	// SalonHoliday true, если на дату есть исключение типа holiday
	SalonHoliday bool

	// SalonReservations все бронирования салона на дату (любой мастер)
	SalonReservations []*domain.Reservation
}

// DayStart возвращает unix-время полуночи целевого дня
func (d *DaySnapshot) DayStart() int64 {
	return d.Date.Unix()
}

// StaffSnapshot срез данных одного мастера на ту же дату
type StaffSnapshot struct {
	StaffID int64

	// WeekHours запись недельного расписания мастера на weekday даты,
	// nil - записи нет (мастер работает по часам салона)
	WeekHours *domain.DaySchedule

	// Exceptions записи недоступности мастера на дату
	Exceptions []*domain.StaffSchedule

	// Reservations бронирования мастера на дату
	Reservations []*domain.Reservation
}
