package availability

// Window эффективное окно работы на дату: пересечение часов салона
// и часов мастера после применения исключений на весь день
type Window struct {
	Start int64 // unix seconds
	End   int64 // unix seconds
	Open  bool
}

// Interval полуоткрытый интервал [Start, End) в unix-секундах
type Interval struct {
	Start int64
	End   int64
}

// Contains возвращает true, если [start, end) целиком лежит внутри интервала
func (i Interval) Contains(start, end int64) bool {
	return start >= i.Start && end <= i.End
}

// ResolveWindow вычисляет эффективное окно работы для салона и (опционально) мастера
//
// Правила:
//   - нет записи расписания салона на этот день недели, салон закрыт
//     или часы не парсятся - окно закрыто
//   - на дату есть исключение салона (holiday) - окно закрыто
//   - staff == nil или у мастера нет записи на этот день недели - окно салона
//     (мастер работает по часам салона)
//   - запись мастера с IsOpen=false - окно закрыто (мастер явно не работает);
//     это же правило применяет валидатор, политика единая для обоих путей
//   - часы мастера не парсятся - откат к окну салона
//   - пересечение часов салона и мастера; пустое пересечение - окно закрыто
func ResolveWindow(day *DaySnapshot, staff *StaffSnapshot) Window {
	closed := Window{}

	if day.SalonHours == nil || !day.SalonHours.IsOpen {
		return closed
	}
	if day.SalonHoliday {
		return closed
	}

	salonStart, err := day.SalonHours.StartHour.UnixOn(day.Date)
	if err != nil {
		return closed
	}
	salonEnd, err := day.SalonHours.EndHour.UnixOn(day.Date)
	if err != nil {
		return closed
	}
	if salonStart >= salonEnd {
		return closed
	}

	if staff == nil || staff.WeekHours == nil {
		return Window{Start: salonStart, End: salonEnd, Open: true}
	}

	if !staff.WeekHours.IsOpen {
		return closed
	}

	staffStart, errStart := staff.WeekHours.StartHour.UnixOn(day.Date)
	staffEnd, errEnd := staff.WeekHours.EndHour.UnixOn(day.Date)
	if errStart != nil || errEnd != nil {
		// Некорректные часы мастера трактуем как отсутствие записи
		return Window{Start: salonStart, End: salonEnd, Open: true}
	}

	start := salonStart
	if staffStart > start {
		start = staffStart
	}
	end := salonEnd
	if staffEnd < end {
		end = staffEnd
	}

	if start >= end {
		return closed
	}

	return Window{Start: start, End: end, Open: true}
}
