package availability

// OccupancyIndex индекс занятости по корзинам фиксированной ширины
//
// Корзина - интервал шириной reservationIntervalMinutes, выровненный
// на полночь целевого дня. Каждое активное бронирование инкрементирует
// все корзины, пересекающие его интервал [start, end): в карте мастера -
// только бронирования этого мастера, в карте салона - все бронирования.
//
// Пересечение (а не строгое попадание начала корзины в интервал) гарантирует,
// что бронирование, не выровненное на сетку, блокирует все затронутые корзины;
// для выровненных бронирований оба определения совпадают. Генератор и валидатор
// используют один и тот же индекс, поэтому не могут разойтись в оценке занятости
type OccupancyIndex struct {
	dayStart       int64
	bucketSeconds  int64
	availableSheet int
	staff          map[int64]int
	salon          map[int64]int
}

// BuildOccupancy строит индекс занятости для мастера на дату
// staff может быть nil - тогда заполняется только салонная карта
func BuildOccupancy(day *DaySnapshot, staff *StaffSnapshot) *OccupancyIndex {
	ix := &OccupancyIndex{
		dayStart:       day.DayStart(),
		bucketSeconds:  day.Config.BucketSeconds(),
		availableSheet: day.Config.AvailableSheet,
		staff:          make(map[int64]int),
		salon:          make(map[int64]int),
	}

	for _, res := range day.SalonReservations {
		if !res.OccupiesCapacity() {
			continue
		}
		ix.increment(ix.salon, res.StartTime, res.EndTime)
	}

	if staff != nil {
		for _, res := range staff.Reservations {
			if !res.OccupiesCapacity() {
				continue
			}
			ix.increment(ix.staff, res.StartTime, res.EndTime)
		}
	}

	return ix
}

func (ix *OccupancyIndex) increment(m map[int64]int, start, end int64) {
	for b := ix.AlignDown(start); b < end; b += ix.bucketSeconds {
		m[b]++
	}
}

// AlignDown выравнивает unix-время вниз на границу корзины
func (ix *OccupancyIndex) AlignDown(ts int64) int64 {
	offset := ts - ix.dayStart
	if offset < 0 {
		offset -= ix.bucketSeconds - 1
	}
	return ix.dayStart + (offset/ix.bucketSeconds)*ix.bucketSeconds
}

// BucketSeconds возвращает ширину корзины в секундах
func (ix *OccupancyIndex) BucketSeconds() int64 {
	return ix.bucketSeconds
}

// Blocked возвращает true, если корзина занята:
// у мастера уже есть бронирование в ней, либо достигнут
// салонный лимит одновременных бронирований (availableSheet)
func (ix *OccupancyIndex) Blocked(bucket int64) bool {
	if ix.staff[bucket] > 0 {
		return true
	}
	return ix.salon[bucket] >= ix.availableSheet
}

// RangeBlocked возвращает true, если хотя бы одна корзина,
// пересекающая [start, end), занята
func (ix *OccupancyIndex) RangeBlocked(start, end int64) bool {
	for b := ix.AlignDown(start); b < end; b += ix.bucketSeconds {
		if ix.Blocked(b) {
			return true
		}
	}
	return false
}
