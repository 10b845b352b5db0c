package availability

// ValidateSlot проверяет, что конкретный кандидат (start, end) все еще доступен
//
// Используется как финальный гейт непосредственно перед записью бронирования
// (внутри транзакции, которую обеспечивает вызывающий код). Построен на тех же
// Resolve/Carve/Occupancy, что и генераторы: кандидат принимается, если он
// целиком лежит в одном вырезанном открытом интервале и ни одна затронутая
// корзина не занята. Любой слот, выданный плотным генератором на том же
// снапшоте, проходит эту проверку
func ValidateSlot(day *DaySnapshot, staff *StaffSnapshot, start, end int64) bool {
	if end <= start {
		return false
	}

	win := ResolveWindow(day, staff)
	if !win.Open {
		return false
	}

	intervals := CarveBlocks(win, staff.Exceptions)
	if !containedInOne(intervals, start, end) {
		return false
	}

	ix := BuildOccupancy(day, staff)
	return !ix.RangeBlocked(start, end)
}
