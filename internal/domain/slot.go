package domain

// AvailableSlot represents a bookable time window
// HasOverlap выставляется onion-генератором, когда конец слота
// выходит за время закрытия в пределах разрешенного допуска
type AvailableSlot struct {
	StartTime  int64 // unix seconds
	EndTime    int64 // unix seconds
	HasOverlap bool
}

// DurationMinutes returns the slot length in minutes
func (s *AvailableSlot) DurationMinutes() int {
	return int((s.EndTime - s.StartTime) / 60)
}

// Overlaps returns true if the slot overlaps the half-open interval [start, end)
func (s *AvailableSlot) Overlaps(start, end int64) bool {
	return s.StartTime < end && s.EndTime > start
}

// StaffSlots groups the available slots computed for one staff member
type StaffSlots struct {
	StaffID     int64
	DisplayName string
	Slots       []AvailableSlot
}
