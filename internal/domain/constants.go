package domain

// Default configuration values
const (
	DefaultReservationIntervalMinutes = 30
	DefaultAvailableSheet             = 1
)

// Business validation constants
const (
	MinReservationIntervalMinutes = 5
	MaxReservationIntervalMinutes = 240 // 4 hours
	MinAvailableSheet             = 1
	MaxAvailableSheet             = 100
	MinDurationMinutes            = 5
	MaxDurationMinutes            = 480 // 8 hours
	MaxNotesLength                = 500
	MaxCancellationReasonLength   = 500
)

// Onion mode defaults
const (
	DefaultOnionSlotSizeMinutes = 60
	DefaultOnionLayer           = 2
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при подсчёте занятости
var InactiveStatuses = []ReservationStatus{
	StatusCancelledByCustomer,
	StatusCancelledBySalon,
	StatusNoShow,
}

// CapacityStatuses список статусов, занимающих место в расписании
var CapacityStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
