package domain

import "time"

// SalonScheduleConfig represents the booking grid configuration of a salon
// ReservationIntervalMinutes задает шаг сетки бронирования,
// AvailableSheet - максимум одновременных бронирований по салону в одном интервале
type SalonScheduleConfig struct {
	ID                         int64
	SalonID                    int64
	ReservationIntervalMinutes int
	AvailableSheet             int
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// BucketSeconds returns the width of one occupancy bucket in seconds
func (c *SalonScheduleConfig) BucketSeconds() int64 {
	return int64(c.ReservationIntervalMinutes) * 60
}

// SupportsParallelReservations returns true if more than one concurrent
// reservation is allowed salon-wide
func (c *SalonScheduleConfig) SupportsParallelReservations() bool {
	return c.AvailableSheet > 1
}

// IsValid returns true if the configuration values are within business bounds
func (c *SalonScheduleConfig) IsValid() bool {
	return c.ReservationIntervalMinutes >= MinReservationIntervalMinutes &&
		c.ReservationIntervalMinutes <= MaxReservationIntervalMinutes &&
		c.AvailableSheet >= MinAvailableSheet &&
		c.AvailableSheet <= MaxAvailableSheet
}

// StaffConfig represents per-staff presentation and ranking settings
// Priority определяет порядок перебора мастеров, когда конкретный мастер не запрошен
type StaffConfig struct {
	ID          int64
	StaffID     int64
	SalonID     int64
	DisplayName string
	Priority    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
