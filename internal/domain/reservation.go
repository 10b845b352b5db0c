package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending             ReservationStatus = "pending"
	StatusConfirmed           ReservationStatus = "confirmed"
	StatusCompleted           ReservationStatus = "completed"
	StatusCancelledByCustomer ReservationStatus = "cancelled_by_customer"
	StatusCancelledBySalon    ReservationStatus = "cancelled_by_salon"
	StatusNoShow              ReservationStatus = "no_show"
)

// Reservation represents a booked visit to a salon
// StartTime/EndTime хранятся в unix-секундах; Date - полночь дня визита
type Reservation struct {
	ID         int64
	SalonID    int64
	StaffID    int64
	CustomerID int64
	Date       time.Time
	StartTime  int64 // unix seconds
	EndTime    int64 // unix seconds
	Status     ReservationStatus

	// Denormalized data for history
	MenuName     string
	MenuPrice    float64
	CustomerName *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesCapacity returns true if the reservation counts against
// staff and salon capacity (only pending and confirmed do)
func (r *Reservation) OccupiesCapacity() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByCustomer || r.Status == StatusCancelledBySalon
}

// DurationMinutes returns the reservation length in minutes
func (r *Reservation) DurationMinutes() int {
	return int((r.EndTime - r.StartTime) / 60)
}

// Overlaps returns true if the reservation overlaps the half-open
// interval [start, end); touching boundaries is not an overlap
func (r *Reservation) Overlaps(start, end int64) bool {
	return r.StartTime < end && r.EndTime > start
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	SalonID         int64              // Обязательный параметр
	StaffID         *int64             // Фильтр по мастеру (опционально, если nil - весь салон)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные и no-show
}
