package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/SMC-SalonService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SalonID   int64   `json:"salonId"`
	StaffID   int64   `json:"staffId"`
	Date      string  `json:"date"`      // "2025-10-15"
	StartTime int64   `json:"startTime"` // unix-секунды
	EndTime   int64   `json:"endTime"`   // unix-секунды
	MenuName  string  `json:"menuName"`
	MenuPrice float64 `json:"menuPrice"`
	Notes     *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           int64   `json:"id"`
	SalonID      int64   `json:"salonId"`
	StaffID      int64   `json:"staffId"`
	CustomerID   int64   `json:"customerId"`
	Date         string  `json:"date"`
	StartTime    int64   `json:"startTime"`
	EndTime      int64   `json:"endTime"`
	Status       string  `json:"status"`
	MenuName     string  `json:"menuName"`
	MenuPrice    float64 `json:"menuPrice"`
	CustomerName *string `json:"customerName,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(customerID int64) *createReservation.Request {
	return &createReservation.Request{
		CustomerID: customerID,
		SalonID:    r.SalonID,
		StaffID:    r.StaffID,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		MenuName:   r.MenuName,
		MenuPrice:  r.MenuPrice,
		Notes:      r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		SalonID:      resp.SalonID,
		StaffID:      resp.StaffID,
		CustomerID:   resp.CustomerID,
		Date:         resp.Date,
		StartTime:    resp.StartTime,
		EndTime:      resp.EndTime,
		Status:       resp.Status,
		MenuName:     resp.MenuName,
		MenuPrice:    resp.MenuPrice,
		CustomerName: resp.CustomerName,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
