package dto

import (
	"time"

	"github.com/stpnv0/FleetBooker/internal/domain"
)

type BookingResponse struct {
	ID        string  `json:"id"`
	CarID     string  `json:"car_id"`
	DriverID  *string `json:"driver_id,omitempty"`
	AccountID *string `json:"account_id,omitempty"`
	GuestName *string `json:"guest_name,omitempty"`
	StartAt   string  `json:"start_at"`
	EndAt     *string `json:"end_at,omitempty"`
	Approved  bool    `json:"approved"`
	Status    string  `json:"status"`
	Note      string  `json:"note,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type CarResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Model     string `json:"model"`
	Plate     string `json:"plate"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type DriverResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	License   string `json:"license,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type AccountResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at"`
}

type AvailabilityResponse struct {
	CarID     string `json:"car_id"`
	Available bool   `json:"available"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ToBookingResponse derives the status against now explicitly; it is never
// read from storage.
func ToBookingResponse(b *domain.Booking, now time.Time) BookingResponse {
	var endAt *string
	if b.EndAt != nil {
		s := b.EndAt.Format(time.RFC3339)
		endAt = &s
	}

	return BookingResponse{
		ID:        b.ID,
		CarID:     b.CarID,
		DriverID:  b.DriverID,
		AccountID: b.AccountID,
		GuestName: b.GuestName,
		StartAt:   b.StartAt.Format(time.RFC3339),
		EndAt:     endAt,
		Approved:  b.Approved,
		Status:    string(b.Status(now)),
		Note:      b.Note,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func ToCarResponse(c *domain.Car) CarResponse {
	return CarResponse{
		ID:        c.ID,
		Name:      c.Name,
		Model:     c.Model,
		Plate:     c.Plate,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func ToDriverResponse(d *domain.Driver) DriverResponse {
	return DriverResponse{
		ID:        d.ID,
		Name:      d.Name,
		License:   d.License,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}

func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:             a.ID,
		Username:       a.Username,
		TelegramChatID: a.TelegramChatID,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}
