package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/FleetBooker/internal/domain"
	"github.com/stpnv0/FleetBooker/internal/service/ports"
)

type AvailabilityService struct {
	bookingRepo ports.BookingRepo
	carRepo     ports.CarRepo
}

func NewAvailabilityService(bookingRepo ports.BookingRepo, carRepo ports.CarRepo) *AvailabilityService {
	return &AvailabilityService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
	}
}

// CheckAvailability reports whether the car is free for the window. An
// inactive car is never available. Only approved bookings block a window;
// pending requests may compete for the same slot until one is approved.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, carID string, w domain.Window) (bool, error) {
	if err := w.Validate(); err != nil {
		return false, err
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return false, fmt.Errorf("check car: %w", err)
	}
	if !car.IsActive {
		return false, nil
	}

	conflict, err := s.bookingRepo.HasConflict(ctx, carID, w)
	if err != nil {
		return false, fmt.Errorf("check conflict: %w", err)
	}

	return !conflict, nil
}

// ListAvailableCars returns the active cars free for the whole window.
func (s *AvailabilityService) ListAvailableCars(ctx context.Context, w domain.Window) ([]*domain.Car, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	cars, err := s.carRepo.ListAvailable(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("list available cars: %w", err)
	}

	return cars, nil
}
