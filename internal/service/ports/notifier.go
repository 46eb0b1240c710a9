package ports

import (
	"context"

	"github.com/stpnv0/FleetBooker/internal/domain"
)

// BookingNotifier reports booking events to the back office. Calls are
// best-effort: implementations log failures and never return them, so a
// notification can never unwind a committed booking.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking, car *domain.Car)
	NotifyBookingApproved(ctx context.Context, booking *domain.Booking, car *domain.Car)
	NotifyBookingClosed(ctx context.Context, booking *domain.Booking, car *domain.Car)
	NotifyBookingOverdue(ctx context.Context, booking *domain.Booking, car *domain.Car)
}
