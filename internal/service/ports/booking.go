package ports

import (
	"context"
	"time"

	"github.com/stpnv0/FleetBooker/internal/domain"
)

type BookingRepo interface {
	// Create checks the car's approved bookings for an overlapping window and
	// inserts the booking in one transaction, locking the car row for the
	// duration of the check. Returns domain.ErrBookingConflict on overlap.
	Create(ctx context.Context, b *domain.Booking) error
	// Approve re-runs the overlap check against other approved bookings and
	// sets the approved flag, under the same per-car lock as Create.
	Approve(ctx context.Context, id string) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// SetEnd assigns the booking's end timestamp in a single durable write.
	SetEnd(ctx context.Context, id string, end time.Time) (*domain.Booking, error)
	// HasConflict reports whether any approved booking for the car overlaps
	// the window. Read-only, not serialized against concurrent writers.
	HasConflict(ctx context.Context, carID string, w domain.Window) (bool, error)
	ListByCar(ctx context.Context, carID string) ([]*domain.Booking, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Booking, error)
	// ListOpenSince returns approved open bookings that started at or before
	// the given instant.
	ListOpenSince(ctx context.Context, startedBefore time.Time) ([]*domain.Booking, error)
}
