package domain

import "time"

// BookingStatus is never stored. It is derived from the booking's window and
// the current instant, see DeriveStatus.
type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "upcoming"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
)

type Booking struct {
	ID        string     `json:"id"`
	CarID     string     `json:"car_id"`
	DriverID  *string    `json:"driver_id,omitempty"`
	AccountID *string    `json:"account_id,omitempty"`
	GuestName *string    `json:"guest_name,omitempty"`
	StartAt   time.Time  `json:"start_at"`
	EndAt     *time.Time `json:"end_at,omitempty"`
	Approved  bool       `json:"approved"`
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MaxNoteLen bounds the free-text note on a booking.
const MaxNoteLen = 500

type CreateBookingInput struct {
	CarID     string
	DriverID  *string
	AccountID *string
	GuestName *string
	StartAt   time.Time
	EndAt     *time.Time
	Note      string
}

// Window returns the interval the booking occupies its car for.
func (b *Booking) Window() Window {
	return Window{Start: b.StartAt, End: b.EndAt}
}

// Status derives the booking's lifecycle state at the given instant.
func (b *Booking) Status(now time.Time) BookingStatus {
	return DeriveStatus(b.StartAt, b.EndAt, now)
}

// DeriveStatus computes the lifecycle state of a booking window at now.
// A nil end means the booking is still open. A booking starting exactly at now
// is already active, not upcoming.
func DeriveStatus(start time.Time, end *time.Time, now time.Time) BookingStatus {
	if start.After(now) {
		return BookingStatusUpcoming
	}
	if end != nil && !end.After(now) {
		return BookingStatusCompleted
	}
	return BookingStatusActive
}

// Window is the time interval a booking occupies a resource for.
// A nil End means the window extends indefinitely (no known return time yet).
type Window struct {
	Start time.Time
	End   *time.Time
}

// Overlaps reports whether two windows intersect. Boundaries are inclusive:
// a window ending exactly when another starts still conflicts, so back-to-back
// bookings touching at the same instant are rejected.
func (w Window) Overlaps(other Window) bool {
	if other.End != nil && other.End.Before(w.Start) {
		return false
	}
	if w.End != nil && w.End.Before(other.Start) {
		return false
	}
	return true
}

// Validate checks that End, when set, is not before Start.
func (w Window) Validate() error {
	if w.End != nil && w.End.Before(w.Start) {
		return ErrInvalidWindow
	}
	return nil
}
