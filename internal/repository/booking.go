package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/FleetBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Overlap test for a requested window ($2 = start, $3 = nullable end) against
// stored bookings. Boundaries are inclusive on both sides, so a booking ending
// exactly at the requested start still conflicts. NULL end_at means the
// booking is still open and blocks everything from its start onward.
const overlapCond = `b.start_at <= COALESCE($3, 'infinity'::timestamptz)
	  AND COALESCE(b.end_at, 'infinity'::timestamptz) >= $2`

const bookingColumns = `id, car_id, driver_id, account_id, guest_name,
	  start_at, end_at, approved, note, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.CarID, &b.DriverID, &b.AccountID, &b.GuestName,
		&b.StartAt, &b.EndAt, &b.Approved, &b.Note, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create runs the conflict check and the insert as one transaction. The car
// row is locked for the duration, so two concurrent requests for overlapping
// windows on the same car cannot both observe "no conflict" and both commit.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT id FROM cars WHERE id = $1 FOR UPDATE`
	var carID string
	if err = tx.QueryRowContext(ctx, lockQuery, b.CarID).Scan(&carID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCarNotFound
		}
		return fmt.Errorf("lock car: %w", err)
	}

	conflictQuery := `SELECT EXISTS (
			  SELECT 1 FROM bookings b
			  WHERE b.car_id = $1 AND b.approved AND ` + overlapCond + `)`
	var conflict bool
	if err = tx.QueryRowContext(ctx, conflictQuery, b.CarID, b.StartAt, b.EndAt).Scan(&conflict); err != nil {
		return fmt.Errorf("check conflict: %w", err)
	}
	if conflict {
		return domain.ErrBookingConflict
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.CarID, b.DriverID, b.AccountID, b.GuestName,
		b.StartAt, b.EndAt, b.Approved, b.Note, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

// Approve flips the approved flag after re-checking the booking's window
// against the other approved bookings for the car, under the same per-car
// lock as Create.
func (r *BookingRepository) Approve(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	getQuery := `SELECT car_id, start_at, end_at, approved FROM bookings WHERE id = $1 FOR UPDATE`
	var (
		carID    string
		startAt  time.Time
		endAt    *time.Time
		approved bool
	)
	if err = tx.QueryRowContext(ctx, getQuery, id).Scan(&carID, &startAt, &endAt, &approved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if approved {
		return nil, domain.ErrAlreadyApproved
	}

	lockQuery := `SELECT id FROM cars WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, carID).Scan(&carID); err != nil {
		return nil, fmt.Errorf("lock car: %w", err)
	}

	conflictQuery := `SELECT EXISTS (
			  SELECT 1 FROM bookings b
			  WHERE b.car_id = $1 AND b.approved AND b.id <> $4 AND ` + overlapCond + `)`
	var conflict bool
	if err = tx.QueryRowContext(ctx, conflictQuery, carID, startAt, endAt, id).Scan(&conflict); err != nil {
		return nil, fmt.Errorf("check conflict: %w", err)
	}
	if conflict {
		return nil, domain.ErrBookingConflict
	}

	updateQuery := `UPDATE bookings SET approved = TRUE, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + bookingColumns
	b, err := scanBooking(tx.QueryRowContext(ctx, updateQuery, id))
	if err != nil {
		return nil, fmt.Errorf("approve booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// SetEnd assigns the end timestamp. Only open bookings are touched, so
// retrying the write is idempotent.
func (r *BookingRepository) SetEnd(ctx context.Context, id string, end time.Time) (*domain.Booking, error) {
	query := `UPDATE bookings SET end_at = $2, updated_at = $2
			  WHERE id = $1 AND end_at IS NULL
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, end)
	if err != nil {
		return nil, fmt.Errorf("set booking end: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// HasConflict is the read-only availability probe. It runs outside any
// transaction and tolerates a slightly stale view under concurrent writes;
// the authoritative check happens inside Create and Approve.
func (r *BookingRepository) HasConflict(ctx context.Context, carID string, w domain.Window) (bool, error) {
	query := `SELECT EXISTS (
			  SELECT 1 FROM bookings b
			  WHERE b.car_id = $1 AND b.approved AND ` + overlapCond + `)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, carID, w.Start, w.End)
	if err != nil {
		return false, fmt.Errorf("check conflict: %w", err)
	}

	var conflict bool
	if err = row.Scan(&conflict); err != nil {
		return false, fmt.Errorf("scan conflict: %w", err)
	}

	return conflict, nil
}

func (r *BookingRepository) ListByCar(ctx context.Context, carID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE car_id = $1
			  ORDER BY start_at DESC`

	return r.list(ctx, query, carID)
}

func (r *BookingRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE account_id = $1
			  ORDER BY start_at DESC`

	return r.list(ctx, query, accountID)
}

func (r *BookingRepository) ListOpenSince(ctx context.Context, startedBefore time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE approved AND end_at IS NULL AND start_at <= $1
			  ORDER BY start_at`

	return r.list(ctx, query, startedBefore)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
