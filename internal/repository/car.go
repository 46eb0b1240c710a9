package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/FleetBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CarRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCarRepo(db *dbpg.DB) *CarRepository {
	return &CarRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CarRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `INSERT INTO cars (id, name, model, plate, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		car.ID, car.Name, car.Model, car.Plate, car.IsActive, car.CreatedAt, car.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrPlateTaken
		}
		return fmt.Errorf("insert car: %w", err)
	}

	return nil
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	query := `SELECT id, name, model, plate, is_active, created_at, updated_at
			  FROM cars
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}

	var c domain.Car
	if err = row.Scan(&c.ID, &c.Name, &c.Model, &c.Plate, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("scan car: %w", err)
	}

	return &c, nil
}

func (r *CarRepository) List(ctx context.Context) ([]*domain.Car, error) {
	query := `SELECT id, name, model, plate, is_active, created_at, updated_at
			  FROM cars
			  ORDER BY name`

	return r.list(ctx, query)
}

// ListAvailable returns active cars with no approved booking overlapping the
// window. The filter mirrors the conflict check in BookingRepository.
func (r *CarRepository) ListAvailable(ctx context.Context, w domain.Window) ([]*domain.Car, error) {
	query := `SELECT c.id, c.name, c.model, c.plate, c.is_active, c.created_at, c.updated_at
			  FROM cars c
			  WHERE c.is_active
			    AND NOT EXISTS (
			      SELECT 1 FROM bookings b
			      WHERE b.car_id = c.id AND b.approved
			        AND b.start_at <= COALESCE($2, 'infinity'::timestamptz)
			        AND COALESCE(b.end_at, 'infinity'::timestamptz) >= $1)
			  ORDER BY c.name`

	return r.list(ctx, query, w.Start, w.End)
}

func (r *CarRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Car, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	var res []*domain.Car
	for rows.Next() {
		var c domain.Car
		if err = rows.Scan(&c.ID, &c.Name, &c.Model, &c.Plate, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
