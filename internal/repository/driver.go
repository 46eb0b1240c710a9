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

type DriverRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewDriverRepo(db *dbpg.DB) *DriverRepository {
	return &DriverRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *DriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	query := `INSERT INTO drivers (id, name, license, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		driver.ID, driver.Name, driver.License, driver.IsActive, driver.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert driver: %w", err)
	}

	return nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	query := `SELECT id, name, license, is_active, created_at
			  FROM drivers
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	var d domain.Driver
	if err = row.Scan(&d.ID, &d.Name, &d.License, &d.IsActive, &d.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDriverNotFound
		}
		return nil, fmt.Errorf("scan driver: %w", err)
	}

	return &d, nil
}

func (r *DriverRepository) List(ctx context.Context) ([]*domain.Driver, error) {
	query := `SELECT id, name, license, is_active, created_at
			  FROM drivers
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	var res []*domain.Driver
	for rows.Next() {
		var d domain.Driver
		if err = rows.Scan(&d.ID, &d.Name, &d.License, &d.IsActive, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}
