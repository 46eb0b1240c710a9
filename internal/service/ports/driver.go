package ports

import (
	"context"

	"github.com/stpnv0/FleetBooker/internal/domain"
)

type DriverRepo interface {
	Create(ctx context.Context, driver *domain.Driver) error
	GetByID(ctx context.Context, id string) (*domain.Driver, error)
	List(ctx context.Context) ([]*domain.Driver, error)
}
