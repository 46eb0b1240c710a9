package ports

import (
	"context"

	"github.com/stpnv0/FleetBooker/internal/domain"
)

type CarRepo interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context) ([]*domain.Car, error)
	// ListAvailable returns active cars with no approved booking overlapping
	// the window.
	ListAvailable(ctx context.Context, w domain.Window) ([]*domain.Car, error)
}
