package ports

import (
	"context"

	"github.com/stpnv0/FleetBooker/internal/domain"
)

type AccountRepo interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
}
