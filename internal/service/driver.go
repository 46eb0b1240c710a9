package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/FleetBooker/internal/domain"
	"github.com/stpnv0/FleetBooker/internal/service/ports"
)

type DriverService struct {
	repo ports.DriverRepo
}

func NewDriverService(repo ports.DriverRepo) *DriverService {
	return &DriverService{repo: repo}
}

func (s *DriverService) Create(ctx context.Context, input domain.CreateDriverInput) (*domain.Driver, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	driver := &domain.Driver{
		ID:        uuid.New().String(),
		Name:      input.Name,
		License:   input.License,
		IsActive:  isActive,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, driver); err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}

	return driver, nil
}

func (s *DriverService) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DriverService) List(ctx context.Context) ([]*domain.Driver, error) {
	return s.repo.List(ctx)
}
