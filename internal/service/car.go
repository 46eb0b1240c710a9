package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/FleetBooker/internal/domain"
	"github.com/stpnv0/FleetBooker/internal/service/ports"
)

type CarService struct {
	repo ports.CarRepo
}

func NewCarService(repo ports.CarRepo) *CarService {
	return &CarService{repo: repo}
}

func (s *CarService) Create(ctx context.Context, input domain.CreateCarInput) (*domain.Car, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Plate == "" {
		return nil, fmt.Errorf("%w: plate is required", domain.ErrValidation)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := time.Now().UTC()
	car := &domain.Car{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Model:     input.Model,
		Plate:     input.Plate,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}

	return car, nil
}

func (s *CarService) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CarService) List(ctx context.Context) ([]*domain.Car, error) {
	return s.repo.List(ctx)
}
