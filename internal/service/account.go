package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/FleetBooker/internal/domain"
	"github.com/stpnv0/FleetBooker/internal/service/ports"
)

type AccountService struct {
	repo ports.AccountRepo
}

func NewAccountService(repo ports.AccountRepo) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) Create(ctx context.Context, input domain.CreateAccountInput) (*domain.Account, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	account := &domain.Account{
		ID:             uuid.New().String(),
		Username:       input.Username,
		TelegramChatID: input.TelegramChatID,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.List(ctx)
}
