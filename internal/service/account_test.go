package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/FleetBooker/internal/domain"
	"github.com/stpnv0/FleetBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Create_Success(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	chatID := int64(12345)
	input := domain.CreateAccountInput{
		Username:       "alice",
		TelegramChatID: &chatID,
	}

	account, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, &chatID, account.TelegramChatID)
	assert.True(t, account.IsActive)
	assert.NotEmpty(t, account.ID)
}

func TestAccountService_Create_EmptyUsername(t *testing.T) {
	svc := NewAccountService(nil)

	_, err := svc.Create(context.Background(), domain.CreateAccountInput{Username: ""})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateAccountInput{Username: "taken"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestAccountService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrAccountNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountService_List_Success(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo)

	accounts := []*domain.Account{{ID: "a1"}, {ID: "a2"}}
	repo.EXPECT().List(mock.Anything).Return(accounts, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestAccountService_List_Error(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo)

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background())

	require.Error(t, err)
}
