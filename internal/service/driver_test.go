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

func TestDriverService_Create_Success(t *testing.T) {
	repo := mocks.NewMockDriverRepo(t)
	svc := NewDriverService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateDriverInput{
		Name:    "Ivan",
		License: "7700 123456",
	}

	driver, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Ivan", driver.Name)
	assert.True(t, driver.IsActive)
	assert.NotEmpty(t, driver.ID)
}

func TestDriverService_Create_EmptyName(t *testing.T) {
	svc := NewDriverService(nil)

	_, err := svc.Create(context.Background(), domain.CreateDriverInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDriverService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockDriverRepo(t)
	svc := NewDriverService(repo)

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), domain.CreateDriverInput{Name: "Ivan"})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestDriverService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockDriverRepo(t)
	svc := NewDriverService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrDriverNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDriverNotFound)
}

func TestDriverService_List_Success(t *testing.T) {
	repo := mocks.NewMockDriverRepo(t)
	svc := NewDriverService(repo)

	drivers := []*domain.Driver{{ID: "d1"}, {ID: "d2"}}
	repo.EXPECT().List(mock.Anything).Return(drivers, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
