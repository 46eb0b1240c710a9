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

func TestCarService_Create_Success(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	svc := NewCarService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateCarInput{
		Name:  "Van 1",
		Model: "Transit",
		Plate: "A001AA",
	}

	car, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Van 1", car.Name)
	assert.Equal(t, "A001AA", car.Plate)
	assert.True(t, car.IsActive)
	assert.NotEmpty(t, car.ID)
}

func TestCarService_Create_Inactive(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	svc := NewCarService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	inactive := false
	input := domain.CreateCarInput{
		Name:     "Van 1",
		Plate:    "A001AA",
		IsActive: &inactive,
	}

	car, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.False(t, car.IsActive)
}

func TestCarService_Create_EmptyName(t *testing.T) {
	svc := NewCarService(nil)

	_, err := svc.Create(context.Background(), domain.CreateCarInput{Plate: "A001AA"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCarService_Create_EmptyPlate(t *testing.T) {
	svc := NewCarService(nil)

	_, err := svc.Create(context.Background(), domain.CreateCarInput{Name: "Van 1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCarService_Create_PlateTaken(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	svc := NewCarService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrPlateTaken)

	_, err := svc.Create(context.Background(), domain.CreateCarInput{Name: "Van 1", Plate: "A001AA"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPlateTaken)
}

func TestCarService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	svc := NewCarService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCarNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
}

func TestCarService_List_Success(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	svc := NewCarService(repo)

	cars := []*domain.Car{{ID: "c1"}, {ID: "c2"}}
	repo.EXPECT().List(mock.Anything).Return(cars, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestCarService_List_Error(t *testing.T) {
	repo := mocks.NewMockCarRepo(t)
	svc := NewCarService(repo)

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background())

	require.Error(t, err)
}
