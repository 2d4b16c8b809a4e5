package amenities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"airportops/internal/domain"
	"airportops/internal/repository"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) List(ctx context.Context, filter repository.ServiceFilter) ([]domain.Service, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceRepository) UpdateUsage(ctx context.Context, id int64, usage int) error {
	args := m.Called(ctx, id, usage)
	return args.Error(0)
}

func (m *MockServiceRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ repository.ServiceRepository = (*MockServiceRepository)(nil)

func TestCreateDefaultsToActive(t *testing.T) {
	repo := &MockServiceRepository{}
	service := NewAmenityService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Service")).Return(nil)

	svc, err := service.Create(context.Background(), ServiceInput{
		Name:     "Le Comptoir",
		Type:     domain.ServiceTypeRestaurant,
		Terminal: "2",
		Capacity: 80,
		Rating:   4.2,
	})

	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", svc.Status)
	repo.AssertExpectations(t)
}

func TestCreateRejectsUsageAboveCapacity(t *testing.T) {
	service := NewAmenityService(&MockServiceRepository{})

	_, err := service.Create(context.Background(), ServiceInput{
		Name:         "Le Comptoir",
		Type:         domain.ServiceTypeRestaurant,
		Capacity:     50,
		CurrentUsage: 60,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateRejectsUnknownType(t *testing.T) {
	service := NewAmenityService(&MockServiceRepository{})

	_, err := service.Create(context.Background(), ServiceInput{
		Name:     "Mystery Kiosk",
		Type:     "KIOSK",
		Capacity: 10,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
