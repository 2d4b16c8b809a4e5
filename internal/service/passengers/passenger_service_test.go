package passengers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"airportops/internal/domain"
	"airportops/internal/repository"
)

type MockPassengerRepository struct {
	mock.Mock
}

func (m *MockPassengerRepository) List(ctx context.Context, filter repository.PassengerFilter) ([]domain.Passenger, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPassengerRepository) Update(ctx context.Context, p *domain.Passenger) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPassengerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPassengerRepository) RandomIDs(ctx context.Context, limit int) ([]int64, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockPassengerRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ repository.PassengerRepository = (*MockPassengerRepository)(nil)

func TestCreateNormalizesEmailAndDefaults(t *testing.T) {
	repo := &MockPassengerRepository{}
	service := NewPassengerService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Passenger")).Return(nil)

	p, err := service.Create(context.Background(), PassengerInput{
		FirstName: "Marie",
		LastName:  "Dubois",
		Email:     "Marie.Dubois@Example.COM",
	})

	require.NoError(t, err)
	assert.Equal(t, "marie.dubois@example.com", p.Email)
	assert.Equal(t, domain.TravelClassEconomy, p.TravelClassPreference)
	assert.NotNil(t, p.PreferredDestinations)
	repo.AssertExpectations(t)
}

func TestCreateRejectsBadEmail(t *testing.T) {
	service := NewPassengerService(&MockPassengerRepository{})

	_, err := service.Create(context.Background(), PassengerInput{
		FirstName: "Marie",
		LastName:  "Dubois",
		Email:     "not-an-email",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateRejectsUnknownClass(t *testing.T) {
	service := NewPassengerService(&MockPassengerRepository{})

	_, err := service.Create(context.Background(), PassengerInput{
		FirstName:             "Marie",
		LastName:              "Dubois",
		Email:                 "marie@example.com",
		TravelClassPreference: "PREMIUM_PLUS",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateUnknownPassenger(t *testing.T) {
	repo := &MockPassengerRepository{}
	service := NewPassengerService(repo)

	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	_, err := service.Update(context.Background(), 404, PassengerInput{
		FirstName: "Marie", LastName: "Dubois", Email: "marie@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertExpectations(t)
}
