package flights

import (
	"context"
	"testing"
	"time"

	"airportops/internal/domain"
	"airportops/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context, filter repository.FlightFilter) ([]domain.Flight, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightRepository) ListDepartingWithin(ctx context.Context, window time.Duration) ([]domain.Flight, error) {
	args := m.Called(ctx, window)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ListActive(ctx context.Context, limit int) ([]domain.Flight, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ListScheduledIDs(ctx context.Context, limit int) ([]int64, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockFlightRepository) UpdateState(ctx context.Context, id int64, status domain.FlightStatus, occupiedSeats int) error {
	args := m.Called(ctx, id, status, occupiedSeats)
	return args.Error(0)
}

func (m *MockFlightRepository) CountByStatus(ctx context.Context) (map[domain.FlightStatus]int, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.FlightStatus]int), args.Error(1)
}

func (m *MockFlightRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCache) GetStats(ctx context.Context, out any) (bool, error) {
	args := m.Called(ctx, out)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) SetStats(ctx context.Context, stats any) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func validInput() FlightInput {
	dep := time.Now().Add(3 * time.Hour)
	return FlightInput{
		FlightNumber:  "AF1234",
		Airline:       "Air France",
		Origin:        "Paris CDG",
		Destination:   "New York JFK",
		DepartureTime: dep,
		ArrivalTime:   dep.Add(8 * time.Hour),
		Capacity:      180,
		OccupiedSeats: 100,
		Price:         420.50,
	}
}

func TestFlightService_List_UsesCache(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache)

	ctx := context.Background()
	cached := []domain.Flight{{ID: 1, FlightNumber: "AF1234"}}
	cache.On("GetFlights", ctx).Return(cached, nil).Once()

	flights, err := service.List(ctx, repository.FlightFilter{})

	assert.NoError(t, err)
	assert.Equal(t, cached, flights)
	repo.AssertNotCalled(t, "List")
}

func TestFlightService_List_FilteredBypassesCache(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache)

	ctx := context.Background()
	filter := repository.FlightFilter{Status: "DELAYED"}
	repo.On("List", ctx, filter).Return([]domain.Flight{}, nil).Once()

	_, err := service.List(ctx, filter)

	assert.NoError(t, err)
	cache.AssertNotCalled(t, "GetFlights")
	repo.AssertExpectations(t)
}

func TestFlightService_Create_Defaults(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache)

	ctx := context.Background()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Flight")).Return(nil).Once()
	cache.On("InvalidateFlights", ctx).Return(nil).Once()

	flight, err := service.Create(ctx, validInput())

	assert.NoError(t, err)
	assert.Equal(t, domain.FlightStatusScheduled, flight.Status)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestFlightService_Create_RejectsOverbooked(t *testing.T) {
	service := NewFlightService(&MockFlightRepository{}, nil)

	input := validInput()
	input.OccupiedSeats = 200

	_, err := service.Create(context.Background(), input)

	assert.Error(t, err)
}

func TestFlightService_Update_RejectsIllegalTransition(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil)

	ctx := context.Background()
	current := &domain.Flight{ID: 7, Status: domain.FlightStatusArrived, Capacity: 180}
	repo.On("GetByID", ctx, int64(7)).Return(current, nil).Once()

	input := validInput()
	input.Status = domain.FlightStatusBoarding

	_, err := service.Update(ctx, 7, input)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update")
}

func TestFlightService_Update_AllowsLegalTransition(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil)

	ctx := context.Background()
	current := &domain.Flight{ID: 7, FlightNumber: "AF1234", Status: domain.FlightStatusScheduled, Capacity: 180}
	repo.On("GetByID", ctx, int64(7)).Return(current, nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*domain.Flight")).Return(nil).Once()

	input := validInput()
	input.Status = domain.FlightStatusBoarding

	updated, err := service.Update(ctx, 7, input)

	assert.NoError(t, err)
	assert.Equal(t, domain.FlightStatusBoarding, updated.Status)
	repo.AssertExpectations(t)
}

func TestFlightService_DashboardStats(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil)

	ctx := context.Background()
	repo.On("CountByStatus", ctx).Return(map[domain.FlightStatus]int{
		domain.FlightStatusScheduled: 2,
	}, nil).Once()
	repo.On("List", ctx, repository.FlightFilter{}).Return([]domain.Flight{
		{Capacity: 100, OccupiedSeats: 50},
		{Capacity: 200, OccupiedSeats: 100},
	}, nil).Once()

	stats, err := service.DashboardStats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalFlights)
	assert.InDelta(t, 50.0, stats.AverageOccupancy, 0.001)
}
