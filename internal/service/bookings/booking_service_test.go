package bookings

import (
	"context"
	"regexp"
	"testing"
	"time"

	"airportops/internal/domain"
	"airportops/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Exists(ctx context.Context, passengerID, flightID int64) (bool, error) {
	args := m.Called(ctx, passengerID, flightID)
	return args.Bool(0), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

// flightRepoStub satisfies repository.FlightRepository; the booking service
// only calls GetByID.
type flightRepoStub struct {
	flight *domain.Flight
}

func (s *flightRepoStub) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	if s.flight == nil {
		return nil, domain.ErrNotFound
	}
	return s.flight, nil
}

func (s *flightRepoStub) List(ctx context.Context, filter repository.FlightFilter) ([]domain.Flight, error) {
	return nil, nil
}
func (s *flightRepoStub) Create(ctx context.Context, f *domain.Flight) error  { return nil }
func (s *flightRepoStub) Update(ctx context.Context, f *domain.Flight) error  { return nil }
func (s *flightRepoStub) Delete(ctx context.Context, id int64) error          { return nil }
func (s *flightRepoStub) ListDepartingWithin(ctx context.Context, window time.Duration) ([]domain.Flight, error) {
	return nil, nil
}
func (s *flightRepoStub) ListActive(ctx context.Context, limit int) ([]domain.Flight, error) {
	return nil, nil
}
func (s *flightRepoStub) ListScheduledIDs(ctx context.Context, limit int) ([]int64, error) {
	return nil, nil
}
func (s *flightRepoStub) UpdateState(ctx context.Context, id int64, status domain.FlightStatus, occupiedSeats int) error {
	return nil
}
func (s *flightRepoStub) CountByStatus(ctx context.Context) (map[domain.FlightStatus]int, error) {
	return nil, nil
}
func (s *flightRepoStub) Count(ctx context.Context) (int, error) { return 0, nil }

var _ repository.FlightRepository = (*flightRepoStub)(nil)

func TestBookingService_Create_Success(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	flightRepo := &flightRepoStub{flight: &domain.Flight{
		ID: 4, FlightNumber: "AF1234", Status: domain.FlightStatusScheduled,
		Capacity: 180, OccupiedSeats: 100,
	}}
	producer := &MockProducer{}

	service := NewBookingService(bookingRepo, flightRepo, WithProducer(producer, "airport.events"))

	ctx := context.Background()
	bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	producer.On("Publish", ctx, "airport.events", mock.Anything, mock.Anything).Return(nil).Once()

	booking, err := service.Create(ctx, CreateBookingInput{
		PassengerID: 1,
		FlightID:    4,
		TravelClass: domain.TravelClassBusiness,
		Price:       850,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Regexp(t, regexp.MustCompile(`^CDG\d{6}$`), booking.BookingReference)
	assert.NotEmpty(t, booking.SeatNumber)
	bookingRepo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestBookingService_Create_RejectsFullFlight(t *testing.T) {
	flightRepo := &flightRepoStub{flight: &domain.Flight{
		ID: 4, Status: domain.FlightStatusScheduled, Capacity: 180, OccupiedSeats: 180,
	}}
	service := NewBookingService(&MockBookingRepository{}, flightRepo)

	_, err := service.Create(context.Background(), CreateBookingInput{PassengerID: 1, FlightID: 4})

	assert.Error(t, err)
}

func TestBookingService_Create_RejectsDepartedFlight(t *testing.T) {
	flightRepo := &flightRepoStub{flight: &domain.Flight{
		ID: 4, FlightNumber: "AF1234", Status: domain.FlightStatusDeparted,
		Capacity: 180, OccupiedSeats: 50,
	}}
	service := NewBookingService(&MockBookingRepository{}, flightRepo)

	_, err := service.Create(context.Background(), CreateBookingInput{PassengerID: 1, FlightID: 4})

	assert.Error(t, err)
}

func TestBookingService_Create_MissingFlight(t *testing.T) {
	service := NewBookingService(&MockBookingRepository{}, &flightRepoStub{})

	_, err := service.Create(context.Background(), CreateBookingInput{PassengerID: 1, FlightID: 99})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_Cancel_Idempotent(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	service := NewBookingService(bookingRepo, &flightRepoStub{})

	ctx := context.Background()
	cancelled := &domain.Booking{ID: 9, Status: domain.BookingStatusCancelled}
	bookingRepo.On("GetByID", ctx, int64(9)).Return(cancelled, nil).Once()

	got, err := service.Cancel(ctx, 9)

	assert.NoError(t, err)
	assert.Equal(t, cancelled, got)
	bookingRepo.AssertNotCalled(t, "Cancel")
}

func TestNewReference_Format(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Regexp(t, regexp.MustCompile(`^CDG\d{6}$`), NewReference())
	}
}
