package generator

import (
	"context"
	"time"

	"airportops/internal/domain"
	"airportops/internal/repository"
)

// PGStore adapts the postgres repositories to the generator's Store interface.
type PGStore struct {
	flights    repository.FlightRepository
	passengers repository.PassengerRepository
	services   repository.ServiceRepository
	bookings   repository.BookingRepository
	events     repository.EventRepository
}

var _ Store = (*PGStore)(nil)

func NewPGStore(
	flights repository.FlightRepository,
	passengers repository.PassengerRepository,
	services repository.ServiceRepository,
	bookings repository.BookingRepository,
	events repository.EventRepository,
) *PGStore {
	return &PGStore{
		flights:    flights,
		passengers: passengers,
		services:   services,
		bookings:   bookings,
		events:     events,
	}
}

func (s *PGStore) ListFlightsDepartingWithin(ctx context.Context, window time.Duration) ([]domain.Flight, error) {
	return s.flights.ListDepartingWithin(ctx, window)
}

func (s *PGStore) ListActiveFlights(ctx context.Context, limit int) ([]domain.Flight, error) {
	return s.flights.ListActive(ctx, limit)
}

func (s *PGStore) CreateFlight(ctx context.Context, f *domain.Flight) error {
	return s.flights.Create(ctx, f)
}

func (s *PGStore) UpdateFlightState(ctx context.Context, id int64, status domain.FlightStatus, occupiedSeats int) error {
	return s.flights.UpdateState(ctx, id, status, occupiedSeats)
}

func (s *PGStore) CountFlights(ctx context.Context) (int, error) {
	return s.flights.Count(ctx)
}

func (s *PGStore) CreatePassenger(ctx context.Context, p *domain.Passenger) error {
	return s.passengers.Create(ctx, p)
}

func (s *PGStore) RandomPassengerIDs(ctx context.Context, limit int) ([]int64, error) {
	return s.passengers.RandomIDs(ctx, limit)
}

func (s *PGStore) CountPassengers(ctx context.Context) (int, error) {
	return s.passengers.Count(ctx)
}

func (s *PGStore) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx, repository.ServiceFilter{})
}

func (s *PGStore) CreateService(ctx context.Context, svc *domain.Service) error {
	return s.services.Create(ctx, svc)
}

func (s *PGStore) UpdateServiceUsage(ctx context.Context, id int64, usage int) error {
	return s.services.UpdateUsage(ctx, id, usage)
}

func (s *PGStore) CountServices(ctx context.Context) (int, error) {
	return s.services.Count(ctx)
}

func (s *PGStore) ListScheduledFlightIDs(ctx context.Context, limit int) ([]int64, error) {
	return s.flights.ListScheduledIDs(ctx, limit)
}

func (s *PGStore) HasBooking(ctx context.Context, passengerID, flightID int64) (bool, error) {
	return s.bookings.Exists(ctx, passengerID, flightID)
}

func (s *PGStore) CreateBooking(ctx context.Context, b *domain.Booking) error {
	return s.bookings.Create(ctx, b)
}

func (s *PGStore) AppendEvent(ctx context.Context, e *domain.Event) error {
	return s.events.Append(ctx, e)
}
