package generator

import (
	"context"
	"time"

	"airportops/internal/domain"
)

// Store is the narrow data-access surface the generator ticks run against.
// The production implementation writes to postgres; tests use an in-memory
// fake.
type Store interface {
	ListFlightsDepartingWithin(ctx context.Context, window time.Duration) ([]domain.Flight, error)
	ListActiveFlights(ctx context.Context, limit int) ([]domain.Flight, error)
	CreateFlight(ctx context.Context, f *domain.Flight) error
	UpdateFlightState(ctx context.Context, id int64, status domain.FlightStatus, occupiedSeats int) error
	CountFlights(ctx context.Context) (int, error)

	CreatePassenger(ctx context.Context, p *domain.Passenger) error
	RandomPassengerIDs(ctx context.Context, limit int) ([]int64, error)
	CountPassengers(ctx context.Context) (int, error)

	ListServices(ctx context.Context) ([]domain.Service, error)
	CreateService(ctx context.Context, s *domain.Service) error
	UpdateServiceUsage(ctx context.Context, id int64, usage int) error
	CountServices(ctx context.Context) (int, error)

	ListScheduledFlightIDs(ctx context.Context, limit int) ([]int64, error)
	HasBooking(ctx context.Context, passengerID, flightID int64) (bool, error)
	CreateBooking(ctx context.Context, b *domain.Booking) error

	AppendEvent(ctx context.Context, e *domain.Event) error
}
