package generator

import (
	"context"
	"sync"
	"time"

	"airportops/internal/domain"
)

// memStore is an in-memory Store used to exercise ticks without postgres.
type memStore struct {
	mu         sync.Mutex
	nextID     int64
	flights    map[int64]*domain.Flight
	passengers map[int64]*domain.Passenger
	emails     map[string]bool
	services   map[int64]*domain.Service
	bookings   []domain.Booking
	events     []domain.Event
}

var _ Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		flights:    make(map[int64]*domain.Flight),
		passengers: make(map[int64]*domain.Passenger),
		emails:     make(map[string]bool),
		services:   make(map[int64]*domain.Service),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) ListFlightsDepartingWithin(_ context.Context, window time.Duration) ([]domain.Flight, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	out := make([]domain.Flight, 0)
	for _, f := range m.flights {
		switch {
		case f.DepartureTime.After(now) && f.DepartureTime.Before(now.Add(window)):
			out = append(out, *f)
		case f.Status.Active() && f.DepartureTime.Before(now):
			out = append(out, *f)
		case f.Status == domain.FlightStatusDeparted && !f.ArrivalTime.After(now):
			out = append(out, *f)
		}
	}
	return out, nil
}

func (m *memStore) ListActiveFlights(_ context.Context, limit int) ([]domain.Flight, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Flight, 0)
	for _, f := range m.flights {
		if f.Status.Active() && len(out) < limit {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (m *memStore) CreateFlight(_ context.Context, f *domain.Flight) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.flights {
		if existing.FlightNumber == f.FlightNumber {
			return domain.ErrDuplicate
		}
	}
	f.ID = m.id()
	cp := *f
	m.flights[f.ID] = &cp
	return nil
}

func (m *memStore) UpdateFlightState(_ context.Context, id int64, status domain.FlightStatus, occupiedSeats int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.flights[id]
	if !ok {
		return domain.ErrNotFound
	}
	f.Status = status
	if occupiedSeats > f.Capacity {
		occupiedSeats = f.Capacity
	}
	f.OccupiedSeats = occupiedSeats
	return nil
}

func (m *memStore) CountFlights(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.flights), nil
}

func (m *memStore) CreatePassenger(_ context.Context, p *domain.Passenger) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.emails[p.Email] {
		return domain.ErrDuplicate
	}
	p.ID = m.id()
	m.emails[p.Email] = true
	cp := *p
	m.passengers[p.ID] = &cp
	return nil
}

func (m *memStore) RandomPassengerIDs(_ context.Context, limit int) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, limit)
	for id := range m.passengers {
		if len(ids) < limit {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memStore) CountPassengers(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.passengers), nil
}

func (m *memStore) ListServices(_ context.Context) ([]domain.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Service, 0, len(m.services))
	for _, svc := range m.services {
		out = append(out, *svc)
	}
	return out, nil
}

func (m *memStore) CreateService(_ context.Context, s *domain.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = m.id()
	cp := *s
	m.services[s.ID] = &cp
	return nil
}

func (m *memStore) UpdateServiceUsage(_ context.Context, id int64, usage int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	svc, ok := m.services[id]
	if !ok {
		return domain.ErrNotFound
	}
	if usage < 0 {
		usage = 0
	}
	if usage > svc.Capacity {
		usage = svc.Capacity
	}
	svc.CurrentUsage = usage
	return nil
}

func (m *memStore) CountServices(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.services), nil
}

func (m *memStore) ListScheduledFlightIDs(_ context.Context, limit int) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0)
	for id, f := range m.flights {
		if f.Status == domain.FlightStatusScheduled && len(ids) < limit {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memStore) HasBooking(_ context.Context, passengerID, flightID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.bookings {
		if b.PassengerID == passengerID && b.FlightID == flightID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CreateBooking(_ context.Context, b *domain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.flights[b.FlightID]
	if !ok {
		return domain.ErrNotFound
	}
	b.ID = m.id()
	b.BookingDate = time.Now()
	if f.OccupiedSeats < f.Capacity {
		f.OccupiedSeats++
	}
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memStore) AppendEvent(_ context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = m.id()
	m.events = append(m.events, *e)
	return nil
}

func (m *memStore) flight(id int64) domain.Flight {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.flights[id]
}

func (m *memStore) service(id int64) domain.Service {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.services[id]
}
