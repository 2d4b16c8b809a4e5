package flights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"airportops/internal/domain"
	"airportops/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, filter repository.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

// Cache holds the full flight list for unfiltered reads.
type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
	GetStats(ctx context.Context, out any) (bool, error)
	SetStats(ctx context.Context, stats any) error
}

type FlightInput struct {
	FlightNumber  string              `json:"flight_number"`
	Airline       string              `json:"airline"`
	Origin        string              `json:"origin"`
	Destination   string              `json:"destination"`
	DepartureTime time.Time           `json:"departure_time"`
	ArrivalTime   time.Time           `json:"arrival_time"`
	Status        domain.FlightStatus `json:"status"`
	AircraftType  string              `json:"aircraft_type"`
	Gate          string              `json:"gate"`
	Terminal      string              `json:"terminal"`
	Capacity      int                 `json:"capacity"`
	OccupiedSeats int                 `json:"occupied_seats"`
	Price         float64             `json:"price"`
}

type DashboardStats struct {
	TotalFlights     int                         `json:"total_flights"`
	ByStatus         map[domain.FlightStatus]int `json:"by_status"`
	AverageOccupancy float64                     `json:"average_occupancy"`
	GeneratedAt      time.Time                   `json:"generated_at"`
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) List(ctx context.Context, filter repository.FlightFilter) ([]domain.Flight, error) {
	cacheable := filter == (repository.FlightFilter{})
	if cacheable && s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if cacheable && s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	if err := validateInput(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	status := input.Status
	if status == "" {
		status = domain.FlightStatusScheduled
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown flight status %q", domain.ErrValidation, status)
	}

	flight := &domain.Flight{
		FlightNumber:  input.FlightNumber,
		Airline:       input.Airline,
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		Status:        status,
		AircraftType:  input.AircraftType,
		Gate:          input.Gate,
		Terminal:      input.Terminal,
		Capacity:      input.Capacity,
		OccupiedSeats: input.OccupiedSeats,
		Price:         input.Price,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return flight, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, input FlightInput) (*domain.Flight, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	next := input.Status
	if next == "" {
		next = current.Status
	}
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown flight status %q", domain.ErrValidation, next)
	}
	if next != current.Status {
		if current.Status.Terminal() || !current.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, next)
		}
	}

	updated := *current
	updated.Airline = input.Airline
	updated.Origin = input.Origin
	updated.Destination = input.Destination
	updated.DepartureTime = input.DepartureTime
	updated.ArrivalTime = input.ArrivalTime
	updated.Status = next
	updated.AircraftType = input.AircraftType
	updated.Gate = input.Gate
	updated.Terminal = input.Terminal
	updated.Capacity = input.Capacity
	updated.OccupiedSeats = input.OccupiedSeats
	updated.Price = input.Price

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &updated, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	if s.cache != nil {
		var cached DashboardStats
		if ok, err := s.cache.GetStats(ctx, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	flights, err := s.repo.List(ctx, repository.FlightFilter{})
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		ByStatus:    byStatus,
		GeneratedAt: time.Now(),
	}
	var totalRate float64
	for _, f := range flights {
		totalRate += f.OccupancyRate()
	}
	stats.TotalFlights = len(flights)
	if len(flights) > 0 {
		stats.AverageOccupancy = totalRate / float64(len(flights))
	}
	if s.cache != nil {
		_ = s.cache.SetStats(ctx, stats)
	}
	return stats, nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

func validateInput(input FlightInput) error {
	if input.FlightNumber == "" {
		return errors.New("flight number is required")
	}
	if input.Airline == "" || input.Origin == "" || input.Destination == "" {
		return errors.New("airline, origin and destination are required")
	}
	if input.Capacity <= 0 {
		return errors.New("capacity must be positive")
	}
	if input.OccupiedSeats < 0 || input.OccupiedSeats > input.Capacity {
		return errors.New("occupied seats must be between 0 and capacity")
	}
	if !input.ArrivalTime.After(input.DepartureTime) {
		return errors.New("arrival time must be after departure time")
	}
	return nil
}

var _ FlightUseCase = (*FlightService)(nil)
