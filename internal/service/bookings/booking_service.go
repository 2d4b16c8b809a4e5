package bookings

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"airportops/internal/domain"
	"airportops/internal/kafka"
	"airportops/internal/repository"
)

type BookingUseCase interface {
	List(ctx context.Context, limit, offset int) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateBookingInput struct {
	PassengerID         int64              `json:"passenger_id"`
	FlightID            int64              `json:"flight_id"`
	SeatNumber          string             `json:"seat_number"`
	TravelClass         domain.TravelClass `json:"travel_class"`
	BaggageCount        int                `json:"baggage_count"`
	SpecialRequirements string             `json:"special_requirements"`
	Price               float64            `json:"price"`
}

type BookingService struct {
	bookings repository.BookingRepository
	flights  repository.FlightRepository
	producer Producer
	topic    string
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewBookingService(bookings repository.BookingRepository, flights repository.FlightRepository, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{bookings: bookings, flights: flights}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.List(ctx, limit, offset)
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.PassengerID <= 0 || input.FlightID <= 0 {
		return nil, fmt.Errorf("%w: passenger_id and flight_id are required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	class := input.TravelClass
	if class == "" {
		class = domain.TravelClassEconomy
	}
	if !class.Valid() {
		return nil, fmt.Errorf("%w: unknown travel class", domain.ErrValidation)
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, fmt.Errorf("look up flight: %w", err)
	}
	if !flight.Status.Active() {
		return nil, fmt.Errorf("%w: flight %s is not open for booking", domain.ErrValidation, flight.FlightNumber)
	}
	if flight.OccupiedSeats >= flight.Capacity {
		return nil, fmt.Errorf("%w: flight is full", domain.ErrValidation)
	}

	seat := input.SeatNumber
	if seat == "" {
		seat = randomSeat()
	}

	booking := &domain.Booking{
		PassengerID:         input.PassengerID,
		FlightID:            input.FlightID,
		BookingReference:    NewReference(),
		SeatNumber:          seat,
		TravelClass:         class,
		Status:              domain.BookingStatusConfirmed,
		BaggageCount:        input.BaggageCount,
		SpecialRequirements: input.SpecialRequirements,
		Price:               input.Price,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled {
		return current, nil
	}

	cancelled, err := s.bookings.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "booking_cancelled", cancelled)
	return cancelled, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.AirportEvent{
		Type:        eventType,
		FlightID:    booking.FlightID,
		PassengerID: booking.PassengerID,
		Reference:   booking.BookingReference,
		Description: fmt.Sprintf("booking %s %s", booking.BookingReference, eventType),
		Timestamp:   time.Now(),
	}
	if err := s.producer.Publish(ctx, s.topic, booking.BookingReference, event); err != nil {
		slog.Warn("publish booking event failed", "reference", booking.BookingReference, "error", err)
	}
}

// NewReference builds a CDG-prefixed six digit booking reference.
func NewReference() string {
	return fmt.Sprintf("CDG%06d", rand.Intn(1000000))
}

func randomSeat() string {
	return fmt.Sprintf("%d%c", rand.Intn(40)+1, 'A'+rune(rand.Intn(6)))
}

var _ BookingUseCase = (*BookingService)(nil)
