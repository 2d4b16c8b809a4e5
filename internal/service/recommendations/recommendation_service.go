package recommendations

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"airportops/internal/domain"
	"airportops/internal/kafka"
	"airportops/internal/repository"
)

type RecommendationUseCase interface {
	ListForPassenger(ctx context.Context, passengerID int64) ([]domain.Recommendation, error)
	GenerateForPassenger(ctx context.Context, passengerID int64, limit int) ([]domain.Recommendation, error)
	DispatchUnsent(ctx context.Context, batchSize int) (int, error)
}

type EmailSender interface {
	SendRecommendation(ctx context.Context, to string, rec domain.Recommendation) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

const (
	baseScore        = 40.0
	destinationBonus = 35.0
	classBonus       = 15.0
	bargainBonus     = 10.0
	bargainThreshold = 600.0
)

type RecommendationService struct {
	recs       repository.RecommendationRepository
	passengers repository.PassengerRepository
	flights    repository.FlightRepository
	bookings   repository.BookingRepository
	email      EmailSender
	producer   Producer
	topic      string
}

type Option func(*RecommendationService)

func WithProducer(producer Producer, topic string) Option {
	return func(s *RecommendationService) {
		s.producer = producer
		s.topic = topic
	}
}

func WithEmailSender(sender EmailSender) Option {
	return func(s *RecommendationService) {
		s.email = sender
	}
}

func NewRecommendationService(
	recs repository.RecommendationRepository,
	passengers repository.PassengerRepository,
	flights repository.FlightRepository,
	bookings repository.BookingRepository,
	opts ...Option,
) *RecommendationService {
	service := &RecommendationService{
		recs:       recs,
		passengers: passengers,
		flights:    flights,
		bookings:   bookings,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *RecommendationService) ListForPassenger(ctx context.Context, passengerID int64) ([]domain.Recommendation, error) {
	return s.recs.ListByPassenger(ctx, passengerID)
}

// GenerateForPassenger scores upcoming flights against the passenger's
// preferences and stores the best matches.
func (s *RecommendationService) GenerateForPassenger(ctx context.Context, passengerID int64, limit int) ([]domain.Recommendation, error) {
	if limit <= 0 {
		limit = 5
	}

	passenger, err := s.passengers.GetByID(ctx, passengerID)
	if err != nil {
		return nil, fmt.Errorf("look up passenger: %w", err)
	}

	flights, err := s.flights.List(ctx, repository.FlightFilter{Status: string(domain.FlightStatusScheduled)})
	if err != nil {
		return nil, err
	}

	scored := make([]domain.Recommendation, 0, len(flights))
	for _, flight := range flights {
		booked, err := s.bookings.Exists(ctx, passengerID, flight.ID)
		if err != nil {
			return nil, err
		}
		if booked {
			continue
		}
		scored = append(scored, score(passenger, flight))
	}

	sort.Slice(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > limit {
		scored = scored[:limit]
	}

	for i := range scored {
		if err := s.recs.Create(ctx, &scored[i]); err != nil {
			return nil, err
		}
		s.publish(ctx, passenger, scored[i])
	}
	return scored, nil
}

// DispatchUnsent emails pending recommendations and marks them sent.
// Returns the number dispatched.
func (s *RecommendationService) DispatchUnsent(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 20
	}

	pending, err := s.recs.ListUnsent(ctx, batchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, rec := range pending {
		passenger, err := s.passengers.GetByID(ctx, rec.PassengerID)
		if err != nil {
			slog.Warn("skip recommendation with missing passenger", "recommendation_id", rec.ID, "error", err)
			continue
		}
		if s.email != nil {
			if err := s.email.SendRecommendation(ctx, passenger.Email, rec); err != nil {
				slog.Warn("send recommendation email failed", "recommendation_id", rec.ID, "error", err)
				continue
			}
		}
		if err := s.recs.MarkSent(ctx, rec.ID); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

func score(passenger *domain.Passenger, flight domain.Flight) domain.Recommendation {
	rec := domain.Recommendation{
		PassengerID:        passenger.ID,
		FlightID:           flight.ID,
		RecommendationType: domain.RecommendationTypeDiscover,
		Score:              baseScore,
		Reason:             fmt.Sprintf("Upcoming departure to %s", flight.Destination),
	}

	for _, preferred := range passenger.PreferredDestinations {
		if destinationMatches(flight.Destination, preferred) {
			rec.Score += destinationBonus
			rec.RecommendationType = domain.RecommendationTypeDestinationMatch
			rec.Reason = fmt.Sprintf("%s is on your preferred destination list", flight.Destination)
			break
		}
	}

	if passenger.TravelClassPreference != domain.TravelClassEconomy && flight.Price >= bargainThreshold {
		rec.Score += classBonus
		if rec.RecommendationType == domain.RecommendationTypeDiscover {
			rec.RecommendationType = domain.RecommendationTypeClassMatch
		}
	}
	if flight.Price > 0 && flight.Price < bargainThreshold {
		rec.Score += bargainBonus
	}

	if rec.Score > 100 {
		rec.Score = 100
	}
	return rec
}

func destinationMatches(destination, preferred string) bool {
	d := strings.ToLower(destination)
	p := strings.ToLower(preferred)
	return strings.Contains(d, p) || strings.Contains(p, d)
}

func (s *RecommendationService) publish(ctx context.Context, passenger *domain.Passenger, rec domain.Recommendation) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.AirportEvent{
		Type:        "recommendation_created",
		FlightID:    rec.FlightID,
		PassengerID: rec.PassengerID,
		Description: rec.Reason,
		Timestamp:   time.Now(),
	}
	key := fmt.Sprintf("passenger-%d", passenger.ID)
	if err := s.producer.Publish(ctx, s.topic, key, event); err != nil {
		slog.Warn("publish recommendation event failed", "passenger_id", passenger.ID, "error", err)
	}
}

var _ RecommendationUseCase = (*RecommendationService)(nil)
