package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"airportops/internal/domain"
	"airportops/internal/metrics"
)

var nationalities = []string{
	"French", "German", "British", "Spanish", "Italian",
	"Dutch", "American", "Japanese", "Brazilian", "Canadian",
}

var travelClasses = []domain.TravelClass{
	domain.TravelClassEconomy, domain.TravelClassEconomy, domain.TravelClassEconomy,
	domain.TravelClassBusiness, domain.TravelClassFirst,
}

// PassengerTick registers a new passenger and, some of the time, books
// them onto a scheduled flight.
func (g *Generator) PassengerTick(ctx context.Context) error {
	p := g.newPassenger()
	if err := g.store.CreatePassenger(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Email already taken, nothing to do this round.
			return nil
		}
		return fmt.Errorf("create passenger: %w", err)
	}
	metrics.RecordsGenerated.WithLabelValues("passenger").Inc()

	if g.rnd.Float64() < 0.40 {
		if err := g.bookRandom(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) newPassenger() *domain.Passenger {
	first := g.faker.FirstName()
	last := g.faker.LastName()

	prefs := make([]string, 0, 2)
	for _, d := range []string{pick(g.rnd, destinations), pick(g.rnd, destinations)} {
		if len(prefs) == 0 || prefs[0] != d {
			prefs = append(prefs, d)
		}
	}

	p := &domain.Passenger{
		FirstName:             first,
		LastName:              last,
		Email:                 fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), g.rnd.Intn(1000), g.faker.DomainName()),
		Phone:                 g.faker.Phone(),
		Nationality:           pick(g.rnd, nationalities),
		DateOfBirth:           time.Now().AddDate(-18-g.rnd.Intn(60), 0, -g.rnd.Intn(365)),
		PreferredDestinations: prefs,
		TravelClassPreference: pick(g.rnd, travelClasses),
	}
	if g.rnd.Float64() < 0.30 {
		p.FrequentFlyerID = fmt.Sprintf("FF%08d", g.rnd.Intn(100000000))
	}
	return p
}

// bookRandom pairs a random passenger with a random scheduled flight.
// Already-booked pairs are left alone.
func (g *Generator) bookRandom(ctx context.Context) error {
	flightIDs, err := g.store.ListScheduledFlightIDs(ctx, 20)
	if err != nil {
		return fmt.Errorf("list scheduled flights: %w", err)
	}
	passengerIDs, err := g.store.RandomPassengerIDs(ctx, 1)
	if err != nil {
		return fmt.Errorf("pick passenger: %w", err)
	}
	if len(flightIDs) == 0 || len(passengerIDs) == 0 {
		return nil
	}

	flightID := pick(g.rnd, flightIDs)
	passengerID := passengerIDs[0]

	booked, err := g.store.HasBooking(ctx, passengerID, flightID)
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}
	if booked {
		return nil
	}

	b := &domain.Booking{
		PassengerID:      passengerID,
		FlightID:         flightID,
		BookingReference: fmt.Sprintf("CDG%06d", g.rnd.Intn(1000000)),
		SeatNumber:       fmt.Sprintf("%d%c", 1+g.rnd.Intn(40), 'A'+rune(g.rnd.Intn(6))),
		TravelClass:      pick(g.rnd, travelClasses),
		Status:           domain.BookingStatusConfirmed,
		BaggageCount:     g.rnd.Intn(3),
		Price:            50 + g.rnd.Float64()*950,
	}
	if err := g.store.CreateBooking(ctx, b); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("create booking: %w", err)
	}
	metrics.RecordsGenerated.WithLabelValues("booking").Inc()
	return nil
}
