package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"airportops/internal/domain"
	"airportops/internal/metrics"
)

const transitionWindow = 4 * time.Hour

var (
	airlineCodes = map[string]string{
		"AF": "Air France",
		"BA": "British Airways",
		"LH": "Lufthansa",
		"KL": "KLM",
		"IB": "Iberia",
		"AZ": "ITA Airways",
		"LX": "Swiss",
		"SK": "SAS",
	}

	airlinePrefixes = []string{"AF", "BA", "LH", "KL", "IB", "AZ", "LX", "SK"}

	destinations = []string{
		"London Heathrow", "Frankfurt", "Amsterdam", "Madrid Barajas",
		"Rome Fiumicino", "Zurich", "Copenhagen", "New York JFK",
		"Tokyo Narita", "Dubai", "Singapore Changi", "Barcelona",
	}

	aircraftTypes = []string{"A320", "A321neo", "A350-900", "B737-800", "B777-300ER", "B787-9"}

	capacities = []int{150, 180, 220, 350, 400}
)

// FlightTick advances flights approaching departure through the status
// graph, fills seats, and occasionally schedules a new departure.
func (g *Generator) FlightTick(ctx context.Context) error {
	if g.rnd.Float64() < 0.10 {
		if err := g.createFlight(ctx); err != nil {
			return err
		}
	}

	flights, err := g.store.ListFlightsDepartingWithin(ctx, transitionWindow)
	if err != nil {
		return fmt.Errorf("list departing flights: %w", err)
	}

	now := time.Now()
	for _, f := range flights {
		if f.Status.Terminal() {
			continue
		}

		next := g.nextStatus(f, now)
		occupied := f.OccupiedSeats
		if f.Status.Active() && next.Active() {
			occupied += g.rnd.Intn(11)
			if occupied > f.Capacity {
				occupied = f.Capacity
			}
		}

		if next == f.Status && occupied == f.OccupiedSeats {
			continue
		}
		if !f.Status.CanTransitionTo(next) {
			continue
		}
		if err := g.store.UpdateFlightState(ctx, f.ID, next, occupied); err != nil {
			return fmt.Errorf("update flight %d: %w", f.ID, err)
		}
		if next != f.Status {
			g.log.Debug("flight status changed",
				"flight", f.FlightNumber, "from", f.Status, "to", next)
		}
	}
	return nil
}

// nextStatus decides the flight's status from its time to departure. The
// closer to departure, the further along the graph it moves.
func (g *Generator) nextStatus(f domain.Flight, now time.Time) domain.FlightStatus {
	ttd := f.DepartureTime.Sub(now)

	switch {
	case f.Status == domain.FlightStatusDeparted:
		if !now.Before(f.ArrivalTime) {
			return domain.FlightStatusArrived
		}
		return f.Status
	case ttd <= 0:
		return domain.FlightStatusDeparted
	case ttd <= 30*time.Minute && f.Status == domain.FlightStatusBoarding:
		return domain.FlightStatusDeparted
	case ttd <= time.Hour && (f.Status == domain.FlightStatusScheduled || f.Status == domain.FlightStatusDelayed):
		return domain.FlightStatusBoarding
	case ttd <= 2*time.Hour && f.Status == domain.FlightStatusScheduled && g.rnd.Float64() < 0.10:
		return domain.FlightStatusDelayed
	case ttd <= 3*time.Hour && f.Status == domain.FlightStatusScheduled && g.rnd.Float64() < 0.02:
		return domain.FlightStatusCancelled
	}
	return f.Status
}

func (g *Generator) createFlight(ctx context.Context) error {
	prefix := pick(g.rnd, airlinePrefixes)
	departure := time.Now().Add(time.Duration(2+g.rnd.Intn(10)) * time.Hour)

	f := &domain.Flight{
		FlightNumber:  fmt.Sprintf("%s%04d", prefix, g.rnd.Intn(10000)),
		Airline:       airlineCodes[prefix],
		Origin:        "Paris CDG",
		Destination:   pick(g.rnd, destinations),
		DepartureTime: departure,
		ArrivalTime:   departure.Add(time.Duration(1+g.rnd.Intn(11)) * time.Hour),
		Status:        domain.FlightStatusScheduled,
		AircraftType:  pick(g.rnd, aircraftTypes),
		Gate:          fmt.Sprintf("%c%d", 'A'+rune(g.rnd.Intn(5)), 1+g.rnd.Intn(30)),
		Terminal:      fmt.Sprintf("%d", 1+g.rnd.Intn(3)),
		Capacity:      pick(g.rnd, capacities),
		OccupiedSeats: 0,
		Price:         50 + g.rnd.Float64()*950,
	}

	if err := g.store.CreateFlight(ctx, f); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Flight number collision, try again next tick.
			return nil
		}
		return fmt.Errorf("create flight: %w", err)
	}
	metrics.RecordsGenerated.WithLabelValues("flight").Inc()
	g.log.Info("flight scheduled", "flight", f.FlightNumber, "destination", f.Destination)
	return nil
}
