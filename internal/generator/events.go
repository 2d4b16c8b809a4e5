package generator

import (
	"context"
	"fmt"
	"time"

	"airportops/internal/domain"
	"airportops/internal/kafka"
	"airportops/internal/metrics"
)

var eventDescriptions = map[domain.EventType]string{
	domain.EventCheckInOpened:  "Check-in desks opened for flight %s",
	domain.EventGateChange:     "Gate changed for flight %s",
	domain.EventBaggageLoaded:  "Baggage loading completed for flight %s",
	domain.EventSecurityAlert:  "Security screening notice for flight %s",
	domain.EventBoardingStart:  "Boarding started for flight %s",
	domain.EventDelayAnnounced: "Delay announced for flight %s",
	domain.EventWeatherDelay:   "Weather delay affecting flight %s",
	domain.EventTechnicalIssue: "Technical inspection underway for flight %s",
	domain.EventFlightDeparted: "Flight %s departed",
	domain.EventFlightArrived:  "Flight %s arrived",
}

// EventTick appends an operational event for a random active flight. The
// event type always matches the flight's current status.
func (g *Generator) EventTick(ctx context.Context) error {
	flights, err := g.store.ListActiveFlights(ctx, 10)
	if err != nil {
		return fmt.Errorf("list active flights: %w", err)
	}
	if len(flights) == 0 {
		return nil
	}

	f := pick(g.rnd, flights)
	types := domain.EventTypesFor(f.Status)
	if len(types) == 0 {
		return nil
	}
	typ := pick(g.rnd, types)

	flightID := f.ID
	e := &domain.Event{
		EventType:   typ,
		FlightID:    &flightID,
		Description: fmt.Sprintf(eventDescriptions[typ], f.FlightNumber),
		Timestamp:   time.Now(),
		Metadata: map[string]any{
			"gate":     f.Gate,
			"terminal": f.Terminal,
			"status":   string(f.Status),
		},
	}
	if err := g.store.AppendEvent(ctx, e); err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	metrics.RecordsGenerated.WithLabelValues("event").Inc()

	if g.producer != nil {
		msg := kafka.AirportEvent{
			Type:        string(typ),
			FlightID:    f.ID,
			Description: e.Description,
			Timestamp:   e.Timestamp,
		}
		if err := g.producer.Publish(ctx, g.topic, f.FlightNumber, msg); err != nil {
			g.log.Warn("event publish failed", "topic", g.topic, "error", err)
		}
	}
	return nil
}
