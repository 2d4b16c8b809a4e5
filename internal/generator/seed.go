package generator

import (
	"context"
	"errors"
	"fmt"

	"airportops/internal/domain"
)

const (
	seedFlights    = 15
	seedPassengers = 30
	seedServices   = 10
)

// EnsureBaseline populates an empty database so the API and dashboard have
// something to show before the first scheduled ticks land. Tables that
// already hold data are left untouched.
func (g *Generator) EnsureBaseline(ctx context.Context) error {
	flights, err := g.store.CountFlights(ctx)
	if err != nil {
		return fmt.Errorf("count flights: %w", err)
	}
	if flights == 0 {
		for i := 0; i < seedFlights; i++ {
			if err := g.createFlight(ctx); err != nil {
				return err
			}
		}
	}

	passengers, err := g.store.CountPassengers(ctx)
	if err != nil {
		return fmt.Errorf("count passengers: %w", err)
	}
	if passengers == 0 {
		for i := 0; i < seedPassengers; i++ {
			err := g.store.CreatePassenger(ctx, g.newPassenger())
			if err != nil && !errors.Is(err, domain.ErrDuplicate) {
				return err
			}
		}
	}

	services, err := g.store.CountServices(ctx)
	if err != nil {
		return fmt.Errorf("count services: %w", err)
	}
	if services == 0 {
		for i := 0; i < seedServices; i++ {
			if err := g.createService(ctx); err != nil {
				return err
			}
		}
	}

	g.log.Info("baseline data ready",
		"flights", max(flights, seedFlights),
		"passengers", max(passengers, seedPassengers),
		"services", max(services, seedServices))
	return nil
}
