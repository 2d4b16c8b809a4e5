package generator

import (
	"context"
	"fmt"

	"airportops/internal/domain"
	"airportops/internal/metrics"
)

var serviceNames = map[domain.ServiceType][]string{
	domain.ServiceTypeRestaurant: {"Le Comptoir", "Brasserie Flo", "Sushi Bar", "Burger Corner"},
	domain.ServiceTypeShop:       {"Duty Free Paris", "Relay", "Fnac", "L'Occitane"},
	domain.ServiceTypeLounge:     {"Salon Air France", "Star Alliance Lounge", "Extime Lounge"},
	domain.ServiceTypeSecurity:   {"Security Checkpoint North", "Security Checkpoint South"},
	domain.ServiceTypeCustoms:    {"Customs Hall", "Border Control East"},
	domain.ServiceTypeBaggage:    {"Baggage Claim 3", "Left Luggage Office"},
	domain.ServiceTypeTransport:  {"CDGVAL Shuttle", "Taxi Rank", "RER B Station"},
}

var priceRanges = []string{"€", "€€", "€€€"}

// ServiceTick drifts each service's usage up or down within its capacity
// and occasionally opens a new service.
func (g *Generator) ServiceTick(ctx context.Context) error {
	if g.rnd.Float64() < 0.05 {
		if err := g.createService(ctx); err != nil {
			return err
		}
	}

	services, err := g.store.ListServices(ctx)
	if err != nil {
		return fmt.Errorf("list services: %w", err)
	}

	for _, svc := range services {
		delta := g.rnd.Intn(26) - 10 // [-10, 15]
		usage := svc.CurrentUsage + delta
		if usage < 0 {
			usage = 0
		}
		if usage > svc.Capacity {
			usage = svc.Capacity
		}
		if usage == svc.CurrentUsage {
			continue
		}
		if err := g.store.UpdateServiceUsage(ctx, svc.ID, usage); err != nil {
			return fmt.Errorf("update service %d: %w", svc.ID, err)
		}
	}
	return nil
}

func (g *Generator) createService(ctx context.Context) error {
	typ := pick(g.rnd, domain.ServiceTypes)

	svc := &domain.Service{
		Name:         pick(g.rnd, serviceNames[typ]),
		Type:         typ,
		Location:     fmt.Sprintf("Zone %c, level %d", 'A'+rune(g.rnd.Intn(5)), g.rnd.Intn(3)),
		Terminal:     fmt.Sprintf("%d", 1+g.rnd.Intn(3)),
		Status:       "ACTIVE",
		Capacity:     20 + g.rnd.Intn(181),
		CurrentUsage: 0,
		OpeningHours: "06:00-23:00",
		Rating:       2 + g.rnd.Float64()*3,
		PriceRange:   pick(g.rnd, priceRanges),
	}
	if err := g.store.CreateService(ctx, svc); err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	metrics.RecordsGenerated.WithLabelValues("service").Inc()
	g.log.Info("service opened", "name", svc.Name, "type", svc.Type)
	return nil
}
