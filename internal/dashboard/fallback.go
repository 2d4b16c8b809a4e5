package dashboard

import (
	"fmt"
	"math/rand"
	"time"

	"airportops/internal/domain"
	"airportops/internal/service/flights"
)

// Synthetic data shown when the API is unreachable, so the dashboard stays
// demonstrable without the backend.

var fallbackDestinations = []string{
	"London Heathrow", "New York JFK", "Tokyo Narita", "Dubai", "Frankfurt", "Madrid Barajas",
}

var fallbackStatuses = []domain.FlightStatus{
	domain.FlightStatusScheduled, domain.FlightStatusScheduled,
	domain.FlightStatusBoarding, domain.FlightStatusDelayed,
}

func fallbackFlights(r *rand.Rand, n int) []domain.Flight {
	out := make([]domain.Flight, 0, n)
	for i := 0; i < n; i++ {
		capacity := 150 + r.Intn(250)
		departure := time.Now().Add(time.Duration(1+r.Intn(8)) * time.Hour)
		out = append(out, domain.Flight{
			ID:            int64(i + 1),
			FlightNumber:  fmt.Sprintf("AF%04d", 1000+r.Intn(9000)),
			Airline:       "Air France",
			Origin:        "Paris CDG",
			Destination:   fallbackDestinations[r.Intn(len(fallbackDestinations))],
			DepartureTime: departure,
			ArrivalTime:   departure.Add(2 * time.Hour),
			Status:        fallbackStatuses[r.Intn(len(fallbackStatuses))],
			Gate:          fmt.Sprintf("A%d", 1+r.Intn(9)),
			Terminal:      "2",
			Capacity:      capacity,
			OccupiedSeats: r.Intn(capacity),
			Price:         100 + r.Float64()*500,
		})
	}
	return out
}

func fallbackServices(r *rand.Rand) []domain.Service {
	names := map[domain.ServiceType]string{
		domain.ServiceTypeRestaurant: "Le Comptoir",
		domain.ServiceTypeShop:       "Duty Free Paris",
		domain.ServiceTypeLounge:     "Salon Air France",
		domain.ServiceTypeSecurity:   "Security Checkpoint North",
	}
	out := make([]domain.Service, 0, len(names))
	var id int64
	for typ, name := range names {
		id++
		capacity := 50 + r.Intn(100)
		out = append(out, domain.Service{
			ID: id, Name: name, Type: typ,
			Terminal: "2", Status: "ACTIVE",
			Capacity: capacity, CurrentUsage: r.Intn(capacity),
			Rating: 3 + r.Float64()*2,
		})
	}
	return out
}

func fallbackEvents(fl []domain.Flight, n int) []domain.Event {
	out := make([]domain.Event, 0, n)
	for i := 0; i < n && i < len(fl); i++ {
		f := fl[i]
		types := domain.EventTypesFor(f.Status)
		if len(types) == 0 {
			continue
		}
		id := f.ID
		out = append(out, domain.Event{
			ID:          int64(i + 1),
			EventType:   types[0],
			FlightID:    &id,
			Description: "Simulated event for flight " + f.FlightNumber,
			Timestamp:   time.Now(),
		})
	}
	return out
}

func fallbackStats(fl []domain.Flight) *flights.DashboardStats {
	byStatus := make(map[domain.FlightStatus]int)
	var occupancy float64
	for _, f := range fl {
		byStatus[f.Status]++
		occupancy += f.OccupancyRate()
	}
	if len(fl) > 0 {
		occupancy /= float64(len(fl))
	}
	return &flights.DashboardStats{
		TotalFlights:     len(fl),
		ByStatus:         byStatus,
		AverageOccupancy: occupancy,
		GeneratedAt:      time.Now(),
	}
}

// FallbackSnapshot builds a fully synthetic snapshot.
func FallbackSnapshot(r *rand.Rand) Snapshot {
	fl := fallbackFlights(r, 8)
	return Snapshot{
		Flights:   fl,
		Services:  fallbackServices(r),
		Events:    fallbackEvents(fl, 5),
		Stats:     fallbackStats(fl),
		Online:    false,
		FetchedAt: time.Now(),
	}
}
