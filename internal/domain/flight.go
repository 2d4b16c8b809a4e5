package domain

import "time"

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "SCHEDULED"
	FlightStatusBoarding  FlightStatus = "BOARDING"
	FlightStatusDelayed   FlightStatus = "DELAYED"
	FlightStatusDeparted  FlightStatus = "DEPARTED"
	FlightStatusArrived   FlightStatus = "ARRIVED"
	FlightStatusCancelled FlightStatus = "CANCELLED"
)

// flightTransitions is the allowed status graph. DELAYED never returns to
// SCHEDULED, and ARRIVED/CANCELLED are absorbing.
var flightTransitions = map[FlightStatus][]FlightStatus{
	FlightStatusScheduled: {FlightStatusBoarding, FlightStatusDelayed, FlightStatusDeparted, FlightStatusCancelled},
	FlightStatusDelayed:   {FlightStatusBoarding, FlightStatusDeparted},
	FlightStatusBoarding:  {FlightStatusDelayed, FlightStatusDeparted},
	FlightStatusDeparted:  {FlightStatusArrived},
}

// Terminal reports whether no further status change is allowed.
func (s FlightStatus) Terminal() bool {
	return s == FlightStatusArrived || s == FlightStatusCancelled
}

// Active reports whether the flight has not yet departed and is still mutable.
func (s FlightStatus) Active() bool {
	return s == FlightStatusScheduled || s == FlightStatusBoarding || s == FlightStatusDelayed
}

func (s FlightStatus) CanTransitionTo(next FlightStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range flightTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s FlightStatus) Valid() bool {
	switch s {
	case FlightStatusScheduled, FlightStatusBoarding, FlightStatusDelayed,
		FlightStatusDeparted, FlightStatusArrived, FlightStatusCancelled:
		return true
	}
	return false
}

type Flight struct {
	ID            int64        `json:"id"`
	FlightNumber  string       `json:"flight_number"`
	Airline       string       `json:"airline"`
	Origin        string       `json:"origin"`
	Destination   string       `json:"destination"`
	DepartureTime time.Time    `json:"departure_time"`
	ArrivalTime   time.Time    `json:"arrival_time"`
	Status        FlightStatus `json:"status"`
	AircraftType  string       `json:"aircraft_type"`
	Gate          string       `json:"gate"`
	Terminal      string       `json:"terminal"`
	Capacity      int          `json:"capacity"`
	OccupiedSeats int          `json:"occupied_seats"`
	Price         float64      `json:"price"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// OccupancyRate is the occupied share in percent, 0 when capacity is unknown.
func (f Flight) OccupancyRate() float64 {
	if f.Capacity <= 0 {
		return 0
	}
	return float64(f.OccupiedSeats) / float64(f.Capacity) * 100
}
