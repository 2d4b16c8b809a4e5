package domain

import "time"

type EventType string

const (
	EventCheckInOpened  EventType = "CHECK_IN_OPENED"
	EventGateChange     EventType = "GATE_CHANGE"
	EventBaggageLoaded  EventType = "BAGGAGE_LOADED"
	EventSecurityAlert  EventType = "SECURITY_ALERT"
	EventBoardingStart  EventType = "BOARDING_STARTED"
	EventDelayAnnounced EventType = "DELAY_ANNOUNCED"
	EventWeatherDelay   EventType = "WEATHER_DELAY"
	EventTechnicalIssue EventType = "TECHNICAL_ISSUE"
	EventFlightDeparted EventType = "FLIGHT_DEPARTED"
	EventFlightArrived  EventType = "FLIGHT_ARRIVED"
)

// eventTypesByStatus maps a flight status to event types that may be
// attached to it. A BOARDING_STARTED event can only come from a flight
// that is actually boarding, a delay event only from a delayed one.
var eventTypesByStatus = map[FlightStatus][]EventType{
	FlightStatusScheduled: {EventCheckInOpened, EventGateChange, EventBaggageLoaded, EventSecurityAlert},
	FlightStatusBoarding:  {EventBoardingStart, EventBaggageLoaded, EventGateChange},
	FlightStatusDelayed:   {EventDelayAnnounced, EventWeatherDelay, EventTechnicalIssue, EventGateChange},
	FlightStatusDeparted:  {EventFlightDeparted},
	FlightStatusArrived:   {EventFlightArrived},
}

// EventTypesFor returns the event types consistent with the given flight
// status. Empty for terminal CANCELLED flights.
func EventTypesFor(status FlightStatus) []EventType {
	return eventTypesByStatus[status]
}

// Event is an append-only operational log entry. Events are never updated
// or deleted once written.
type Event struct {
	ID          int64          `json:"id"`
	EventType   EventType      `json:"event_type"`
	FlightID    *int64         `json:"flight_id,omitempty"`
	PassengerID *int64         `json:"passenger_id,omitempty"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}
