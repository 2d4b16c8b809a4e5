package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCheckedIn BookingStatus = "CHECKED_IN"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID                  int64         `json:"id"`
	PassengerID         int64         `json:"passenger_id"`
	FlightID            int64         `json:"flight_id"`
	BookingReference    string        `json:"booking_reference"`
	SeatNumber          string        `json:"seat_number"`
	TravelClass         TravelClass   `json:"travel_class"`
	Status              BookingStatus `json:"status"`
	BookingDate         time.Time     `json:"booking_date"`
	CheckInTime         *time.Time    `json:"check_in_time,omitempty"`
	BaggageCount        int           `json:"baggage_count"`
	SpecialRequirements string        `json:"special_requirements,omitempty"`
	Price               float64       `json:"price"`
}
