package domain

import "time"

type TravelClass string

const (
	TravelClassEconomy  TravelClass = "ECONOMY"
	TravelClassBusiness TravelClass = "BUSINESS"
	TravelClassFirst    TravelClass = "FIRST"
)

func (c TravelClass) Valid() bool {
	return c == TravelClassEconomy || c == TravelClassBusiness || c == TravelClassFirst
}

type Passenger struct {
	ID                    int64       `json:"id"`
	FirstName             string      `json:"first_name"`
	LastName              string      `json:"last_name"`
	Email                 string      `json:"email"`
	Phone                 string      `json:"phone"`
	Nationality           string      `json:"nationality"`
	DateOfBirth           time.Time   `json:"date_of_birth"`
	FrequentFlyerID       string      `json:"frequent_flyer_id,omitempty"`
	PreferredDestinations []string    `json:"preferred_destinations"`
	TravelClassPreference TravelClass `json:"travel_class_preference"`
	TotalFlights          int         `json:"total_flights"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}
