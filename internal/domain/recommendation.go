package domain

import "time"

const (
	RecommendationTypeDestinationMatch = "DESTINATION_MATCH"
	RecommendationTypeClassMatch       = "CLASS_MATCH"
	RecommendationTypeDiscover         = "DISCOVER"
)

type Recommendation struct {
	ID                 int64     `json:"id"`
	PassengerID        int64     `json:"passenger_id"`
	FlightID           int64     `json:"flight_id"`
	RecommendationType string    `json:"recommendation_type"`
	Score              float64   `json:"score"`
	Reason             string    `json:"reason"`
	CreatedAt          time.Time `json:"created_at"`
	IsSent             bool      `json:"is_sent"`
}
