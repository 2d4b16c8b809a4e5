package domain

import "time"

type ServiceType string

const (
	ServiceTypeRestaurant ServiceType = "RESTAURANT"
	ServiceTypeShop       ServiceType = "SHOP"
	ServiceTypeLounge     ServiceType = "LOUNGE"
	ServiceTypeSecurity   ServiceType = "SECURITY"
	ServiceTypeCustoms    ServiceType = "CUSTOMS"
	ServiceTypeBaggage    ServiceType = "BAGGAGE"
	ServiceTypeTransport  ServiceType = "TRANSPORT"
)

var ServiceTypes = []ServiceType{
	ServiceTypeRestaurant,
	ServiceTypeShop,
	ServiceTypeLounge,
	ServiceTypeSecurity,
	ServiceTypeCustoms,
	ServiceTypeBaggage,
	ServiceTypeTransport,
}

func (t ServiceType) Valid() bool {
	for _, known := range ServiceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Service is an airport amenity (restaurant, lounge, shop, ...) whose
// current_usage drifts over time but never exceeds capacity.
type Service struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Type         ServiceType `json:"type"`
	Description  string      `json:"description,omitempty"`
	Location     string      `json:"location"`
	Terminal     string      `json:"terminal"`
	Status       string      `json:"status"`
	Capacity     int         `json:"capacity"`
	CurrentUsage int         `json:"current_usage"`
	OpeningHours string      `json:"opening_hours,omitempty"`
	Rating       float64     `json:"rating"`
	PriceRange   string      `json:"price_range"`
	CreatedAt    time.Time   `json:"created_at"`
}
