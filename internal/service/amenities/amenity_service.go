// Package amenities manages airport services (restaurants, lounges, shops)
// and their occupancy.
package amenities

import (
	"context"
	"errors"
	"fmt"

	"airportops/internal/domain"
	"airportops/internal/repository"
)

type AmenityUseCase interface {
	List(ctx context.Context, filter repository.ServiceFilter) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, input ServiceInput) (*domain.Service, error)
	Update(ctx context.Context, id int64, input ServiceInput) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

type ServiceInput struct {
	Name         string             `json:"name"`
	Type         domain.ServiceType `json:"type"`
	Description  string             `json:"description"`
	Location     string             `json:"location"`
	Terminal     string             `json:"terminal"`
	Capacity     int                `json:"capacity"`
	CurrentUsage int                `json:"current_usage"`
	OpeningHours string             `json:"opening_hours"`
	Rating       float64            `json:"rating"`
	PriceRange   string             `json:"price_range"`
}

type AmenityService struct {
	repo repository.ServiceRepository
}

func NewAmenityService(repo repository.ServiceRepository) *AmenityService {
	return &AmenityService{repo: repo}
}

func (s *AmenityService) List(ctx context.Context, filter repository.ServiceFilter) ([]domain.Service, error) {
	return s.repo.List(ctx, filter)
}

func (s *AmenityService) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AmenityService) Create(ctx context.Context, input ServiceInput) (*domain.Service, error) {
	if err := validateInput(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	service := &domain.Service{
		Name:         input.Name,
		Type:         input.Type,
		Description:  input.Description,
		Location:     input.Location,
		Terminal:     input.Terminal,
		Status:       "ACTIVE",
		Capacity:     input.Capacity,
		CurrentUsage: input.CurrentUsage,
		OpeningHours: input.OpeningHours,
		Rating:       input.Rating,
		PriceRange:   input.PriceRange,
	}
	if err := s.repo.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *AmenityService) Update(ctx context.Context, id int64, input ServiceInput) (*domain.Service, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	updated := *current
	updated.Name = input.Name
	updated.Type = input.Type
	updated.Description = input.Description
	updated.Location = input.Location
	updated.Terminal = input.Terminal
	updated.Capacity = input.Capacity
	updated.CurrentUsage = input.CurrentUsage
	updated.OpeningHours = input.OpeningHours
	updated.Rating = input.Rating
	updated.PriceRange = input.PriceRange

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *AmenityService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validateInput(input ServiceInput) error {
	if input.Name == "" {
		return errors.New("name is required")
	}
	if !input.Type.Valid() {
		return errors.New("unknown service type")
	}
	if input.Capacity <= 0 {
		return errors.New("capacity must be positive")
	}
	if input.CurrentUsage < 0 || input.CurrentUsage > input.Capacity {
		return errors.New("current usage must be between 0 and capacity")
	}
	if input.Rating < 0 || input.Rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}
	return nil
}

var _ AmenityUseCase = (*AmenityService)(nil)
