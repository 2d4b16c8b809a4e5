package passengers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"airportops/internal/domain"
	"airportops/internal/repository"
)

type PassengerUseCase interface {
	List(ctx context.Context, filter repository.PassengerFilter) ([]domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Create(ctx context.Context, input PassengerInput) (*domain.Passenger, error)
	Update(ctx context.Context, id int64, input PassengerInput) (*domain.Passenger, error)
	Delete(ctx context.Context, id int64) error
}

type PassengerInput struct {
	FirstName             string             `json:"first_name"`
	LastName              string             `json:"last_name"`
	Email                 string             `json:"email"`
	Phone                 string             `json:"phone"`
	Nationality           string             `json:"nationality"`
	DateOfBirth           time.Time          `json:"date_of_birth"`
	FrequentFlyerID       string             `json:"frequent_flyer_id"`
	PreferredDestinations []string           `json:"preferred_destinations"`
	TravelClassPreference domain.TravelClass `json:"travel_class_preference"`
}

type PassengerService struct {
	repo repository.PassengerRepository
}

func NewPassengerService(repo repository.PassengerRepository) *PassengerService {
	return &PassengerService{repo: repo}
}

func (s *PassengerService) List(ctx context.Context, filter repository.PassengerFilter) ([]domain.Passenger, error) {
	return s.repo.List(ctx, filter)
}

func (s *PassengerService) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PassengerService) Create(ctx context.Context, input PassengerInput) (*domain.Passenger, error) {
	if err := validateInput(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	class := input.TravelClassPreference
	if class == "" {
		class = domain.TravelClassEconomy
	}
	if !class.Valid() {
		return nil, fmt.Errorf("%w: unknown travel class preference", domain.ErrValidation)
	}

	passenger := &domain.Passenger{
		FirstName:             input.FirstName,
		LastName:              input.LastName,
		Email:                 strings.ToLower(input.Email),
		Phone:                 input.Phone,
		Nationality:           input.Nationality,
		DateOfBirth:           input.DateOfBirth,
		FrequentFlyerID:       input.FrequentFlyerID,
		PreferredDestinations: input.PreferredDestinations,
		TravelClassPreference: class,
	}
	if passenger.PreferredDestinations == nil {
		passenger.PreferredDestinations = []string{}
	}
	if err := s.repo.Create(ctx, passenger); err != nil {
		return nil, err
	}
	return passenger, nil
}

func (s *PassengerService) Update(ctx context.Context, id int64, input PassengerInput) (*domain.Passenger, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	updated := *current
	updated.FirstName = input.FirstName
	updated.LastName = input.LastName
	updated.Email = strings.ToLower(input.Email)
	updated.Phone = input.Phone
	updated.Nationality = input.Nationality
	updated.DateOfBirth = input.DateOfBirth
	updated.FrequentFlyerID = input.FrequentFlyerID
	if input.PreferredDestinations != nil {
		updated.PreferredDestinations = input.PreferredDestinations
	}
	if input.TravelClassPreference != "" {
		if !input.TravelClassPreference.Valid() {
			return nil, fmt.Errorf("%w: unknown travel class preference", domain.ErrValidation)
		}
		updated.TravelClassPreference = input.TravelClassPreference
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PassengerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validateInput(input PassengerInput) error {
	if input.FirstName == "" || input.LastName == "" {
		return errors.New("first and last name are required")
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return errors.New("a valid email is required")
	}
	return nil
}

var _ PassengerUseCase = (*PassengerService)(nil)
