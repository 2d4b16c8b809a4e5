package repository

import (
	"context"

	"airportops/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PassengerFilter struct {
	Nationality string
	Limit       int
	Offset      int
}

type PassengerRepository interface {
	List(ctx context.Context, filter PassengerFilter) ([]domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	Create(ctx context.Context, p *domain.Passenger) error
	Update(ctx context.Context, p *domain.Passenger) error
	Delete(ctx context.Context, id int64) error
	RandomIDs(ctx context.Context, limit int) ([]int64, error)
	Count(ctx context.Context) (int, error)
}

const passengerColumns = `id, first_name, last_name, email, phone, nationality, date_of_birth, frequent_flyer_id, preferred_destinations, travel_class_preference, total_flights, created_at, updated_at`

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func scanPassenger(row interface{ Scan(...any) error }) (domain.Passenger, error) {
	var p domain.Passenger
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone, &p.Nationality,
		&p.DateOfBirth, &p.FrequentFlyerID, &p.PreferredDestinations,
		&p.TravelClassPreference, &p.TotalFlights, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PGPassengerRepository) List(ctx context.Context, filter PassengerFilter) ([]domain.Passenger, error) {
	query := `SELECT ` + passengerColumns + ` FROM passengers`
	args := []any{}
	if filter.Nationality != "" {
		args = append(args, filter.Nationality)
		query += ` WHERE nationality=$1`
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + itoa(len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE id=$1`, id)
	p, err := scanPassenger(row)
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *PGPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	err := r.db.QueryRow(ctx, `INSERT INTO passengers (first_name, last_name, email, phone, nationality, date_of_birth, frequent_flyer_id, preferred_destinations, travel_class_preference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, total_flights, created_at, updated_at`,
		p.FirstName, p.LastName, p.Email, p.Phone, p.Nationality, p.DateOfBirth,
		p.FrequentFlyerID, p.PreferredDestinations, p.TravelClassPreference).
		Scan(&p.ID, &p.TotalFlights, &p.CreatedAt, &p.UpdatedAt)
	return mapError(err)
}

func (r *PGPassengerRepository) Update(ctx context.Context, p *domain.Passenger) error {
	res, err := r.db.Exec(ctx, `UPDATE passengers SET first_name=$1, last_name=$2, email=$3, phone=$4, nationality=$5, date_of_birth=$6, frequent_flyer_id=$7, preferred_destinations=$8, travel_class_preference=$9, updated_at=now() WHERE id=$10`,
		p.FirstName, p.LastName, p.Email, p.Phone, p.Nationality, p.DateOfBirth,
		p.FrequentFlyerID, p.PreferredDestinations, p.TravelClassPreference, p.ID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGPassengerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM passengers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGPassengerRepository) RandomIDs(ctx context.Context, limit int) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM passengers ORDER BY RANDOM() LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PGPassengerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM passengers`).Scan(&count)
	return count, err
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
