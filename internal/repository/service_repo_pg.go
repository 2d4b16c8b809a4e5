package repository

import (
	"context"

	"airportops/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceFilter struct {
	Type     string
	Terminal string
}

type ServiceRepository interface {
	List(ctx context.Context, filter ServiceFilter) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) error
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id int64) error
	UpdateUsage(ctx context.Context, id int64, usage int) error
	Count(ctx context.Context) (int, error)
}

const serviceColumns = `id, name, type, description, location, terminal, status, capacity, current_usage, opening_hours, rating, price_range, created_at`

type PGServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) ServiceRepository {
	return &PGServiceRepository{db: db}
}

func scanService(row interface{ Scan(...any) error }) (domain.Service, error) {
	var s domain.Service
	err := row.Scan(&s.ID, &s.Name, &s.Type, &s.Description, &s.Location, &s.Terminal,
		&s.Status, &s.Capacity, &s.CurrentUsage, &s.OpeningHours, &s.Rating,
		&s.PriceRange, &s.CreatedAt)
	return s, err
}

func (r *PGServiceRepository) List(ctx context.Context, filter ServiceFilter) ([]domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	args := []any{}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += ` WHERE type=$1`
	}
	if filter.Terminal != "" {
		args = append(args, filter.Terminal)
		if len(args) == 1 {
			query += ` WHERE terminal=$1`
		} else {
			query += ` AND terminal=$2`
		}
	}
	query += ` ORDER BY terminal, name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *PGServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	row := r.db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id=$1`, id)
	s, err := scanService(row)
	if err != nil {
		return nil, mapError(err)
	}
	return &s, nil
}

func (r *PGServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	err := r.db.QueryRow(ctx, `INSERT INTO services (name, type, description, location, terminal, status, capacity, current_usage, opening_hours, rating, price_range)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`,
		s.Name, s.Type, s.Description, s.Location, s.Terminal, s.Status,
		s.Capacity, s.CurrentUsage, s.OpeningHours, s.Rating, s.PriceRange).
		Scan(&s.ID, &s.CreatedAt)
	return mapError(err)
}

func (r *PGServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	res, err := r.db.Exec(ctx, `UPDATE services SET name=$1, type=$2, description=$3, location=$4, terminal=$5, status=$6, capacity=$7, current_usage=$8, opening_hours=$9, rating=$10, price_range=$11 WHERE id=$12`,
		s.Name, s.Type, s.Description, s.Location, s.Terminal, s.Status,
		s.Capacity, s.CurrentUsage, s.OpeningHours, s.Rating, s.PriceRange, s.ID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGServiceRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGServiceRepository) UpdateUsage(ctx context.Context, id int64, usage int) error {
	res, err := r.db.Exec(ctx, `UPDATE services SET current_usage=LEAST(capacity, GREATEST(0, $1)) WHERE id=$2`, usage, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGServiceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&count)
	return count, err
}

var _ ServiceRepository = (*PGServiceRepository)(nil)
