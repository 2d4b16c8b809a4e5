package repository

import (
	"context"

	"airportops/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository is append-and-read only. Events are never mutated.
type EventRepository interface {
	Append(ctx context.Context, e *domain.Event) error
	ListRecent(ctx context.Context, limit int) ([]domain.Event, error)
}

type PGEventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) EventRepository {
	return &PGEventRepository{db: db}
}

func (r *PGEventRepository) Append(ctx context.Context, e *domain.Event) error {
	err := r.db.QueryRow(ctx, `INSERT INTO events (event_type, flight_id, passenger_id, description, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, timestamp`,
		e.EventType, e.FlightID, e.PassengerID, e.Description, e.Metadata).
		Scan(&e.ID, &e.Timestamp)
	return mapError(err)
}

func (r *PGEventRepository) ListRecent(ctx context.Context, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `SELECT id, event_type, flight_id, passenger_id, description, timestamp, metadata FROM events ORDER BY timestamp DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.EventType, &e.FlightID, &e.PassengerID, &e.Description, &e.Timestamp, &e.Metadata); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

var _ EventRepository = (*PGEventRepository)(nil)
