package repository

import (
	"context"
	"strconv"
	"time"

	"airportops/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightFilter struct {
	Status      string
	Destination string
	Limit       int
	Offset      int
}

type FlightRepository interface {
	List(ctx context.Context, filter FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, f *domain.Flight) error
	Update(ctx context.Context, f *domain.Flight) error
	Delete(ctx context.Context, id int64) error
	ListDepartingWithin(ctx context.Context, window time.Duration) ([]domain.Flight, error)
	ListActive(ctx context.Context, limit int) ([]domain.Flight, error)
	ListScheduledIDs(ctx context.Context, limit int) ([]int64, error)
	UpdateState(ctx context.Context, id int64, status domain.FlightStatus, occupiedSeats int) error
	CountByStatus(ctx context.Context) (map[domain.FlightStatus]int, error)
	Count(ctx context.Context) (int, error)
}

const flightColumns = `id, flight_number, airline, origin, destination, departure_time, arrival_time, status, aircraft_type, gate, terminal, capacity, occupied_seats, price, created_at, updated_at`

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func scanFlight(row interface{ Scan(...any) error }) (domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.ID, &f.FlightNumber, &f.Airline, &f.Origin, &f.Destination,
		&f.DepartureTime, &f.ArrivalTime, &f.Status, &f.AircraftType, &f.Gate,
		&f.Terminal, &f.Capacity, &f.OccupiedSeats, &f.Price, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r *PGFlightRepository) List(ctx context.Context, filter FlightFilter) ([]domain.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights`
	args := []any{}
	where := ""
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = ` WHERE status=$1`
	}
	if filter.Destination != "" {
		args = append(args, filter.Destination)
		if where == "" {
			where = ` WHERE destination=$1`
		} else {
			where += ` AND destination=$2`
		}
	}
	query += where + ` ORDER BY departure_time`
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

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	f, err := scanFlight(row)
	if err != nil {
		return nil, mapError(err)
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	err := r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, airline, origin, destination, departure_time, arrival_time, status, aircraft_type, gate, terminal, capacity, occupied_seats, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`,
		f.FlightNumber, f.Airline, f.Origin, f.Destination, f.DepartureTime, f.ArrivalTime,
		f.Status, f.AircraftType, f.Gate, f.Terminal, f.Capacity, f.OccupiedSeats, f.Price).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	return mapError(err)
}

func (r *PGFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	res, err := r.db.Exec(ctx, `UPDATE flights SET airline=$1, origin=$2, destination=$3, departure_time=$4, arrival_time=$5, status=$6, aircraft_type=$7, gate=$8, terminal=$9, capacity=$10, occupied_seats=$11, price=$12, updated_at=now() WHERE id=$13`,
		f.Airline, f.Origin, f.Destination, f.DepartureTime, f.ArrivalTime, f.Status,
		f.AircraftType, f.Gate, f.Terminal, f.Capacity, f.OccupiedSeats, f.Price, f.ID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGFlightRepository) ListDepartingWithin(ctx context.Context, window time.Duration) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights
		WHERE (departure_time BETWEEN now() AND now() + $1)
		   OR (status IN ('SCHEDULED', 'BOARDING', 'DELAYED') AND departure_time < now())
		   OR (status = 'DEPARTED' AND arrival_time <= now())
		ORDER BY departure_time`, window)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) ListActive(ctx context.Context, limit int) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights WHERE status IN ('SCHEDULED', 'BOARDING', 'DELAYED') ORDER BY RANDOM() LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) ListScheduledIDs(ctx context.Context, limit int) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM flights WHERE status='SCHEDULED' ORDER BY RANDOM() LIMIT $1`, limit)
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

func (r *PGFlightRepository) UpdateState(ctx context.Context, id int64, status domain.FlightStatus, occupiedSeats int) error {
	res, err := r.db.Exec(ctx, `UPDATE flights SET status=$1, occupied_seats=LEAST(capacity, $2), updated_at=now() WHERE id=$3`, status, occupiedSeats, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGFlightRepository) CountByStatus(ctx context.Context) (map[domain.FlightStatus]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM flights GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.FlightStatus]int)
	for rows.Next() {
		var status domain.FlightStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *PGFlightRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM flights`).Scan(&count)
	return count, err
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
