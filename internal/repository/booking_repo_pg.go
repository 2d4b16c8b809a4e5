package repository

import (
	"context"

	"airportops/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) error
	Cancel(ctx context.Context, id int64) (*domain.Booking, error)
	Exists(ctx context.Context, passengerID, flightID int64) (bool, error)
}

const bookingColumns = `id, passenger_id, flight_id, booking_reference, seat_number, travel_class, status, booking_date, check_in_time, baggage_count, special_requirements, price`

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func scanBooking(row interface{ Scan(...any) error }) (domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.PassengerID, &b.FlightID, &b.BookingReference, &b.SeatNumber,
		&b.TravelClass, &b.Status, &b.BookingDate, &b.CheckInTime, &b.BaggageCount,
		&b.SpecialRequirements, &b.Price)
	return b, err
}

func (r *PGBookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY booking_date DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, mapError(err)
	}
	return &b, nil
}

// Create inserts the booking and bumps flight occupancy and the passenger's
// flight counter in one transaction. Referential integrity rejects bookings
// against missing passengers or flights.
func (r *PGBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO bookings (passenger_id, flight_id, booking_reference, seat_number, travel_class, status, baggage_count, special_requirements, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, booking_date`,
		b.PassengerID, b.FlightID, b.BookingReference, b.SeatNumber, b.TravelClass,
		b.Status, b.BaggageCount, b.SpecialRequirements, b.Price).
		Scan(&b.ID, &b.BookingDate); err != nil {
		return mapError(err)
	}

	if _, err := tx.Exec(ctx, `UPDATE flights SET occupied_seats = LEAST(capacity, occupied_seats + 1), updated_at = now() WHERE id=$1`, b.FlightID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE passengers SET total_flights = total_flights + 1, updated_at = now() WHERE id=$1`, b.PassengerID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `UPDATE bookings SET status=$1 WHERE id=$2 RETURNING `+bookingColumns, domain.BookingStatusCancelled, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, mapError(err)
	}

	if _, err := tx.Exec(ctx, `UPDATE flights SET occupied_seats = GREATEST(0, occupied_seats - 1), updated_at = now() WHERE id=$1`, b.FlightID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) Exists(ctx context.Context, passengerID, flightID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE passenger_id=$1 AND flight_id=$2)`, passengerID, flightID).Scan(&exists)
	return exists, err
}

var _ BookingRepository = (*PGBookingRepository)(nil)
