package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations applies the idempotent schema. Safe to run from every
// process at startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		createFlightsTable,
		createPassengersTable,
		createServicesTable,
		createBookingsTable,
		createRecommendationsTable,
		createEventsTable,
		createIndexes,
	}

	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("database migrations applied", "count", len(migrations))
	return nil
}

const createFlightsTable = `
CREATE TABLE IF NOT EXISTS flights (
    id BIGSERIAL PRIMARY KEY,
    flight_number VARCHAR(10) UNIQUE NOT NULL,
    airline VARCHAR(100) NOT NULL,
    origin VARCHAR(100) NOT NULL,
    destination VARCHAR(100) NOT NULL,
    departure_time TIMESTAMP NOT NULL,
    arrival_time TIMESTAMP NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'SCHEDULED',
    aircraft_type VARCHAR(50) NOT NULL DEFAULT '',
    gate VARCHAR(10) NOT NULL DEFAULT '',
    terminal VARCHAR(5) NOT NULL DEFAULT '',
    capacity INTEGER NOT NULL DEFAULT 180,
    occupied_seats INTEGER NOT NULL DEFAULT 0,
    price NUMERIC(10,2) NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
    CHECK (occupied_seats >= 0 AND occupied_seats <= capacity)
);`

const createPassengersTable = `
CREATE TABLE IF NOT EXISTS passengers (
    id BIGSERIAL PRIMARY KEY,
    first_name VARCHAR(100) NOT NULL,
    last_name VARCHAR(100) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    phone VARCHAR(30) NOT NULL DEFAULT '',
    nationality VARCHAR(50) NOT NULL DEFAULT '',
    date_of_birth TIMESTAMP,
    frequent_flyer_id VARCHAR(20) NOT NULL DEFAULT '',
    preferred_destinations TEXT[] NOT NULL DEFAULT '{}',
    travel_class_preference VARCHAR(20) NOT NULL DEFAULT 'ECONOMY',
    total_flights INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

const createServicesTable = `
CREATE TABLE IF NOT EXISTS services (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    type VARCHAR(50) NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    location VARCHAR(100) NOT NULL DEFAULT '',
    terminal VARCHAR(5) NOT NULL DEFAULT '',
    status VARCHAR(20) NOT NULL DEFAULT 'ACTIVE',
    capacity INTEGER NOT NULL DEFAULT 100,
    current_usage INTEGER NOT NULL DEFAULT 0,
    opening_hours VARCHAR(50) NOT NULL DEFAULT '',
    rating NUMERIC(3,2) NOT NULL DEFAULT 0,
    price_range VARCHAR(20) NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    CHECK (current_usage >= 0 AND current_usage <= capacity)
);`

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id BIGSERIAL PRIMARY KEY,
    passenger_id BIGINT NOT NULL REFERENCES passengers(id) ON DELETE CASCADE,
    flight_id BIGINT NOT NULL REFERENCES flights(id) ON DELETE CASCADE,
    booking_reference VARCHAR(10) UNIQUE NOT NULL,
    seat_number VARCHAR(5) NOT NULL DEFAULT '',
    travel_class VARCHAR(20) NOT NULL DEFAULT 'ECONOMY',
    status VARCHAR(20) NOT NULL DEFAULT 'CONFIRMED',
    booking_date TIMESTAMP NOT NULL DEFAULT NOW(),
    check_in_time TIMESTAMP,
    baggage_count INTEGER NOT NULL DEFAULT 0,
    special_requirements TEXT NOT NULL DEFAULT '',
    price NUMERIC(10,2) NOT NULL DEFAULT 0
);`

const createRecommendationsTable = `
CREATE TABLE IF NOT EXISTS recommendations (
    id BIGSERIAL PRIMARY KEY,
    passenger_id BIGINT NOT NULL REFERENCES passengers(id) ON DELETE CASCADE,
    flight_id BIGINT NOT NULL REFERENCES flights(id) ON DELETE CASCADE,
    recommendation_type VARCHAR(50) NOT NULL DEFAULT '',
    score NUMERIC(5,2) NOT NULL DEFAULT 0,
    reason TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    is_sent BOOLEAN NOT NULL DEFAULT FALSE
);`

const createEventsTable = `
CREATE TABLE IF NOT EXISTS events (
    id BIGSERIAL PRIMARY KEY,
    event_type VARCHAR(50) NOT NULL,
    flight_id BIGINT REFERENCES flights(id) ON DELETE CASCADE,
    passenger_id BIGINT,
    description TEXT NOT NULL DEFAULT '',
    timestamp TIMESTAMP NOT NULL DEFAULT NOW(),
    metadata JSONB
);`

const createIndexes = `
CREATE INDEX IF NOT EXISTS idx_flights_status ON flights(status);
CREATE INDEX IF NOT EXISTS idx_flights_departure ON flights(departure_time);
CREATE INDEX IF NOT EXISTS idx_passengers_nationality ON passengers(nationality);
CREATE INDEX IF NOT EXISTS idx_services_type ON services(type);
CREATE INDEX IF NOT EXISTS idx_bookings_passenger ON bookings(passenger_id);
CREATE INDEX IF NOT EXISTS idx_bookings_flight ON bookings(flight_id);
CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp);
CREATE INDEX IF NOT EXISTS idx_events_type ON events(event_type);`
