package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied at startup. Partial unique indexes back the two
// check-then-act invariants: one active ticket per (passport, flight) and
// one assigned seat per ticket per flight.
const schema = `
CREATE TABLE IF NOT EXISTS aircrafts (
	aircraft  VARCHAR(15) PRIMARY KEY,
	seatcount INTEGER NOT NULL CHECK (seatcount > 0)
);

CREATE TABLE IF NOT EXISTS flights (
	number    VARCHAR(10) PRIMARY KEY,
	start     VARCHAR(3) NOT NULL,
	"end"     VARCHAR(3) NOT NULL,
	departure TIMESTAMPTZ NOT NULL,
	aircraft  VARCHAR(15) NOT NULL REFERENCES aircrafts (aircraft),
	status    VARCHAR(10) NOT NULL DEFAULT 'valid'
);

CREATE UNIQUE INDEX IF NOT EXISTS flights_route_departure_unique
	ON flights (start, "end", departure)
	WHERE status = 'valid';

CREATE TABLE IF NOT EXISTS tickets (
	number         VARCHAR(10) PRIMARY KEY,
	flightnumber   VARCHAR(10) NOT NULL,
	passengername  VARCHAR(25) NOT NULL,
	passportnumber VARCHAR(10) NOT NULL,
	status         VARCHAR(10) NOT NULL DEFAULT 'valid'
);

CREATE UNIQUE INDEX IF NOT EXISTS tickets_passport_flight_active_unique
	ON tickets (passportnumber, flightnumber)
	WHERE status = 'valid';

CREATE TABLE IF NOT EXISTS seats (
	flightnumber VARCHAR(10) NOT NULL REFERENCES flights (number) ON DELETE CASCADE,
	seatlabel    CHAR(1) NOT NULL CHECK (seatlabel BETWEEN 'A' AND 'G'),
	seatrow      INTEGER NOT NULL CHECK (seatrow >= 1),
	ticketnumber VARCHAR(10) REFERENCES tickets (number),
	checkedin    BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (flightnumber, seatlabel, seatrow)
);

CREATE UNIQUE INDEX IF NOT EXISTS seats_ticket_unique
	ON seats (flightnumber, ticketnumber)
	WHERE ticketnumber IS NOT NULL;

CREATE TABLE IF NOT EXISTS notifications (
	id           BIGSERIAL PRIMARY KEY,
	ticketnumber VARCHAR(10) NOT NULL,
	title        VARCHAR(80) NOT NULL,
	message      VARCHAR(255) NOT NULL,
	"timestamp"  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS notifications_ticket_ts
	ON notifications (ticketnumber, "timestamp");

CREATE TABLE IF NOT EXISTS users (
	id       BIGSERIAL PRIMARY KEY,
	email    VARCHAR(255) UNIQUE NOT NULL,
	password VARCHAR(255) NOT NULL,
	active   BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS roles (
	id          BIGSERIAL PRIMARY KEY,
	name        VARCHAR(80) UNIQUE NOT NULL,
	description VARCHAR(255) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS roles_users (
	user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	role_id BIGINT NOT NULL REFERENCES roles (id) ON DELETE CASCADE,
	PRIMARY KEY (user_id, role_id)
);
`

// Connect opens a pgx connection pool and verifies it with a ping
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// Migrate creates any tables and indexes that don't exist yet
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
