package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAircraftNotFound = errors.New("aircraft not found")
	ErrFlightNotFound   = errors.New("flight not found")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrSeatNotFound     = errors.New("seat not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrAlreadyExists    = errors.New("already exists")
	ErrFlightExists     = errors.New("flight already scheduled for this route and departure")
	ErrAircraftInUse    = errors.New("aircraft is referenced by flights")
	ErrDuplicateBooking = errors.New("passport already holds a ticket for this flight")
	ErrCapacityExceeded = errors.New("no more seats left for this flight")
	ErrSeatTaken        = errors.New("seat already assigned to another ticket")
	ErrTicketHasSeat    = errors.New("ticket already holds a seat on this flight")
	ErrNoSeatsAvailable = errors.New("no seats available")
	ErrConstraint       = errors.New("constraint violation")
)

// Store handles all database operations. Cross-entity workflows (booking,
// check-in, flight cancellation) run inside a single transaction so partial
// writes are never observable.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new store
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// pgErrCode returns the SQLSTATE of a pg error, or "" for other errors
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// pgConstraint returns the violated constraint name, or "" for other errors
func pgConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// --- Aircraft operations ---

// CreateAircraft registers a new aircraft type
func (s *Store) CreateAircraft(ctx context.Context, a *Aircraft) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO aircrafts (aircraft, seatcount) VALUES ($1, $2)
	`, a.Aircraft, a.Seatcount)
	if err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create aircraft: %w", err)
	}
	return nil
}

// GetAircraft returns an aircraft by its type name
func (s *Store) GetAircraft(ctx context.Context, name string) (*Aircraft, error) {
	var a Aircraft
	err := s.pool.QueryRow(ctx, `
		SELECT aircraft, seatcount FROM aircrafts WHERE aircraft = $1
	`, name).Scan(&a.Aircraft, &a.Seatcount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAircraftNotFound
		}
		return nil, fmt.Errorf("failed to get aircraft: %w", err)
	}
	return &a, nil
}

// ListAircraft returns all registered aircraft types
func (s *Store) ListAircraft(ctx context.Context) ([]Aircraft, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT aircraft, seatcount FROM aircrafts ORDER BY aircraft
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query aircrafts: %w", err)
	}
	defer rows.Close()

	var aircrafts []Aircraft
	for rows.Next() {
		var a Aircraft
		if err := rows.Scan(&a.Aircraft, &a.Seatcount); err != nil {
			return nil, fmt.Errorf("failed to scan aircraft: %w", err)
		}
		aircrafts = append(aircrafts, a)
	}
	return aircrafts, rows.Err()
}

// DeleteAircraft removes an aircraft type. Deletion is restricted while any
// flight still references the type.
func (s *Store) DeleteAircraft(ctx context.Context, name string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var inUse bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM flights WHERE aircraft = $1)
	`, name).Scan(&inUse)
	if err != nil {
		return fmt.Errorf("failed to check aircraft usage: %w", err)
	}
	if inUse {
		return ErrAircraftInUse
	}

	result, err := tx.Exec(ctx, `DELETE FROM aircrafts WHERE aircraft = $1`, name)
	if err != nil {
		// A flight created after the EXISTS check still holds the FK
		if pgErrCode(err) == codeForeignKeyViolation {
			return ErrAircraftInUse
		}
		return fmt.Errorf("failed to delete aircraft: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrAircraftNotFound
	}

	return tx.Commit(ctx)
}

// --- Flight operations ---

// CreateFlight persists a flight together with its pre-generated seat
// inventory in one transaction. Either both commit or neither does.
func (s *Store) CreateFlight(ctx context.Context, f *Flight, seats []Seat) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO flights (number, start, "end", departure, aircraft, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, f.Number, f.Start, f.End, f.Departure, f.Aircraft, f.Status)
	if err != nil {
		switch {
		case pgConstraint(err) == "flights_route_departure_unique":
			return ErrFlightExists
		case pgErrCode(err) == codeUniqueViolation:
			return ErrAlreadyExists
		case pgErrCode(err) == codeForeignKeyViolation:
			return ErrConstraint
		}
		return fmt.Errorf("failed to create flight: %w", err)
	}

	batch := &pgx.Batch{}
	for _, seat := range seats {
		batch.Queue(`
			INSERT INTO seats (flightnumber, seatlabel, seatrow, ticketnumber, checkedin)
			VALUES ($1, $2, $3, NULL, FALSE)
		`, f.Number, seat.Seatlabel, seat.Seatrow)
	}
	results := tx.SendBatch(ctx, batch)
	for range seats {
		if _, err := results.Exec(); err != nil {
			results.Close()
			if pgErrCode(err) == codeForeignKeyViolation {
				return ErrConstraint
			}
			return fmt.Errorf("failed to create seat: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close seat batch: %w", err)
	}

	return tx.Commit(ctx)
}

// GetFlight returns a flight by flightnumber
func (s *Store) GetFlight(ctx context.Context, number string) (*Flight, error) {
	var f Flight
	err := s.pool.QueryRow(ctx, `
		SELECT number, start, "end", departure, aircraft, status
		FROM flights WHERE number = $1
	`, number).Scan(&f.Number, &f.Start, &f.End, &f.Departure, &f.Aircraft, &f.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFlightNotFound
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	return &f, nil
}

// ListFlights returns all flights ordered by departure
func (s *Store) ListFlights(ctx context.Context) ([]Flight, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT number, start, "end", departure, aircraft, status
		FROM flights ORDER BY departure
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	var flights []Flight
	for rows.Next() {
		var f Flight
		err := rows.Scan(&f.Number, &f.Start, &f.End, &f.Departure, &f.Aircraft, &f.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

// CancelFlight cancels a flight: every ticket on it is soft-cancelled with a
// notification, the seat inventory is released and deleted, and the flight
// row is removed. All of it is one transaction. Returns the numbers of the
// tickets that were cancelled.
func (s *Store) CancelFlight(ctx context.Context, number string) ([]string, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the flight row so concurrent bookings serialize against the cancel
	var locked string
	err = tx.QueryRow(ctx, `
		SELECT number FROM flights WHERE number = $1 FOR UPDATE
	`, number).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFlightNotFound
		}
		return nil, fmt.Errorf("failed to lock flight: %w", err)
	}

	rows, err := tx.Query(ctx, `
		SELECT number FROM tickets WHERE flightnumber = $1 AND status = 'valid'
	`, number)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	var ticketNumbers []string
	for rows.Next() {
		var tn string
		if err := rows.Scan(&tn); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan ticket number: %w", err)
		}
		ticketNumbers = append(ticketNumbers, tn)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tickets: %w", err)
	}

	// Soft-cancel tickets but keep their flightnumber for the audit trail
	_, err = tx.Exec(ctx, `
		UPDATE tickets SET status = 'cancelled' WHERE flightnumber = $1
	`, number)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel tickets: %w", err)
	}

	for _, tn := range ticketNumbers {
		_, err = tx.Exec(ctx, `
			INSERT INTO notifications (ticketnumber, title, message)
			VALUES ($1, $2, $3)
		`, tn, "Flight canceled", fmt.Sprintf("The flight %s was canceled", number))
		if err != nil {
			return nil, fmt.Errorf("failed to create notification: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE seats SET ticketnumber = NULL, checkedin = FALSE WHERE flightnumber = $1
	`, number)
	if err != nil {
		return nil, fmt.Errorf("failed to release seats: %w", err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM seats WHERE flightnumber = $1`, number)
	if err != nil {
		return nil, fmt.Errorf("failed to delete seats: %w", err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM flights WHERE number = $1`, number)
	if err != nil {
		return nil, fmt.Errorf("failed to delete flight: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit flight cancellation: %w", err)
	}
	return ticketNumbers, nil
}
