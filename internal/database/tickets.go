package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// BookTicket runs the whole booking workflow in one transaction: the flight
// row is locked so the capacity check and the insert form one atomic unit,
// the anti-duplicate invariant is checked, the ticket is inserted and the
// booking notification recorded. Capacity counts active tickets only.
func (s *Store) BookTicket(ctx context.Context, t *Ticket) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var aircraft string
	err = tx.QueryRow(ctx, `
		SELECT aircraft FROM flights WHERE number = $1 FOR UPDATE
	`, t.Flightnumber).Scan(&aircraft)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrFlightNotFound
		}
		return fmt.Errorf("failed to lock flight: %w", err)
	}

	var seatcount int
	err = tx.QueryRow(ctx, `
		SELECT seatcount FROM aircrafts WHERE aircraft = $1
	`, aircraft).Scan(&seatcount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAircraftNotFound
		}
		return fmt.Errorf("failed to get aircraft: %w", err)
	}

	var duplicate bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM tickets
			WHERE passportnumber = $1 AND flightnumber = $2 AND status = 'valid'
		)
	`, t.Passportnumber, t.Flightnumber).Scan(&duplicate)
	if err != nil {
		return fmt.Errorf("failed to check duplicate booking: %w", err)
	}
	if duplicate {
		return ErrDuplicateBooking
	}

	var issued int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM tickets WHERE flightnumber = $1 AND status = 'valid'
	`, t.Flightnumber).Scan(&issued)
	if err != nil {
		return fmt.Errorf("failed to count tickets: %w", err)
	}
	if issued >= seatcount {
		return ErrCapacityExceeded
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO tickets (number, flightnumber, passengername, passportnumber, status)
		VALUES ($1, $2, $3, $4, $5)
	`, t.Number, t.Flightnumber, t.Passengername, t.Passportnumber, t.Status)
	if err != nil {
		switch pgConstraint(err) {
		case "tickets_passport_flight_active_unique":
			return ErrDuplicateBooking
		case "tickets_pkey":
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO notifications (ticketnumber, title, message)
		VALUES ($1, $2, $3)
	`, t.Number, "Booking Successful",
		fmt.Sprintf("Your ticket booking %s is successful.", t.Number))
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return tx.Commit(ctx)
}

// GetTicket returns a ticket by its number
func (s *Store) GetTicket(ctx context.Context, number string) (*Ticket, error) {
	var t Ticket
	err := s.pool.QueryRow(ctx, `
		SELECT number, flightnumber, passengername, passportnumber, status
		FROM tickets WHERE number = $1
	`, number).Scan(&t.Number, &t.Flightnumber, &t.Passengername, &t.Passportnumber, &t.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return &t, nil
}

// ListTickets returns all tickets
func (s *Store) ListTickets(ctx context.Context) ([]Ticket, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT number, flightnumber, passengername, passportnumber, status
		FROM tickets ORDER BY number
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	defer rows.Close()

	var tickets []Ticket
	for rows.Next() {
		var t Ticket
		err := rows.Scan(&t.Number, &t.Flightnumber, &t.Passengername, &t.Passportnumber, &t.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// DeleteTicket removes a ticket row outright, releasing any seat it holds in
// the same transaction. Explicit cancellation is a hard delete, distinct
// from the soft-cancel a flight cancellation applies.
func (s *Store) DeleteTicket(ctx context.Context, number string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE seats SET ticketnumber = NULL, checkedin = FALSE WHERE ticketnumber = $1
	`, number)
	if err != nil {
		return fmt.Errorf("failed to release seat: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM tickets WHERE number = $1`, number)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrTicketNotFound
	}

	return tx.Commit(ctx)
}

// CheckIn marks the ticket's pre-assigned seat as checked in, or claims the
// first unassigned seat in enumeration order when none is held. The claim
// uses FOR UPDATE SKIP LOCKED so concurrent check-ins on the same flight
// never pick the same seat.
func (s *Store) CheckIn(ctx context.Context, ticketnumber, flightnumber string) (*Seat, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	seat := Seat{Flightnumber: flightnumber, Ticketnumber: &ticketnumber, Checkedin: true}

	err = tx.QueryRow(ctx, `
		SELECT seatlabel, seatrow FROM seats
		WHERE flightnumber = $1 AND ticketnumber = $2
		FOR UPDATE
	`, flightnumber, ticketnumber).Scan(&seat.Seatlabel, &seat.Seatrow)
	switch {
	case err == nil:
		_, err = tx.Exec(ctx, `
			UPDATE seats SET checkedin = TRUE
			WHERE flightnumber = $1 AND seatlabel = $2 AND seatrow = $3
		`, flightnumber, seat.Seatlabel, seat.Seatrow)
		if err != nil {
			return nil, fmt.Errorf("failed to mark seat checked in: %w", err)
		}
	case errors.Is(err, pgx.ErrNoRows):
		err = tx.QueryRow(ctx, `
			UPDATE seats SET ticketnumber = $2, checkedin = TRUE
			WHERE (flightnumber, seatlabel, seatrow) IN (
				SELECT flightnumber, seatlabel, seatrow FROM seats
				WHERE flightnumber = $1 AND ticketnumber IS NULL
				ORDER BY seatlabel, seatrow
				LIMIT 1
				FOR UPDATE SKIP LOCKED
			)
			RETURNING seatlabel, seatrow
		`, flightnumber, ticketnumber).Scan(&seat.Seatlabel, &seat.Seatrow)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrNoSeatsAvailable
			}
			// Two concurrent check-ins for the same ticket both reach this
			// branch; the seats_ticket_unique index rejects the loser.
			if pgConstraint(err) == "seats_ticket_unique" {
				return nil, ErrTicketHasSeat
			}
			return nil, fmt.Errorf("failed to auto-assign seat: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up assigned seat: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO notifications (ticketnumber, title, message)
		VALUES ($1, $2, $3)
	`, ticketnumber, "Checkin Successful",
		fmt.Sprintf("Seat %s%d is booked for your ticket %s.", seat.Seatlabel, seat.Seatrow, ticketnumber))
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit check-in: %w", err)
	}
	return &seat, nil
}
