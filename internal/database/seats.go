package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ListSeats returns a flight's seats in enumeration order (A1..A19, B1..)
func (s *Store) ListSeats(ctx context.Context, flightnumber string) ([]Seat, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT flightnumber, seatlabel, seatrow, ticketnumber, checkedin
		FROM seats
		WHERE flightnumber = $1
		ORDER BY seatlabel, seatrow
	`, flightnumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query seats: %w", err)
	}
	defer rows.Close()

	var seats []Seat
	for rows.Next() {
		var seat Seat
		err := rows.Scan(&seat.Flightnumber, &seat.Seatlabel, &seat.Seatrow,
			&seat.Ticketnumber, &seat.Checkedin)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seat: %w", err)
		}
		seats = append(seats, seat)
	}
	return seats, rows.Err()
}

// AssignSeat assigns a specific seat to a ticket. The claim is a conditional
// update checked via RowsAffected, so of two concurrent claims on the same
// seat exactly one succeeds and the other observes ErrSeatTaken. Assigning a
// seat the ticket already holds is a no-op.
func (s *Store) AssignSeat(ctx context.Context, flightnumber, ticketnumber, label string, row int) (*Seat, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// A ticket can hold at most one seat per flight
	var heldLabel string
	var heldRow int
	err = tx.QueryRow(ctx, `
		SELECT seatlabel, seatrow FROM seats
		WHERE flightnumber = $1 AND ticketnumber = $2
		FOR UPDATE
	`, flightnumber, ticketnumber).Scan(&heldLabel, &heldRow)
	switch {
	case err == nil:
		if heldLabel != label || heldRow != row {
			return nil, ErrTicketHasSeat
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit seat assignment: %w", err)
		}
		return &Seat{
			Flightnumber: flightnumber,
			Seatlabel:    label,
			Seatrow:      row,
			Ticketnumber: &ticketnumber,
		}, nil
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("failed to look up held seat: %w", err)
	}

	result, err := tx.Exec(ctx, `
		UPDATE seats SET ticketnumber = $4
		WHERE flightnumber = $1 AND seatlabel = $2 AND seatrow = $3
		  AND ticketnumber IS NULL
	`, flightnumber, label, row, ticketnumber)
	if err != nil {
		return nil, fmt.Errorf("failed to assign seat: %w", err)
	}
	if result.RowsAffected() == 0 {
		var exists bool
		err = tx.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM seats
				WHERE flightnumber = $1 AND seatlabel = $2 AND seatrow = $3
			)
		`, flightnumber, label, row).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check seat: %w", err)
		}
		if !exists {
			return nil, ErrSeatNotFound
		}
		return nil, ErrSeatTaken
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO notifications (ticketnumber, title, message)
		VALUES ($1, $2, $3)
	`, ticketnumber, "Seat booked",
		fmt.Sprintf("Seat %s%d is booked for your ticket %s.", label, row, ticketnumber))
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit seat assignment: %w", err)
	}
	return &Seat{
		Flightnumber: flightnumber,
		Seatlabel:    label,
		Seatrow:      row,
		Ticketnumber: &ticketnumber,
	}, nil
}
