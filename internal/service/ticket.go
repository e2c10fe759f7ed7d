package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tillik/airlinewebservice/internal/database"
	"go.uber.org/zap"
)

func (s *bookingService) BookTicket(ctx context.Context, req BookTicketRequest) (*database.Ticket, error) {
	if req.Passengername == "" {
		return nil, fmt.Errorf("%w: passengername is required", ErrValidation)
	}
	if err := validateFlightnumber(req.Flightnumber); err != nil {
		return nil, err
	}
	if err := validatePassportnumber(req.Passportnumber); err != nil {
		return nil, err
	}

	// The store runs the duplicate and capacity checks together with the
	// insert in one transaction; here we only retry number collisions.
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number, err := generateNumber(ticketNumberLength)
		if err != nil {
			return nil, err
		}

		ticket := &database.Ticket{
			Number:         number,
			Flightnumber:   req.Flightnumber,
			Passengername:  req.Passengername,
			Passportnumber: req.Passportnumber,
			Status:         database.TicketStatusValid,
		}

		err = s.store.BookTicket(ctx, ticket)
		if errors.Is(err, database.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}

		s.metrics.Bookings.Inc()
		s.hub.BroadcastSeatsUpdated(req.Flightnumber)
		s.log.Info("ticket booked",
			zap.String("ticketnumber", ticket.Number),
			zap.String("flightnumber", ticket.Flightnumber),
			zap.String("passenger", ticket.Passengername))
		return ticket, nil
	}
	return nil, fmt.Errorf("failed to generate an unused ticketnumber after %d attempts", maxNumberAttempts)
}

func (s *bookingService) GetTicket(ctx context.Context, number string) (*database.Ticket, error) {
	if err := validateTicketnumber(number); err != nil {
		return nil, err
	}
	return s.store.GetTicket(ctx, number)
}

func (s *bookingService) ListTickets(ctx context.Context) ([]database.Ticket, error) {
	return s.store.ListTickets(ctx)
}

// CancelTicket hard-deletes a ticket and releases its seat. Cancelling an
// unknown number reports ErrTicketNotFound rather than silent success.
func (s *bookingService) CancelTicket(ctx context.Context, number string) error {
	if err := validateTicketnumber(number); err != nil {
		return err
	}

	ticket, err := s.store.GetTicket(ctx, number)
	if err != nil {
		return err
	}

	if err := s.store.DeleteTicket(ctx, number); err != nil {
		return err
	}

	s.metrics.TicketCancellations.Inc()
	s.hub.BroadcastSeatsUpdated(ticket.Flightnumber)
	s.log.Info("ticket cancelled",
		zap.String("ticketnumber", number),
		zap.String("flightnumber", ticket.Flightnumber))
	return nil
}

// CheckIn marks a ticket's seat as checked in, auto-assigning the first free
// seat when the ticket holds none. Both the ticket and the flight must exist
// and be status valid.
func (s *bookingService) CheckIn(ctx context.Context, ticketnumber, flightnumber string) (*database.Seat, error) {
	if err := validateTicketnumber(ticketnumber); err != nil {
		return nil, err
	}
	if err := validateFlightnumber(flightnumber); err != nil {
		return nil, err
	}

	ticket, err := s.store.GetTicket(ctx, ticketnumber)
	if err != nil {
		return nil, err
	}
	flight, err := s.store.GetFlight(ctx, flightnumber)
	if err != nil {
		return nil, err
	}
	if ticket.Status != database.TicketStatusValid ||
		flight.Status != database.FlightStatusValid ||
		ticket.Flightnumber != flight.Number {
		return nil, ErrInvalidTicketOrFlight
	}

	seat, err := s.store.CheckIn(ctx, ticketnumber, flightnumber)
	if err != nil {
		return nil, err
	}

	s.metrics.Checkins.Inc()
	s.hub.BroadcastSeatAssigned(flightnumber, seat.Seatcode())
	s.log.Info("ticket checked in",
		zap.String("ticketnumber", ticketnumber),
		zap.String("flightnumber", flightnumber),
		zap.String("seat", fmt.Sprintf("%s%d", seat.Seatlabel, seat.Seatrow)))
	return seat, nil
}
