package service

import (
	"context"

	"github.com/tillik/airlinewebservice/internal/database"
	"go.uber.org/zap"
)

func (s *bookingService) ListSeats(ctx context.Context, flightnumber string) ([]database.Seat, error) {
	if err := validateFlightnumber(flightnumber); err != nil {
		return nil, err
	}
	if _, err := s.store.GetFlight(ctx, flightnumber); err != nil {
		return nil, err
	}
	return s.store.ListSeats(ctx, flightnumber)
}

// ReserveSeat assigns a specific seat to a ticket ahead of check-in
func (s *bookingService) ReserveSeat(ctx context.Context, req ReserveSeatRequest) (*database.Seat, error) {
	if err := validateTicketnumber(req.Ticketnumber); err != nil {
		return nil, err
	}
	if err := validateFlightnumber(req.Flightnumber); err != nil {
		return nil, err
	}
	if err := validateSeatPosition(req.Seatlabel, req.Seatrow); err != nil {
		return nil, err
	}

	ticket, err := s.store.GetTicket(ctx, req.Ticketnumber)
	if err != nil {
		return nil, err
	}
	if ticket.Status != database.TicketStatusValid || ticket.Flightnumber != req.Flightnumber {
		return nil, ErrInvalidTicketOrFlight
	}

	seat, err := s.store.AssignSeat(ctx, req.Flightnumber, req.Ticketnumber, req.Seatlabel, req.Seatrow)
	if err != nil {
		return nil, err
	}

	s.metrics.SeatAssignments.Inc()
	s.hub.BroadcastSeatAssigned(req.Flightnumber, seat.Seatcode())
	s.log.Info("seat reserved",
		zap.String("flightnumber", req.Flightnumber),
		zap.String("ticketnumber", req.Ticketnumber),
		zap.String("seatcode", seat.Seatcode()))
	return seat, nil
}
