package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tillik/airlinewebservice/internal/database"
	"go.uber.org/zap"
)

func (s *bookingService) CreateFlight(ctx context.Context, req CreateFlightRequest) (*database.Flight, error) {
	if err := validateStation("start", req.Start); err != nil {
		return nil, err
	}
	if err := validateStation("end", req.End); err != nil {
		return nil, err
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if req.Aircraft == "" {
		return nil, fmt.Errorf("%w: aircraft is required", ErrValidation)
	}

	aircraft, err := s.store.GetAircraft(ctx, req.Aircraft)
	if err != nil {
		return nil, err
	}

	// Flight row and seat inventory commit in one transaction; a generated
	// number colliding with an existing flight is retried with a fresh one.
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		number, err := generateNumber(flightNumberLength)
		if err != nil {
			return nil, err
		}

		flight := &database.Flight{
			Number:    number,
			Start:     req.Start,
			End:       req.End,
			Departure: req.Date.UTC(),
			Aircraft:  aircraft.Aircraft,
			Status:    database.FlightStatusValid,
		}
		seats := seatPlan(number, aircraft.Seatcount)

		err = s.store.CreateFlight(ctx, flight, seats)
		if errors.Is(err, database.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}

		s.metrics.FlightsCreated.Inc()
		s.log.Info("flight created",
			zap.String("flightnumber", flight.Number),
			zap.String("start", flight.Start),
			zap.String("end", flight.End),
			zap.Time("departure", flight.Departure),
			zap.String("aircraft", flight.Aircraft),
			zap.Int("seats", len(seats)))
		return flight, nil
	}
	return nil, fmt.Errorf("failed to generate an unused flightnumber after %d attempts", maxNumberAttempts)
}

func (s *bookingService) GetFlight(ctx context.Context, number string) (*database.Flight, error) {
	if err := validateFlightnumber(number); err != nil {
		return nil, err
	}
	return s.store.GetFlight(ctx, number)
}

func (s *bookingService) ListFlights(ctx context.Context) ([]database.Flight, error) {
	return s.store.ListFlights(ctx)
}

// CancelFlight cascades the cancellation to every ticket and seat of the
// flight and deletes the flight. Returns how many tickets were cancelled.
func (s *bookingService) CancelFlight(ctx context.Context, number string) (int, error) {
	if err := validateFlightnumber(number); err != nil {
		return 0, err
	}

	ticketNumbers, err := s.store.CancelFlight(ctx, number)
	if err != nil {
		return 0, err
	}

	s.metrics.FlightCancellations.Inc()
	s.hub.BroadcastFlightCancelled(number)
	s.log.Info("flight cancelled",
		zap.String("flightnumber", number),
		zap.Int("tickets_cancelled", len(ticketNumbers)),
		zap.Int("watchers", s.hub.ClientCount(number)))
	return len(ticketNumbers), nil
}
