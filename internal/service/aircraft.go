package service

import (
	"context"
	"fmt"

	"github.com/tillik/airlinewebservice/internal/database"
	"go.uber.org/zap"
)

func (s *bookingService) CreateAircraft(ctx context.Context, a database.Aircraft) (*database.Aircraft, error) {
	if a.Aircraft == "" {
		return nil, fmt.Errorf("%w: aircraft type is required", ErrValidation)
	}
	if a.Seatcount <= 0 {
		return nil, fmt.Errorf("%w: seatcount must be a positive integer", ErrValidation)
	}

	if err := s.store.CreateAircraft(ctx, &a); err != nil {
		return nil, err
	}

	s.log.Info("aircraft registered",
		zap.String("aircraft", a.Aircraft),
		zap.Int("seatcount", a.Seatcount))
	return &a, nil
}

func (s *bookingService) GetAircraft(ctx context.Context, name string) (*database.Aircraft, error) {
	return s.store.GetAircraft(ctx, name)
}

func (s *bookingService) ListAircraft(ctx context.Context) ([]database.Aircraft, error) {
	return s.store.ListAircraft(ctx)
}

func (s *bookingService) DeleteAircraft(ctx context.Context, name string) error {
	if err := s.store.DeleteAircraft(ctx, name); err != nil {
		return err
	}
	s.log.Info("aircraft deleted", zap.String("aircraft", name))
	return nil
}
