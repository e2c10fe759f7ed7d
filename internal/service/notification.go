package service

import (
	"context"

	"github.com/tillik/airlinewebservice/internal/database"
)

func (s *bookingService) ListNotifications(ctx context.Context, ticketnumber string) ([]database.Notification, error) {
	if err := validateTicketnumber(ticketnumber); err != nil {
		return nil, err
	}
	notifications, err := s.store.ListNotifications(ctx, ticketnumber)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []database.Notification{}
	}
	return notifications, nil
}
