package database

import (
	"context"
	"fmt"
)

// ListNotifications returns a ticket's notifications ordered by timestamp
// ascending. No notifications is an empty result, not an error.
func (s *Store) ListNotifications(ctx context.Context, ticketnumber string) ([]Notification, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, ticketnumber, title, message, "timestamp"
		FROM notifications
		WHERE ticketnumber = $1
		ORDER BY "timestamp", id
	`, ticketnumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []Notification
	for rows.Next() {
		var n Notification
		err := rows.Scan(&n.ID, &n.Ticketnumber, &n.Title, &n.Message, &n.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
