package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// GetUserByEmail returns a user with their role names
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.pool.QueryRow(ctx, `
		SELECT id, email, password, active FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT r.name FROM roles r
		JOIN roles_users ru ON ru.role_id = r.id
		WHERE ru.user_id = $1
	`, u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		u.Roles = append(u.Roles, role)
	}
	return &u, rows.Err()
}

// EnsureRole creates the role unless it already exists and returns its id
func (s *Store) EnsureRole(ctx context.Context, name, description string) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO roles (name, description) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
		RETURNING id
	`, name, description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to ensure role: %w", err)
	}
	return id, nil
}

// EnsureUser creates the user unless it already exists and returns its id.
// An existing user keeps its stored password hash.
func (s *Store) EnsureUser(ctx context.Context, email, passwordHash string) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO users (email, password, active) VALUES ($1, $2, TRUE)
		ON CONFLICT (email) DO UPDATE SET active = TRUE
		RETURNING id
	`, email, passwordHash).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to ensure user: %w", err)
	}
	return id, nil
}

// AddRoleToUser grants a role to a user; already granted is a no-op
func (s *Store) AddRoleToUser(ctx context.Context, userID, roleID int64) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO roles_users (user_id, role_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, roleID)
	if err != nil {
		return fmt.Errorf("failed to add role to user: %w", err)
	}
	return nil
}
