package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SeedStore is the subset of the entity store needed for bootstrapping
// roles and accounts
type SeedStore interface {
	EnsureRole(ctx context.Context, name, description string) (int64, error)
	EnsureUser(ctx context.Context, email, passwordHash string) (int64, error)
	AddRoleToUser(ctx context.Context, userID, roleID int64) error
}

// Account is a user to create at startup unless it already exists
type Account struct {
	Email    string
	Password string
	Role     string
}

// Seed makes sure the admin and customer roles exist and creates the given
// accounts with their role
func Seed(ctx context.Context, store SeedStore, log *zap.Logger, accounts []Account) error {
	roleIDs := make(map[string]int64)
	for role, description := range map[string]string{
		RoleAdmin:    "Administrator",
		RoleCustomer: "Customer",
	} {
		id, err := store.EnsureRole(ctx, role, description)
		if err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role, err)
		}
		roleIDs[role] = id
	}

	for _, account := range accounts {
		roleID, ok := roleIDs[account.Role]
		if !ok {
			return fmt.Errorf("unknown role %q for account %s", account.Role, account.Email)
		}
		hash, err := HashPassword(account.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", account.Email, err)
		}
		userID, err := store.EnsureUser(ctx, account.Email, hash)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", account.Email, err)
		}
		if err := store.AddRoleToUser(ctx, userID, roleID); err != nil {
			return fmt.Errorf("failed to grant role to %s: %w", account.Email, err)
		}
		log.Info("seeded account", zap.String("email", account.Email), zap.String("role", account.Role))
	}
	return nil
}
