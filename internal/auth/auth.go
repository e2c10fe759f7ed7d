package auth

import "context"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Principal is an authenticated user as seen by the request pipeline
type Principal struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// HasRole reports whether the principal carries the given role
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the principal carries at least one of the roles
func (p Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}

type contextKey struct{}

// NewContext stores the principal on the context
func NewContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the principal the middleware attached, if any
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}
