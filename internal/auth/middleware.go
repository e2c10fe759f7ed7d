package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

const sessionCookie = "session"

// Middleware resolves session tokens to principals and guards routes by role
type Middleware struct {
	sessions *Sessions
}

// NewMiddleware creates the auth middleware around a session store
func NewMiddleware(sessions *Sessions) *Middleware {
	return &Middleware{sessions: sessions}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// token extracts the session token from the Authorization header or the
// session cookie
func (m *Middleware) token(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if rest, found := strings.CutPrefix(header, "Bearer "); found {
			return rest
		}
	}
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// Authenticate requires a valid session and attaches the principal to the
// request context
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.token(r)
		if token == "" {
			writeAuthError(w, http.StatusUnauthorized, "login required")
			return
		}
		principal, ok := m.sessions.Get(token)
		if !ok {
			writeAuthError(w, http.StatusUnauthorized, "session expired or unknown")
			return
		}
		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), principal)))
	})
}

// RequireRoles wraps a handler so only principals holding at least one of
// the given roles may pass. Must run inside Authenticate.
func (m *Middleware) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := FromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "login required")
				return
			}
			if !principal.HasAnyRole(roles...) {
				writeAuthError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
