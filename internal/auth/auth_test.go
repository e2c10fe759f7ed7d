package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillik/airlinewebservice/internal/database"
	"go.uber.org/zap"
)

func TestPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, VerifyPassword("not a hash", "s3cret"))
}

func TestSessions(t *testing.T) {
	sessions := NewSessions(time.Hour)

	token := sessions.Create(Principal{Email: "user@airws.com", Roles: []string{RoleCustomer}})
	require.NotEmpty(t, token)

	principal, ok := sessions.Get(token)
	require.True(t, ok)
	assert.Equal(t, "user@airws.com", principal.Email)
	assert.True(t, principal.HasRole(RoleCustomer))
	assert.False(t, principal.HasRole(RoleAdmin))

	sessions.Delete(token)
	_, ok = sessions.Get(token)
	assert.False(t, ok)

	_, ok = sessions.Get("no-such-token")
	assert.False(t, ok)
}

func TestSessions_Expiry(t *testing.T) {
	sessions := NewSessions(-time.Second)

	token := sessions.Create(Principal{Email: "user@airws.com"})
	_, ok := sessions.Get(token)
	assert.False(t, ok)
}

func TestPrincipal_HasAnyRole(t *testing.T) {
	p := Principal{Email: "admin@airws.com", Roles: []string{RoleAdmin}}

	assert.True(t, p.HasAnyRole(RoleAdmin, RoleCustomer))
	assert.True(t, p.HasAnyRole(RoleAdmin))
	assert.False(t, p.HasAnyRole(RoleCustomer))
	assert.False(t, p.HasAnyRole())
}

func okHandler() (http.Handler, *bool) {
	called := new(bool)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}), called
}

func TestMiddleware_Authenticate(t *testing.T) {
	sessions := NewSessions(time.Hour)
	mw := NewMiddleware(sessions)
	token := sessions.Create(Principal{Email: "user@airws.com", Roles: []string{RoleCustomer}})

	tests := []struct {
		name           string
		setup          func(r *http.Request)
		expectedStatus int
	}{
		{
			name:           "no token",
			setup:          func(r *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown token",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer bogus")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "bearer token",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+token)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "session cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "session", Value: token})
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, called := okHandler()
			req := httptest.NewRequest(http.MethodGet, "/v1/tickets", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			mw.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, *called)
		})
	}
}

func TestMiddleware_RequireRoles(t *testing.T) {
	sessions := NewSessions(time.Hour)
	mw := NewMiddleware(sessions)

	adminToken := sessions.Create(Principal{Email: "admin@airws.com", Roles: []string{RoleAdmin}})
	customerToken := sessions.Create(Principal{Email: "user@airws.com", Roles: []string{RoleCustomer}})

	tests := []struct {
		name           string
		token          string
		roles          []string
		expectedStatus int
	}{
		{"admin on admin route", adminToken, []string{RoleAdmin}, http.StatusOK},
		{"customer on admin route", customerToken, []string{RoleAdmin}, http.StatusForbidden},
		{"customer on shared route", customerToken, []string{RoleAdmin, RoleCustomer}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := okHandler()
			guarded := mw.Authenticate(mw.RequireRoles(tt.roles...)(next))

			req := httptest.NewRequest(http.MethodPost, "/v1/flights", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()

			guarded.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

type stubUserStore struct {
	users map[string]database.User
}

func (s *stubUserStore) GetUserByEmail(_ context.Context, email string) (*database.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, database.ErrUserNotFound
	}
	return &user, nil
}

func TestHandler_Login(t *testing.T) {
	hash, err := HashPassword("password")
	require.NoError(t, err)

	store := &stubUserStore{users: map[string]database.User{
		"user@airws.com": {
			ID:           1,
			Email:        "user@airws.com",
			PasswordHash: hash,
			Active:       true,
			Roles:        []string{RoleCustomer},
		},
		"disabled@airws.com": {
			ID:           2,
			Email:        "disabled@airws.com",
			PasswordHash: hash,
			Active:       false,
			Roles:        []string{RoleCustomer},
		},
	}}

	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{"valid credentials", "user@airws.com", "password", http.StatusOK},
		{"wrong password", "user@airws.com", "nope", http.StatusUnauthorized},
		{"unknown user", "ghost@airws.com", "password", http.StatusUnauthorized},
		{"inactive user", "disabled@airws.com", "password", http.StatusUnauthorized},
		{"missing password", "user@airws.com", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := NewSessions(time.Hour)
			handler := NewHandler(store, sessions, zap.NewNop())

			body, _ := json.Marshal(map[string]string{"email": tt.email, "password": tt.password})
			req := httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var response map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

				principal, ok := sessions.Get(response["token"])
				require.True(t, ok)
				assert.Equal(t, tt.email, principal.Email)
			}
		})
	}
}

func TestHandler_Logout(t *testing.T) {
	sessions := NewSessions(time.Hour)
	handler := NewHandler(&stubUserStore{}, sessions, zap.NewNop())

	token := sessions.Create(Principal{Email: "user@airws.com"})

	req := httptest.NewRequest(http.MethodPost, "/v1/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, ok := sessions.Get(token)
	assert.False(t, ok)
}
