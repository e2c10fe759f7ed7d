package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tillik/airlinewebservice/internal/database"
	"go.uber.org/zap"
)

// UserStore is the subset of the entity store the login handler needs
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*database.User, error)
}

// Handler serves login and logout
type Handler struct {
	users    UserStore
	sessions *Sessions
	log      *zap.Logger
}

// NewHandler creates the auth handler
func NewHandler(users UserStore, sessions *Sessions, log *zap.Logger) *Handler {
	return &Handler{users: users, sessions: sessions, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /v1/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeAuthError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil || !user.Active || !VerifyPassword(user.PasswordHash, req.Password) {
		// One answer for unknown user and wrong password
		writeAuthError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token := h.sessions.Create(Principal{Email: user.Email, Roles: user.Roles})
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.log.Info("user logged in", zap.String("email", user.Email))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Logout handles POST /v1/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	m := &Middleware{sessions: h.sessions}
	if token := m.token(r); token != "" {
		h.sessions.Delete(token)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}
