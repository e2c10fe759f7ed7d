package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sessions is an in-memory session store. Tokens are random UUIDs handed out
// at login and expire after a fixed TTL.
type Sessions struct {
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]session
}

type session struct {
	principal Principal
	expiresAt time.Time
}

// NewSessions creates a session store with the given token lifetime
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		ttl:      ttl,
		sessions: make(map[string]session),
	}
}

// Create issues a new session token for the principal
func (s *Sessions) Create(p Principal) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = session{principal: p, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token
}

// Get resolves a token to its principal. Expired sessions are dropped.
func (s *Sessions) Get(token string) (Principal, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return Principal{}, false
	}
	if time.Now().After(sess.expiresAt) {
		s.Delete(token)
		return Principal{}, false
	}
	return sess.principal, true
}

// Delete invalidates a session token; unknown tokens are a no-op
func (s *Sessions) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
