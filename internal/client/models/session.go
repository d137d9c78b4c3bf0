package models

import "sync"

// Session is the authenticated identity for the current run. The token is
// kept as bytes so Discard can wipe it; it is never persisted.
type Session struct {
	mu    sync.RWMutex
	token []byte
	User  User
	Role  Role
}

// NewSession returns an active session for the given token and user.
func NewSession(token string, user User) *Session {
	return &Session{token: []byte(token), User: user, Role: user.Rol}
}

// Token returns the bearer token, or "" once the session is discarded.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return string(s.token)
}

// Valid reports whether the session still holds a token.
func (s *Session) Valid() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.token) > 0
}

// Discard zeroes the token bytes. Subsequent Token calls return "".
func (s *Session) Discard() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.token {
		s.token[i] = 0
	}
	s.token = nil
}
