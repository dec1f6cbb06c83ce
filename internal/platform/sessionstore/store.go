package sessionstore

import (
	"sync"
	"time"

	"github.com/riskibarqy/club-tracker/internal/domain/session"
)

// Store keeps issued admin sessions in memory with a TTL. Expired entries are
// dropped lazily on read.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]session.Principal
	ttl      time.Duration
	now      func() time.Time
}

func New(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]session.Principal),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue records a new session for the given token and returns the principal.
func (s *Store) Issue(token string) session.Principal {
	now := s.now()
	principal := session.Principal{
		Token:    token,
		IssuedAt: now,
	}
	if s.ttl > 0 {
		principal.ExpiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	s.sessions[token] = principal
	s.mu.Unlock()

	return principal
}

// Get resolves a token to its principal. Expired sessions are deleted and
// reported as absent.
func (s *Store) Get(token string) (session.Principal, bool) {
	if token == "" {
		return session.Principal{}, false
	}

	s.mu.RLock()
	principal, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return session.Principal{}, false
	}

	if principal.ExpiredAt(s.now()) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return session.Principal{}, false
	}

	return principal, true
}

// Delete revokes a session. Deleting an unknown token is a no-op.
func (s *Store) Delete(token string) {
	if token == "" {
		return
	}

	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
