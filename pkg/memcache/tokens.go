package mem

import (
	"sync"
	"time"
)

// TokenStore holds short-lived single-use tokens: collaborator invites sent
// to not-yet-registered emails, and password reset links. Values are opaque
// to the store.
type TokenStore interface {
	Set(token string, value string, ttl time.Duration)

	// Consume returns the value for token if not expired and removes it
	// (single-use). Returns "" if missing or expired.
	Consume(token string) string

	// Peek reads without consuming.
	Peek(token string) (string, bool)
}

type entry struct {
	value     string
	expiresAt time.Time
}

type Tokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewTokens() *Tokens {
	return &Tokens{data: make(map[string]entry)}
}

func (s *Tokens) Set(token string, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{value: value, expiresAt: time.Now().Add(ttl)}
}

func (s *Tokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return ""
	}
	delete(s.data, token)
	if time.Now().After(e.expiresAt) {
		return ""
	}
	return e.value
}

func (s *Tokens) Peek(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[token]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.value, true
}
