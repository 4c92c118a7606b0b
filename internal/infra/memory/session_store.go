package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"quizbank-service/internal/domain"
)

// SessionStore is an in-memory implementation of app.SessionRepository.
// Expired sessions are dropped lazily on lookup.
type SessionStore struct {
	ttl   time.Duration
	clock func() time.Time

	mu       sync.RWMutex
	sessions map[string]session
}

type session struct {
	principal domain.Principal
	expiresAt time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		clock:    time.Now,
		sessions: make(map[string]session),
	}
}

func (s *SessionStore) Create(_ context.Context, p domain.Principal) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := session{principal: p}
	if s.ttl > 0 {
		entry.expiresAt = s.clock().Add(s.ttl)
	}
	s.sessions[token] = entry
	return token, nil
}

func (s *SessionStore) Get(_ context.Context, token string) (domain.Principal, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return domain.Principal{}, domain.ErrSessionNotFound
	}
	if !entry.expiresAt.IsZero() && !entry.expiresAt.After(s.clock()) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return domain.Principal{}, domain.ErrSessionNotFound
	}
	return entry.principal, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
