package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"quizbank-service/internal/domain"
)

// SessionStore is a Redis implementation of app.SessionRepository.
// Each session is a JSON principal stored as: SET quiz:session:{token} {json} EX ttl
// so every instance behind a load balancer resolves the same cookie.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Create(ctx context.Context, p domain.Principal) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal principal: %w", err)
	}
	token := uuid.NewString()
	if err := s.client.Set(ctx, s.key(token), raw, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (domain.Principal, error) {
	raw, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Principal{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.Principal{}, fmt.Errorf("load session: %w", err)
	}
	var p domain.Principal
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Principal{}, fmt.Errorf("unmarshal session: %w", err)
	}
	// Stored roles are re-parsed so a tampered value cannot widen privileges.
	p.Role = domain.ParseRole(string(p.Role))
	return p, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

func (s *SessionStore) key(token string) string {
	return "quiz:session:" + token
}
