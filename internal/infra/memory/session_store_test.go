package memory

import (
	"context"
	"testing"
	"time"

	"quizbank-service/internal/domain"
)

func TestSessionStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(time.Minute)
	alice := domain.Principal{Username: "alice", Role: domain.RoleAdmin}

	token, err := store.Create(ctx, alice)
	if err != nil || token == "" {
		t.Fatalf("create: %q %v", token, err)
	}
	got, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != alice {
		t.Fatalf("expected %+v, got %+v", alice, got)
	}

	if err := store.Delete(ctx, token); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, token); err != domain.ErrSessionNotFound {
		t.Fatalf("expected session removed, got %v", err)
	}
}

func TestSessionStoreExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(time.Minute)
	store.clock = func() time.Time { return now }

	token, _ := store.Create(ctx, domain.Principal{Username: "bob", Role: domain.RoleUser})
	now = now.Add(59 * time.Second)
	if _, err := store.Get(ctx, token); err != nil {
		t.Fatalf("expected live session, got %v", err)
	}
	now = now.Add(time.Second)
	if _, err := store.Get(ctx, token); err != domain.ErrSessionNotFound {
		t.Fatalf("expected expired session, got %v", err)
	}
}
