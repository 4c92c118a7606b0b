package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"quizbank-service/internal/domain"
	"quizbank-service/internal/identity"
)

// AccountService handles registration, login and session resolution.
type AccountService struct {
	users    CredentialStore
	sessions SessionRepository
	log      *slog.Logger
}

func NewAccountService(users CredentialStore, sessions SessionRepository, log *slog.Logger) *AccountService {
	if log == nil {
		log = slog.Default()
	}
	return &AccountService{users: users, sessions: sessions, log: log}
}

// Register creates the account and immediately logs it in, returning the
// new session token.
func (s *AccountService) Register(ctx context.Context, username, email, password, role string) (domain.Principal, string, error) {
	if err := s.users.Register(username, password, email, domain.ParseRole(role)); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			s.log.Info("registration rejected", "username", username, "reason", "duplicate")
		}
		return domain.Principal{}, "", err
	}
	s.log.Info("user registered", "username", username, "role", domain.ParseRole(role))
	return s.Login(ctx, username, password)
}

// Login verifies credentials and opens a session. Unknown users and wrong
// passwords both yield domain.ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, username, password string) (domain.Principal, string, error) {
	if !s.users.Verify(username, password) {
		s.log.Debug("login failed", "username", username)
		return domain.Principal{}, "", domain.ErrInvalidCredentials
	}
	user, err := s.users.Lookup(username)
	if err != nil {
		return domain.Principal{}, "", domain.ErrInvalidCredentials
	}
	principal := identity.FromUser(user)
	token, err := s.sessions.Create(ctx, principal)
	if err != nil {
		return domain.Principal{}, "", fmt.Errorf("create session: %w", err)
	}
	return principal, token, nil
}

func (s *AccountService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Resolve returns the principal bound to a session token.
func (s *AccountService) Resolve(ctx context.Context, token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, domain.ErrSessionNotFound
	}
	return s.sessions.Get(ctx, token)
}
