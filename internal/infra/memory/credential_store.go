package memory

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"quizbank-service/internal/domain"
)

// CredentialStore keeps registered users in memory, keyed by username.
type CredentialStore struct {
	cost int

	mu    sync.RWMutex
	users map[string]domain.User

	// dummyHash is compared against when a username is unknown so Verify does
	// the same bcrypt work on both failure paths.
	dummyHash []byte
}

// NewCredentialStore builds a store hashing with the given bcrypt cost.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func NewCredentialStore(cost int) (*CredentialStore, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("quizbank-unknown-user"), cost)
	if err != nil {
		return nil, fmt.Errorf("init dummy hash: %w", err)
	}
	return &CredentialStore{
		cost:      cost,
		users:     make(map[string]domain.User),
		dummyHash: dummy,
	}, nil
}

func (s *CredentialStore) Register(username, password, email string, role domain.Role) error {
	if username == "" || password == "" {
		return domain.ErrInvalidInput
	}
	if s.exists(username) {
		return domain.ErrDuplicateUser
	}

	// Hash outside the lock; bcrypt is deliberately slow.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return domain.ErrDuplicateUser
	}
	s.users[username] = domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	return nil
}

func (s *CredentialStore) Lookup(username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *CredentialStore) Verify(username, password string) bool {
	s.mu.RLock()
	user, ok := s.users[username]
	s.mu.RUnlock()

	hash := s.dummyHash
	if ok {
		hash = []byte(user.PasswordHash)
	}
	match := bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
	return ok && match
}

// Len reports the number of registered users.
func (s *CredentialStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *CredentialStore) exists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[username]
	return ok
}
