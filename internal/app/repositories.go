package app

import (
	"context"

	"quizbank-service/internal/domain"
)

// CredentialStore holds registered users and owns password hashing.
type CredentialStore interface {
	Register(username, password, email string, role domain.Role) error
	Lookup(username string) (domain.User, error)
	Verify(username, password string) bool
}

// QuizRepository owns the quiz bank. It does not check authorization;
// callers consult the policy first.
type QuizRepository interface {
	NextID() int
	Add(quiz domain.Quiz) error
	GetByID(id int) (domain.Quiz, error)
	List() []domain.Quiz
	Update(quiz domain.Quiz) error
	Delete(id int) error
}

// SessionRepository abstracts how login sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	Create(ctx context.Context, p domain.Principal) (string, error)
	Get(ctx context.Context, token string) (domain.Principal, error)
	Delete(ctx context.Context, token string) error
}

// QuizSource loads an initial quiz bank (config file, database...).
type QuizSource interface {
	LoadQuizzes(ctx context.Context) ([]domain.Quiz, error)
}
