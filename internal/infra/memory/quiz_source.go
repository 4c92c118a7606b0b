package memory

import (
	"context"

	"quizbank-service/internal/domain"
)

// StaticQuizSource serves a fixed quiz list, typically from the config file.
type StaticQuizSource struct {
	quizzes []domain.Quiz
}

func NewStaticQuizSource(quizzes []domain.Quiz) *StaticQuizSource {
	return &StaticQuizSource{quizzes: quizzes}
}

func (s *StaticQuizSource) LoadQuizzes(_ context.Context) ([]domain.Quiz, error) {
	out := make([]domain.Quiz, len(s.quizzes))
	for i, q := range s.quizzes {
		out[i] = q.Clone()
	}
	return out, nil
}
