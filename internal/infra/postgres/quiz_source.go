package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"quizbank-service/internal/domain"
)

// QuizSource reads the seed quiz bank from the quiz_bank table. It is only
// read at startup; runtime edits are never written back.
type QuizSource struct {
	pool *pgxpool.Pool
}

func NewQuizSource(pool *pgxpool.Pool) *QuizSource {
	return &QuizSource{pool: pool}
}

func (s *QuizSource) LoadQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	rows, err := s.pool.Query(ctx, `SELECT question_text, options, correct_answer FROM quiz_bank ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query quiz bank: %w", err)
	}
	defer rows.Close()

	var quizzes []domain.Quiz
	for rows.Next() {
		var (
			quiz    domain.Quiz
			options []byte
		)
		if err := rows.Scan(&quiz.QuestionText, &options, &quiz.CorrectAnswer); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		if err := json.Unmarshal(options, &quiz.Options); err != nil {
			return nil, fmt.Errorf("unmarshal options: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz bank: %w", err)
	}
	return quizzes, nil
}
