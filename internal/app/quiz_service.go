package app

import (
	"context"
	"fmt"
	"log/slog"

	"quizbank-service/internal/domain"
	"quizbank-service/internal/policy"
)

// Home view names, one per role.
const (
	ViewQuizList = "QuizList"
	ViewQuiz     = "Quiz"
)

// HomeView is what a principal lands on after login.
type HomeView struct {
	Username string        `json:"username"`
	View     string        `json:"view"`
	Quizzes  []domain.Quiz `json:"quizzes"`
}

// QuizService contains the quiz bank use cases. Every operation consults the
// policy before touching the repository.
type QuizService struct {
	quizzes QuizRepository
	log     *slog.Logger
}

func NewQuizService(quizzes QuizRepository, log *slog.Logger) *QuizService {
	if log == nil {
		log = slog.Default()
	}
	return &QuizService{quizzes: quizzes, log: log}
}

// Home returns the management list for principals allowed to edit quizzes and
// the quiz-taking view for everyone else.
func (s *QuizService) Home(ctx context.Context, p domain.Principal) (HomeView, error) {
	quizzes, err := s.List(ctx, p)
	if err != nil {
		return HomeView{}, err
	}
	view := ViewQuiz
	if policy.CanPerform(p.Role, policy.OpEditQuiz) {
		view = ViewQuizList
	}
	return HomeView{Username: p.Username, View: view, Quizzes: quizzes}, nil
}

func (s *QuizService) List(_ context.Context, p domain.Principal) ([]domain.Quiz, error) {
	if err := s.authorize(p, policy.OpViewQuizzes); err != nil {
		return nil, err
	}
	return s.quizzes.List(), nil
}

// Get loads a single quiz for editing.
func (s *QuizService) Get(_ context.Context, p domain.Principal, id int) (domain.Quiz, error) {
	if err := s.authorize(p, policy.OpEditQuiz); err != nil {
		return domain.Quiz{}, err
	}
	return s.quizzes.GetByID(id)
}

// Create stores draft under a freshly assigned id.
func (s *QuizService) Create(_ context.Context, p domain.Principal, draft domain.Quiz) (domain.Quiz, error) {
	if err := s.authorize(p, policy.OpCreateQuiz); err != nil {
		return domain.Quiz{}, err
	}
	if err := draft.Validate(); err != nil {
		return domain.Quiz{}, err
	}
	draft.ID = s.quizzes.NextID()
	if err := s.quizzes.Add(draft); err != nil {
		return domain.Quiz{}, err
	}
	s.log.Info("quiz created", "id", draft.ID, "by", p.Username)
	return draft, nil
}

// Edit replaces every field of the stored quiz with the same id.
func (s *QuizService) Edit(_ context.Context, p domain.Principal, quiz domain.Quiz) error {
	if err := s.authorize(p, policy.OpEditQuiz); err != nil {
		return err
	}
	if err := quiz.Validate(); err != nil {
		return err
	}
	if err := s.quizzes.Update(quiz); err != nil {
		return err
	}
	s.log.Info("quiz updated", "id", quiz.ID, "by", p.Username)
	return nil
}

func (s *QuizService) Delete(_ context.Context, p domain.Principal, id int) error {
	if err := s.authorize(p, policy.OpDeleteQuiz); err != nil {
		return err
	}
	if err := s.quizzes.Delete(id); err != nil {
		return err
	}
	s.log.Info("quiz deleted", "id", id, "by", p.Username)
	return nil
}

// Submit grades attempt against the current quiz bank.
func (s *QuizService) Submit(_ context.Context, p domain.Principal, attempt domain.Attempt) (domain.Result, error) {
	if err := s.authorize(p, policy.OpSubmitAnswers); err != nil {
		return domain.Result{}, err
	}
	result := Grade(s.quizzes.List(), attempt)
	s.log.Info("attempt graded", "username", p.Username, "correct", result.CorrectCount, "total", result.TotalQuestions)
	return result, nil
}

// Seed adds every quiz from src under a fresh id, ignoring source ids.
func (s *QuizService) Seed(ctx context.Context, src QuizSource) (int, error) {
	quizzes, err := src.LoadQuizzes(ctx)
	if err != nil {
		return 0, fmt.Errorf("load seed quizzes: %w", err)
	}
	for i, quiz := range quizzes {
		if err := quiz.Validate(); err != nil {
			return i, fmt.Errorf("seed quiz %d: %w", i, err)
		}
		quiz.ID = s.quizzes.NextID()
		if err := s.quizzes.Add(quiz); err != nil {
			return i, fmt.Errorf("seed quiz %d: %w", i, err)
		}
	}
	return len(quizzes), nil
}

func (s *QuizService) authorize(p domain.Principal, op policy.Operation) error {
	if policy.CanPerform(p.Role, op) {
		return nil
	}
	s.log.Info("operation denied", "username", p.Username, "role", p.Role, "operation", op)
	return domain.ErrAuthorizationDenied
}
