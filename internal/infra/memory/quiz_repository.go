package memory

import (
	"sync"

	"quizbank-service/internal/domain"
)

// QuizRepository holds the quiz bank in insertion order and hands out ids
// from a counter that never regresses, even after deletions.
type QuizRepository struct {
	mu      sync.RWMutex
	quizzes []domain.Quiz
	index   map[int]int // id -> position in quizzes
	lastID  int
}

func NewQuizRepository() *QuizRepository {
	return &QuizRepository{
		index: make(map[int]int),
	}
}

func (r *QuizRepository) NextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	return r.lastID
}

func (r *QuizRepository) Add(quiz domain.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[quiz.ID]; ok {
		return domain.ErrDuplicateID
	}
	r.index[quiz.ID] = len(r.quizzes)
	r.quizzes = append(r.quizzes, quiz.Clone())
	if quiz.ID > r.lastID {
		r.lastID = quiz.ID
	}
	return nil
}

func (r *QuizRepository) GetByID(id int) (domain.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.index[id]
	if !ok {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	return r.quizzes[pos].Clone(), nil
}

func (r *QuizRepository) List() []domain.Quiz {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Quiz, len(r.quizzes))
	for i, q := range r.quizzes {
		out[i] = q.Clone()
	}
	return out
}

func (r *QuizRepository) Update(quiz domain.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos, ok := r.index[quiz.ID]
	if !ok {
		return domain.ErrQuizNotFound
	}
	r.quizzes[pos] = quiz.Clone()
	return nil
}

func (r *QuizRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos, ok := r.index[id]
	if !ok {
		return domain.ErrQuizNotFound
	}
	r.quizzes = append(r.quizzes[:pos], r.quizzes[pos+1:]...)
	delete(r.index, id)
	for i := pos; i < len(r.quizzes); i++ {
		r.index[r.quizzes[i].ID] = i
	}
	return nil
}
