package memory

import (
	"context"
	"sync"

	"quiz-engine/internal/domain"
)

// QuizRepository is a mutex-guarded in-memory quiz store. The guard makes the
// store safe for concurrent callers even though a quiz session itself is
// single-threaded.
type QuizRepository struct {
	mu      sync.RWMutex
	quizzes map[string]domain.Quiz
}

func NewQuizRepository() *QuizRepository {
	return &QuizRepository{quizzes: make(map[string]domain.Quiz)}
}

// Save upserts by id.
func (r *QuizRepository) Save(_ context.Context, quiz domain.Quiz) (domain.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quizzes[quiz.ID()] = quiz
	return quiz, nil
}

func (r *QuizRepository) FindByID(_ context.Context, id string) (domain.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	quiz, ok := r.quizzes[id]
	if !ok {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	return quiz, nil
}

func (r *QuizRepository) FindAll(_ context.Context) ([]domain.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	quizzes := make([]domain.Quiz, 0, len(r.quizzes))
	for _, quiz := range r.quizzes {
		quizzes = append(quizzes, quiz)
	}
	return quizzes, nil
}

// DeleteByID removes the quiz if present; a missing id is a no-op.
func (r *QuizRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.quizzes, id)
	return nil
}

func (r *QuizRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.quizzes), nil
}

// FindByCategory returns quizzes with at least one question tagged with the
// category, matched case-insensitively.
func (r *QuizRepository) FindByCategory(_ context.Context, category string) ([]domain.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var quizzes []domain.Quiz
	for _, quiz := range r.quizzes {
		if quiz.HasCategory(category) {
			quizzes = append(quizzes, quiz)
		}
	}
	return quizzes, nil
}
