package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"quiz-engine/internal/domain"
)

// ResultRepository is a mutex-guarded in-memory result store with ranking queries.
type ResultRepository struct {
	mu      sync.RWMutex
	results map[string]domain.QuizResult
	// order remembers insertion sequence so TopScores ties stay stable.
	order []string
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{results: make(map[string]domain.QuizResult)}
}

// Save upserts by id.
func (r *ResultRepository) Save(_ context.Context, result domain.QuizResult) (domain.QuizResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.results[result.ID]; !ok {
		r.order = append(r.order, result.ID)
	}
	r.results[result.ID] = result
	return result, nil
}

func (r *ResultRepository) FindByID(_ context.Context, id string) (domain.QuizResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.results[id]
	if !ok {
		return domain.QuizResult{}, domain.ErrResultNotFound
	}
	return result, nil
}

func (r *ResultRepository) FindAll(_ context.Context) ([]domain.QuizResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	results := make([]domain.QuizResult, 0, len(r.results))
	for _, id := range r.order {
		results = append(results, r.results[id])
	}
	return results, nil
}

// DeleteByID removes the result if present; a missing id is a no-op.
func (r *ResultRepository) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.results[id]; !ok {
		return nil
	}
	delete(r.results, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ResultRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.results), nil
}

func (r *ResultRepository) FindByQuizID(_ context.Context, quizID string) ([]domain.QuizResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterLocked(func(result domain.QuizResult) bool {
		return result.QuizID == quizID
	}), nil
}

// FindByPlayerName matches case-insensitively.
func (r *ResultRepository) FindByPlayerName(_ context.Context, name string) ([]domain.QuizResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterLocked(func(result domain.QuizResult) bool {
		return strings.EqualFold(result.PlayerName, name)
	}), nil
}

// TopScores returns the quiz's results sorted by score descending. Equal
// scores keep insertion order (stable sort). limit <= 0 yields nothing.
func (r *ResultRepository) TopScores(_ context.Context, quizID string, limit int) ([]domain.QuizResult, error) {
	if limit <= 0 {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	results := r.filterLocked(func(result domain.QuizResult) bool {
		return result.QuizID == quizID
	})
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (r *ResultRepository) filterLocked(keep func(domain.QuizResult) bool) []domain.QuizResult {
	var results []domain.QuizResult
	for _, id := range r.order {
		if result := r.results[id]; keep(result) {
			results = append(results, result)
		}
	}
	return results
}
