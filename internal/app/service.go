package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"quiz-engine/internal/domain"
	"quiz-engine/internal/scoring"
)

// QuizService contains the quiz-engine use cases.
type QuizService struct {
	quizzes QuizRepository
	results ResultRepository

	now   func() time.Time
	newID func() string
}

func NewQuizService(quizzes QuizRepository, results ResultRepository) *QuizService {
	return &QuizService{
		quizzes: quizzes,
		results: results,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// NewQuizServiceWithClock is test-only for deterministic timestamps and ids.
func NewQuizServiceWithClock(quizzes QuizRepository, results ResultRepository, now func() time.Time, newID func() string) *QuizService {
	return &QuizService{quizzes: quizzes, results: results, now: now, newID: newID}
}

// Play lets the player pick a quiz through the view, runs one session with
// the given strategy, persists the result and shows it. When no quiz is
// available or none is selected, the operation is abandoned gracefully and
// nothing is persisted.
func (s *QuizService) Play(ctx context.Context, view View, strategy scoring.Strategy) (domain.QuizResult, error) {
	quizzes, err := s.quizzes.FindAll(ctx)
	if err != nil {
		return domain.QuizResult{}, fmt.Errorf("list quizzes: %w", err)
	}
	if len(quizzes) == 0 {
		view.ShowError("There are no quizzes to play yet.")
		return domain.QuizResult{}, domain.ErrNoQuizzes
	}
	return s.playFrom(ctx, view, strategy, quizzes)
}

// PlayCategory is Play restricted to quizzes with at least one question in
// the category. An empty category yields the same graceful abandon as an
// empty catalog.
func (s *QuizService) PlayCategory(ctx context.Context, view View, strategy scoring.Strategy, category string) (domain.QuizResult, error) {
	quizzes, err := s.quizzes.FindByCategory(ctx, category)
	if err != nil {
		return domain.QuizResult{}, fmt.Errorf("quizzes by category: %w", err)
	}
	if len(quizzes) == 0 {
		view.ShowError(fmt.Sprintf("No quizzes available for category %q.", category))
		return domain.QuizResult{}, domain.ErrNoQuizzes
	}
	return s.playFrom(ctx, view, strategy, quizzes)
}

func (s *QuizService) playFrom(ctx context.Context, view View, strategy scoring.Strategy, quizzes []domain.Quiz) (domain.QuizResult, error) {
	// Map-backed stores return quizzes in arbitrary order; present a stable menu.
	sort.Slice(quizzes, func(i, j int) bool { return quizzes[i].Title() < quizzes[j].Title() })

	quiz, ok := view.PromptSelectQuiz(quizzes)
	if !ok {
		view.ShowError("No quiz selected.")
		return domain.QuizResult{}, domain.ErrNoQuizSelected
	}

	session := NewSessionWithClock(quiz, strategy, view, s.now, s.newID)
	result := session.Run(view.PromptPlayerName())

	saved, err := s.results.Save(ctx, result)
	if err != nil {
		return domain.QuizResult{}, fmt.Errorf("save result: %w", err)
	}
	view.ShowQuizResult(saved)
	return saved, nil
}

// HighScores fetches the top results for a quiz and shows them.
func (s *QuizService) HighScores(ctx context.Context, view View, quizID string, limit int) ([]domain.QuizResult, error) {
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	top, err := s.results.TopScores(ctx, quizID, limit)
	if err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}
	view.ShowHighScores(top, quiz.Title())
	return top, nil
}
