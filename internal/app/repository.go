package app

import (
	"context"

	"quiz-engine/internal/domain"
)

// QuizRepository stores quiz content (in-memory, Postgres-backed, etc).
// FindByID reports absence with domain.ErrQuizNotFound; DeleteByID on a
// missing id is a no-op. FindAll order is not guaranteed.
type QuizRepository interface {
	Save(ctx context.Context, quiz domain.Quiz) (domain.Quiz, error)
	FindByID(ctx context.Context, id string) (domain.Quiz, error)
	FindAll(ctx context.Context) ([]domain.Quiz, error)
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	// FindByCategory returns quizzes containing at least one question tagged
	// with the category (case-insensitive).
	FindByCategory(ctx context.Context, category string) ([]domain.Quiz, error)
}

// ResultRepository stores completed quiz results and serves ranking queries.
// FindByID reports absence with domain.ErrResultNotFound; DeleteByID on a
// missing id is a no-op.
type ResultRepository interface {
	Save(ctx context.Context, result domain.QuizResult) (domain.QuizResult, error)
	FindByID(ctx context.Context, id string) (domain.QuizResult, error)
	FindAll(ctx context.Context) ([]domain.QuizResult, error)
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	FindByQuizID(ctx context.Context, quizID string) ([]domain.QuizResult, error)
	// FindByPlayerName matches the player name case-insensitively.
	FindByPlayerName(ctx context.Context, name string) ([]domain.QuizResult, error)
	// TopScores returns results for the quiz sorted by score descending,
	// truncated to limit. Tie order among equal scores is implementation-defined.
	// limit <= 0 yields an empty slice.
	TopScores(ctx context.Context, quizID string, limit int) ([]domain.QuizResult, error)
}
