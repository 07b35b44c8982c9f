package memory

import (
	"context"
	"errors"
	"testing"

	"quiz-engine/internal/domain"
)

func quizWithCategory(t *testing.T, id, category string) domain.Quiz {
	t.Helper()
	q, err := domain.NewTrueFalse(id+"-q1", "?", category, 5, "", true)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	return domain.NewQuiz(id, "Quiz "+id, "", []domain.Question{q})
}

func TestQuizRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewQuizRepository()

	if _, err := repo.FindByID(ctx, "quiz-1"); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}

	quiz := quizWithCategory(t, "quiz-1", "go")
	if _, err := repo.Save(ctx, quiz); err != nil {
		t.Fatalf("save: %v", err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("expected count 1, got %d", n)
	}

	found, err := repo.FindByID(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Title() != "Quiz quiz-1" {
		t.Fatalf("unexpected quiz: %s", found.Title())
	}

	// upsert replaces
	replacement := domain.NewQuiz("quiz-1", "Replaced", "", nil)
	if _, err := repo.Save(ctx, replacement); err != nil {
		t.Fatalf("save: %v", err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("upsert must not grow the store, got %d", n)
	}
	found, _ = repo.FindByID(ctx, "quiz-1")
	if found.Title() != "Replaced" {
		t.Fatalf("expected replacement, got %s", found.Title())
	}

	if err := repo.DeleteByID(ctx, "quiz-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteByID(ctx, "quiz-1"); err != nil {
		t.Fatalf("deleting a missing id must be a no-op, got %v", err)
	}
	if n, _ := repo.Count(ctx); n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
}

func TestQuizRepositoryFindByCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewQuizRepository()
	_, _ = repo.Save(ctx, quizWithCategory(t, "quiz-1", "Go"))
	_, _ = repo.Save(ctx, quizWithCategory(t, "quiz-2", "networking"))

	matches, err := repo.FindByCategory(ctx, "go")
	if err != nil {
		t.Fatalf("find by category: %v", err)
	}
	if len(matches) != 1 || matches[0].ID() != "quiz-1" {
		t.Fatalf("expected case-insensitive match on quiz-1, got %+v", matches)
	}

	if matches, _ := repo.FindByCategory(ctx, "history"); len(matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(matches))
	}
}
