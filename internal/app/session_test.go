package app_test

import (
	"testing"
	"time"

	"quiz-engine/internal/app"
	"quiz-engine/internal/domain"
	"quiz-engine/internal/scoring"
)

// scriptedView replays canned inputs and records everything the session shows.
type scriptedView struct {
	answers   []string
	next      int
	useHints  bool
	selection int // 1-based pick in PromptSelectQuiz; 0 declines
	player    string

	shownQuestions []string
	shownHints     []string
	feedbackCount  int
	errors         []string
	shownResults   []domain.QuizResult
	shownScores    []domain.QuizResult
}

func (v *scriptedView) ShowQuestion(q domain.Question, position, total int) {
	v.shownQuestions = append(v.shownQuestions, q.ID())
}

func (v *scriptedView) PromptUseHint() bool { return v.useHints }

func (v *scriptedView) ShowMessage(message string) {
	v.shownHints = append(v.shownHints, message)
}

func (v *scriptedView) PromptAnswer() string {
	if v.next >= len(v.answers) {
		return ""
	}
	answer := v.answers[v.next]
	v.next++
	return answer
}

func (v *scriptedView) ShowAnswerFeedback(bool, string, int) { v.feedbackCount++ }

func (v *scriptedView) PromptSelectQuiz(quizzes []domain.Quiz) (domain.Quiz, bool) {
	if v.selection < 1 || v.selection > len(quizzes) {
		return domain.Quiz{}, false
	}
	return quizzes[v.selection-1], true
}

func (v *scriptedView) PromptPlayerName() string { return v.player }

func (v *scriptedView) ShowQuizResult(result domain.QuizResult) {
	v.shownResults = append(v.shownResults, result)
}

func (v *scriptedView) ShowHighScores(results []domain.QuizResult, quizTitle string) {
	v.shownScores = append(v.shownScores, results...)
}

func (v *scriptedView) ShowError(message string) {
	v.errors = append(v.errors, message)
}

func sampleQuiz(t *testing.T) domain.Quiz {
	t.Helper()
	mc, err := domain.NewMultipleChoice("q1", "Pick the right option", "general", 10, "the second one", []string{"a", "b", "c", "d"}, 1)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	tf, err := domain.NewTrueFalse("q2", "The answer is true", "general", 5, "", true)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	return domain.NewQuiz("quiz-1", "Sample", "two questions", []domain.Question{mc, tf})
}

func fixedClock() time.Time {
	return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func staticID() string { return "result-1" }

func TestSessionAllCorrectStandardScoring(t *testing.T) {
	view := &scriptedView{answers: []string{"2", "true"}}
	session := app.NewSessionWithClock(sampleQuiz(t), scoring.Standard{}, view, fixedClock, staticID)

	if session.State() != app.StateNotStarted {
		t.Fatalf("expected NotStarted before Run")
	}
	result := session.Run("Alice")
	if session.State() != app.StateCompleted {
		t.Fatalf("expected Completed after Run")
	}

	if result.Score != 15 || result.CorrectAnswers != 2 || result.Grade() != "A" {
		t.Fatalf("expected 15 points, 2 correct, grade A; got %d/%d grade %s", result.Score, result.CorrectAnswers, result.Grade())
	}
	if result.TotalPossible != 15 || result.TotalQuestions != 2 {
		t.Fatalf("unexpected totals: %d possible, %d questions", result.TotalPossible, result.TotalQuestions)
	}
	if result.ID != "result-1" || !result.CompletedAt.Equal(fixedClock()) {
		t.Fatalf("expected injected id and clock, got %s at %s", result.ID, result.CompletedAt)
	}
	if result.PlayerName != "Alice" {
		t.Fatalf("expected player Alice, got %q", result.PlayerName)
	}
}

func TestSessionAllWrongScoresZero(t *testing.T) {
	view := &scriptedView{answers: []string{"1", "false"}}
	result := app.NewSessionWithClock(sampleQuiz(t), scoring.Standard{}, view, fixedClock, staticID).Run("Bob")

	if result.Score != 0 || result.CorrectAnswers != 0 || result.Grade() != "F" {
		t.Fatalf("expected 0 points, 0 correct, grade F; got %d/%d grade %s", result.Score, result.CorrectAnswers, result.Grade())
	}
}

func TestSessionPenaltyScoringGoesNegativePerAnswer(t *testing.T) {
	// correct MC (+10), wrong TF on a 5-pointer at 25% penalty (-1)
	view := &scriptedView{answers: []string{"2", "false"}}
	result := app.NewSessionWithClock(sampleQuiz(t), scoring.Penalty{Fraction: 0.25}, view, fixedClock, staticID).Run("Cara")

	if result.Score != 9 {
		t.Fatalf("expected score 9, got %d", result.Score)
	}
	if result.Answers[1].PointsEarned != -1 {
		t.Fatalf("expected -1 on the wrong answer, got %d", result.Answers[1].PointsEarned)
	}
}

func TestSessionRecordsAnswersInQuizOrder(t *testing.T) {
	view := &scriptedView{answers: []string{"junk", ""}}
	result := app.NewSessionWithClock(sampleQuiz(t), scoring.Standard{}, view, fixedClock, staticID).Run("Dave")

	if len(result.Answers) != 2 {
		t.Fatalf("expected one record per question, got %d", len(result.Answers))
	}
	if result.Answers[0].QuestionID != "q1" || result.Answers[1].QuestionID != "q2" {
		t.Fatalf("expected quiz order, got %s then %s", result.Answers[0].QuestionID, result.Answers[1].QuestionID)
	}
	if result.Answers[0].GivenAnswer != "junk" {
		t.Fatalf("expected raw answer preserved, got %q", result.Answers[0].GivenAnswer)
	}
	if view.feedbackCount != 2 {
		t.Fatalf("expected feedback for each question, got %d", view.feedbackCount)
	}
}

func TestSessionHintHasNoScoringEffect(t *testing.T) {
	withHint := &scriptedView{answers: []string{"2", "true"}, useHints: true}
	result := app.NewSessionWithClock(sampleQuiz(t), scoring.Standard{}, withHint, fixedClock, staticID).Run("Eve")

	if result.Score != 15 {
		t.Fatalf("hint must not change scoring, got %d", result.Score)
	}
	// only q1 carries a hint
	if len(withHint.shownHints) != 1 || withHint.shownHints[0] != "the second one" {
		t.Fatalf("expected the one available hint to be shown, got %v", withHint.shownHints)
	}
}

func TestSessionBlankPlayerNameDefaults(t *testing.T) {
	view := &scriptedView{answers: []string{"2", "true"}}
	result := app.NewSessionWithClock(sampleQuiz(t), scoring.Standard{}, view, fixedClock, staticID).Run("   ")

	if result.PlayerName != app.AnonymousPlayer {
		t.Fatalf("expected %q, got %q", app.AnonymousPlayer, result.PlayerName)
	}
}

func TestSessionEmptyQuizCompletesImmediately(t *testing.T) {
	empty := domain.NewQuiz("quiz-0", "Empty", "", nil)
	view := &scriptedView{}
	result := app.NewSessionWithClock(empty, scoring.Standard{}, view, fixedClock, staticID).Run("Finn")

	if result.Score != 0 || result.CorrectAnswers != 0 || result.TotalQuestions != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
	if len(view.shownQuestions) != 0 {
		t.Fatalf("no questions should be shown for an empty quiz")
	}
	if result.Percentage() != 0 {
		t.Fatalf("expected 0%%, got %d", result.Percentage())
	}
}
