package view

import (
	"strings"
	"testing"

	"quiz-engine/internal/domain"
)

func TestConsolePromptSelectQuiz(t *testing.T) {
	quizzes := []domain.Quiz{
		domain.NewQuiz("quiz-1", "First", "", nil),
		domain.NewQuiz("quiz-2", "Second", "", nil),
	}

	var out strings.Builder
	console := NewConsole(strings.NewReader("2\n"), &out)
	quiz, ok := console.PromptSelectQuiz(quizzes)
	if !ok || quiz.ID() != "quiz-2" {
		t.Fatalf("expected quiz-2 selected, got %v ok=%v", quiz.ID(), ok)
	}
	if !strings.Contains(out.String(), "1. First") {
		t.Fatalf("menu not rendered: %q", out.String())
	}

	for _, input := range []string{"\n", "0\n", "3\n", "nope\n", ""} {
		console := NewConsole(strings.NewReader(input), &strings.Builder{})
		if _, ok := console.PromptSelectQuiz(quizzes); ok {
			t.Fatalf("input %q should decline selection", input)
		}
	}
}

func TestConsolePromptsTrimInput(t *testing.T) {
	console := NewConsole(strings.NewReader("  Alice  \n y \n 2 \n"), &strings.Builder{})
	if name := console.PromptPlayerName(); name != "Alice" {
		t.Fatalf("expected trimmed name, got %q", name)
	}
	if !console.PromptUseHint() {
		t.Fatalf("expected y to accept the hint")
	}
	if answer := console.PromptAnswer(); answer != "2" {
		t.Fatalf("expected trimmed answer, got %q", answer)
	}
}

func TestConsoleShowsMultipleChoiceOptions(t *testing.T) {
	mc, err := domain.NewMultipleChoice("q1", "Pick one", "", 10, "", []string{"alpha", "beta"}, 0)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}

	var out strings.Builder
	NewConsole(strings.NewReader(""), &out).ShowQuestion(mc, 1, 3)

	rendered := out.String()
	for _, want := range []string{"Question 1/3", "Pick one", "1. alpha", "2. beta"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("missing %q in %q", want, rendered)
		}
	}
}

func TestConsoleAnswerFeedback(t *testing.T) {
	var out strings.Builder
	console := NewConsole(strings.NewReader(""), &out)

	console.ShowAnswerFeedback(true, "Paris", 10)
	console.ShowAnswerFeedback(false, "Paris", -2)

	rendered := out.String()
	if !strings.Contains(rendered, "Correct! (+10 points)") {
		t.Fatalf("missing correct feedback: %q", rendered)
	}
	if !strings.Contains(rendered, "Paris") || !strings.Contains(rendered, "-2") {
		t.Fatalf("missing wrong feedback: %q", rendered)
	}
}
