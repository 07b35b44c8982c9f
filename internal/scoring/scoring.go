package scoring

import (
	"fmt"

	"quiz-engine/internal/domain"
)

// Strategy converts an answer's correctness into a point delta.
// Implementations are stateless (or parameterized at construction) and safe
// to share across sessions. Negative deltas are legal and propagate as-is.
type Strategy interface {
	Score(question domain.Question, answer string, correct bool) int
	Name() string
	Description() string
}

// Standard awards the question's points when correct, zero otherwise.
type Standard struct{}

func (Standard) Score(question domain.Question, _ string, correct bool) int {
	if correct {
		return question.Points()
	}
	return 0
}

func (Standard) Name() string        { return "standard" }
func (Standard) Description() string { return "Full points for correct answers, no penalty." }

// Penalty awards full points when correct and deducts a fraction of the
// question's points otherwise. The deduction truncates toward zero, so a
// 10-point question at fraction 0.25 costs exactly 2 points.
type Penalty struct {
	Fraction float64
}

func (p Penalty) Score(question domain.Question, _ string, correct bool) int {
	if correct {
		return question.Points()
	}
	return int(-float64(question.Points()) * p.Fraction)
}

func (p Penalty) Name() string { return "penalty" }

func (p Penalty) Description() string {
	return fmt.Sprintf("Full points for correct answers, %.0f%% penalty for wrong ones.", p.Fraction*100)
}

// ForName resolves a strategy from its configured name.
func ForName(name string, penaltyFraction float64) (Strategy, error) {
	switch name {
	case "", "standard":
		return Standard{}, nil
	case "penalty":
		return Penalty{Fraction: penaltyFraction}, nil
	default:
		return nil, fmt.Errorf("unknown scoring strategy %q", name)
	}
}
