package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Question is a single scorable prompt with a correctness predicate.
// Implementations are immutable once constructed.
type Question interface {
	ID() string
	Text() string
	Category() string
	Points() int
	Hint() string
	// CheckAnswer reports whether raw answers the question correctly.
	// It is total over arbitrary input: malformed answers are wrong, never an error.
	CheckAnswer(raw string) bool
	// CorrectAnswer returns a display form of the correct answer.
	CorrectAnswer() string
}

type questionBase struct {
	id       string
	text     string
	category string
	points   int
	hint     string
}

func (q questionBase) ID() string       { return q.id }
func (q questionBase) Text() string     { return q.text }
func (q questionBase) Category() string { return q.category }
func (q questionBase) Points() int      { return q.points }
func (q questionBase) Hint() string     { return q.hint }

// MultipleChoice is a question with an ordered list of options, exactly one correct.
type MultipleChoice struct {
	questionBase
	options []string
	correct int
}

// NewMultipleChoice validates and builds a multiple-choice question.
// correctIndex is 0-based into options.
func NewMultipleChoice(id, text, category string, points int, hint string, options []string, correctIndex int) (*MultipleChoice, error) {
	if points < 0 {
		return nil, fmt.Errorf("question %q: negative points %d", id, points)
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("question %q: no options", id)
	}
	if correctIndex < 0 || correctIndex >= len(options) {
		return nil, fmt.Errorf("question %q: correct index %d out of range [0,%d)", id, correctIndex, len(options))
	}
	return &MultipleChoice{
		questionBase: questionBase{id: id, text: text, category: category, points: points, hint: hint},
		options:      append([]string(nil), options...),
		correct:      correctIndex,
	}, nil
}

// Options returns a copy of the option texts in presentation order.
func (q *MultipleChoice) Options() []string {
	return append([]string(nil), q.options...)
}

// CheckAnswer accepts a 1-based option number, or the correct option's text
// (case-insensitive). Anything else is incorrect.
func (q *MultipleChoice) CheckAnswer(raw string) bool {
	answer := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(answer); err == nil {
		return n == q.correct+1
	}
	return strings.EqualFold(answer, q.options[q.correct])
}

func (q *MultipleChoice) CorrectAnswer() string {
	return q.options[q.correct]
}

// TrueFalse is a question with a boolean correct answer.
type TrueFalse struct {
	questionBase
	answer bool
}

func NewTrueFalse(id, text, category string, points int, hint string, answer bool) (*TrueFalse, error) {
	if points < 0 {
		return nil, fmt.Errorf("question %q: negative points %d", id, points)
	}
	return &TrueFalse{
		questionBase: questionBase{id: id, text: text, category: category, points: points, hint: hint},
		answer:       answer,
	}, nil
}

var (
	trueTokens  = map[string]bool{"true": true, "t": true, "yes": true, "y": true, "1": true}
	falseTokens = map[string]bool{"false": true, "f": true, "no": true, "n": true, "0": true}
)

// CheckAnswer normalizes the input and matches it against accepted
// true/false tokens. Unrecognized tokens are incorrect.
func (q *TrueFalse) CheckAnswer(raw string) bool {
	token := strings.ToLower(strings.TrimSpace(raw))
	if q.answer {
		return trueTokens[token]
	}
	return falseTokens[token]
}

func (q *TrueFalse) CorrectAnswer() string {
	return strconv.FormatBool(q.answer)
}
