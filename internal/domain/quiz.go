package domain

import "strings"

// Quiz is an ordered, immutable collection of questions.
// A quiz with zero questions is legal and has zero total points.
type Quiz struct {
	id          string
	title       string
	description string
	questions   []Question
}

func NewQuiz(id, title, description string, questions []Question) Quiz {
	return Quiz{
		id:          id,
		title:       title,
		description: description,
		questions:   append([]Question(nil), questions...),
	}
}

func (q Quiz) ID() string          { return q.id }
func (q Quiz) Title() string       { return q.title }
func (q Quiz) Description() string { return q.description }

// Questions returns the questions in presentation order.
func (q Quiz) Questions() []Question {
	return append([]Question(nil), q.questions...)
}

func (q Quiz) QuestionCount() int { return len(q.questions) }

// TotalPoints sums the points of all questions.
func (q Quiz) TotalPoints() int {
	total := 0
	for _, question := range q.questions {
		total += question.Points()
	}
	return total
}

// HasCategory reports whether any question carries the category (case-insensitive).
func (q Quiz) HasCategory(category string) bool {
	for _, question := range q.questions {
		if strings.EqualFold(question.Category(), category) {
			return true
		}
	}
	return false
}
