package domain

import (
	"encoding/json"
	"fmt"
)

// Question kind tags used in stored quiz JSON.
const (
	kindMultipleChoice = "multiple_choice"
	kindTrueFalse      = "true_false"
)

type quizEnvelope struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Questions   []questionEnvelope `json:"questions"`
}

type questionEnvelope struct {
	Kind         string   `json:"kind"`
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Category     string   `json:"category,omitempty"`
	Points       int      `json:"points"`
	Hint         string   `json:"hint,omitempty"`
	Options      []string `json:"options,omitempty"`
	CorrectIndex int      `json:"correctIndex,omitempty"`
	Answer       bool     `json:"answer,omitempty"`
}

// MarshalQuiz encodes a quiz, tagging each question with its kind.
func MarshalQuiz(quiz Quiz) ([]byte, error) {
	env := quizEnvelope{
		ID:          quiz.ID(),
		Title:       quiz.Title(),
		Description: quiz.Description(),
		Questions:   make([]questionEnvelope, 0, quiz.QuestionCount()),
	}
	for _, question := range quiz.Questions() {
		qe := questionEnvelope{
			ID:       question.ID(),
			Text:     question.Text(),
			Category: question.Category(),
			Points:   question.Points(),
			Hint:     question.Hint(),
		}
		switch q := question.(type) {
		case *MultipleChoice:
			qe.Kind = kindMultipleChoice
			qe.Options = q.Options()
			qe.CorrectIndex = q.correct
		case *TrueFalse:
			qe.Kind = kindTrueFalse
			qe.Answer = q.answer
		default:
			return nil, fmt.Errorf("question %q: %w", question.ID(), ErrUnknownQuestionType)
		}
		env.Questions = append(env.Questions, qe)
	}
	return json.Marshal(env)
}

// UnmarshalQuiz decodes stored quiz JSON, running the question constructors so
// corrupt data (out-of-range index, empty options) fails here rather than mid-session.
func UnmarshalQuiz(data []byte) (Quiz, error) {
	var env quizEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Quiz{}, fmt.Errorf("decode quiz: %w", err)
	}

	questions := make([]Question, 0, len(env.Questions))
	for _, qe := range env.Questions {
		var (
			question Question
			err      error
		)
		switch qe.Kind {
		case kindMultipleChoice:
			question, err = NewMultipleChoice(qe.ID, qe.Text, qe.Category, qe.Points, qe.Hint, qe.Options, qe.CorrectIndex)
		case kindTrueFalse:
			question, err = NewTrueFalse(qe.ID, qe.Text, qe.Category, qe.Points, qe.Hint, qe.Answer)
		default:
			err = fmt.Errorf("question %q: kind %q: %w", qe.ID, qe.Kind, ErrUnknownQuestionType)
		}
		if err != nil {
			return Quiz{}, err
		}
		questions = append(questions, question)
	}

	return NewQuiz(env.ID, env.Title, env.Description, questions), nil
}
