package app

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"quiz-engine/internal/domain"
	"quiz-engine/internal/scoring"
)

// AnonymousPlayer is the player name used when the view returns a blank name.
const AnonymousPlayer = "Anonymous"

// SessionState tracks the session lifecycle.
type SessionState int

const (
	StateNotStarted SessionState = iota
	StateInProgress
	StateCompleted
)

// Session drives one player through one quiz: it presents each question
// through the view in quiz order, checks the answer, scores it with the
// active strategy, and assembles one immutable result at the end.
type Session struct {
	quiz     domain.Quiz
	strategy scoring.Strategy
	view     View

	state      SessionState
	playerName string
	score      int
	correct    int
	answers    []domain.AnswerRecord

	now   func() time.Time
	newID func() string
}

func NewSession(quiz domain.Quiz, strategy scoring.Strategy, view View) *Session {
	return NewSessionWithClock(quiz, strategy, view, time.Now, uuid.NewString)
}

// NewSessionWithClock allows deterministic timestamps and result ids in tests.
func NewSessionWithClock(quiz domain.Quiz, strategy scoring.Strategy, view View, now func() time.Time, newID func() string) *Session {
	return &Session{
		quiz:     quiz,
		strategy: strategy,
		view:     view,
		state:    StateNotStarted,
		now:      now,
		newID:    newID,
	}
}

func (s *Session) State() SessionState { return s.state }

// Run executes the whole session synchronously and returns the completed
// result. There is no failure path inside the loop: malformed answers simply
// count as incorrect. A zero-question quiz completes immediately.
func (s *Session) Run(playerName string) domain.QuizResult {
	s.playerName = strings.TrimSpace(playerName)
	if s.playerName == "" {
		s.playerName = AnonymousPlayer
	}
	s.state = StateInProgress

	questions := s.quiz.Questions()
	for i, question := range questions {
		s.askQuestion(question, i+1, len(questions))
	}

	s.state = StateCompleted
	return domain.QuizResult{
		ID:             s.newID(),
		QuizID:         s.quiz.ID(),
		PlayerName:     s.playerName,
		Score:          s.score,
		TotalPossible:  s.quiz.TotalPoints(),
		CorrectAnswers: s.correct,
		TotalQuestions: s.quiz.QuestionCount(),
		CompletedAt:    s.now(),
		Answers:        append([]domain.AnswerRecord(nil), s.answers...),
	}
}

func (s *Session) askQuestion(question domain.Question, position, total int) {
	s.view.ShowQuestion(question, position, total)

	if question.Hint() != "" && s.view.PromptUseHint() {
		s.view.ShowMessage(question.Hint())
	}

	answer := s.view.PromptAnswer()
	correct := question.CheckAnswer(answer)
	points := s.strategy.Score(question, answer, correct)

	s.answers = append(s.answers, domain.AnswerRecord{
		QuestionID:   question.ID(),
		GivenAnswer:  answer,
		Correct:      correct,
		PointsEarned: points,
	})
	s.score += points
	if correct {
		s.correct++
	}

	s.view.ShowAnswerFeedback(correct, question.CorrectAnswer(), points)
}
