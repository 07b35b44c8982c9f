package domain

import "errors"

var (
	// ErrQuizNotFound indicates the quiz could not be located in the store.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrResultNotFound indicates a quiz result id is unknown to the store.
	ErrResultNotFound = errors.New("quiz result not found")
	// ErrNoQuizzes is reported when the catalog has nothing to play.
	ErrNoQuizzes = errors.New("no quizzes available")
	// ErrNoQuizSelected is reported when the player declines to pick a quiz.
	ErrNoQuizSelected = errors.New("no quiz selected")
	// ErrUnknownQuestionType indicates stored quiz data with an unrecognized question kind.
	ErrUnknownQuestionType = errors.New("unknown question type")
)
