package app

import "quiz-engine/internal/domain"

// View is the interaction boundary the session drives. The engine behaves
// identically whether it is a terminal, a GUI, or a scripted test double.
type View interface {
	ShowQuestion(question domain.Question, position, total int)
	// PromptUseHint asks whether to reveal the hint. Using a hint never
	// affects scoring.
	PromptUseHint() bool
	ShowMessage(message string)
	PromptAnswer() string
	ShowAnswerFeedback(correct bool, correctAnswer string, pointsEarned int)
	// PromptSelectQuiz returns the chosen quiz, or ok=false when the player
	// declines to pick one.
	PromptSelectQuiz(quizzes []domain.Quiz) (quiz domain.Quiz, ok bool)
	PromptPlayerName() string
	ShowQuizResult(result domain.QuizResult)
	ShowHighScores(results []domain.QuizResult, quizTitle string)
	ShowError(message string)
}
