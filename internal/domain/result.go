package domain

import "time"

// AnswerRecord captures one question's given answer, correctness and points earned.
// PointsEarned may be negative under penalty scoring.
type AnswerRecord struct {
	QuestionID   string `json:"questionId"`
	GivenAnswer  string `json:"givenAnswer"`
	Correct      bool   `json:"correct"`
	PointsEarned int    `json:"pointsEarned"`
}

// QuizResult is an immutable snapshot of one completed quiz session.
type QuizResult struct {
	ID             string         `json:"id"`
	QuizID         string         `json:"quizId"`
	PlayerName     string         `json:"playerName"`
	Score          int            `json:"score"`
	TotalPossible  int            `json:"totalPossible"`
	CorrectAnswers int            `json:"correctAnswers"`
	TotalQuestions int            `json:"totalQuestions"`
	CompletedAt    time.Time      `json:"completedAt"`
	Answers        []AnswerRecord `json:"answers"`
}

// Percentage is the score as a percentage of the total possible points.
// A quiz with no scorable points yields 0, not a division fault.
func (r QuizResult) Percentage() int {
	if r.TotalPossible <= 0 {
		return 0
	}
	return r.Score * 100 / r.TotalPossible
}

// Grade maps the percentage onto letter grades: A >=90, B >=80, C >=70, D >=60, else F.
func (r QuizResult) Grade() string {
	switch p := r.Percentage(); {
	case p >= 90:
		return "A"
	case p >= 80:
		return "B"
	case p >= 70:
		return "C"
	case p >= 60:
		return "D"
	default:
		return "F"
	}
}
