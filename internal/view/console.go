package view

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quiz-engine/internal/domain"
)

// Console renders the quiz interaction on a terminal. It reads from in and
// writes to out so tests can script it with buffers.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) ShowQuestion(question domain.Question, position, total int) {
	fmt.Fprintf(c.out, "\nQuestion %d/%d (%d points)\n%s\n", position, total, question.Points(), question.Text())
	if mc, ok := question.(*domain.MultipleChoice); ok {
		for i, option := range mc.Options() {
			fmt.Fprintf(c.out, "  %d. %s\n", i+1, option)
		}
	}
}

func (c *Console) PromptUseHint() bool {
	fmt.Fprint(c.out, "Use hint? (y/n): ")
	answer := strings.ToLower(c.readLine())
	return answer == "y" || answer == "yes"
}

func (c *Console) ShowMessage(message string) {
	fmt.Fprintf(c.out, "Hint: %s\n", message)
}

func (c *Console) PromptAnswer() string {
	fmt.Fprint(c.out, "Your answer: ")
	return c.readLine()
}

func (c *Console) ShowAnswerFeedback(correct bool, correctAnswer string, pointsEarned int) {
	if correct {
		fmt.Fprintf(c.out, "Correct! (+%d points)\n", pointsEarned)
		return
	}
	fmt.Fprintf(c.out, "Wrong. The correct answer was: %s (%+d points)\n", correctAnswer, pointsEarned)
}

func (c *Console) PromptSelectQuiz(quizzes []domain.Quiz) (domain.Quiz, bool) {
	fmt.Fprintln(c.out, "\nAvailable quizzes:")
	for i, quiz := range quizzes {
		fmt.Fprintf(c.out, "  %d. %s - %s (%d questions, %d points)\n",
			i+1, quiz.Title(), quiz.Description(), quiz.QuestionCount(), quiz.TotalPoints())
	}
	fmt.Fprint(c.out, "Pick a quiz: ")

	n, err := strconv.Atoi(c.readLine())
	if err != nil || n < 1 || n > len(quizzes) {
		return domain.Quiz{}, false
	}
	return quizzes[n-1], true
}

func (c *Console) PromptPlayerName() string {
	fmt.Fprint(c.out, "Player name: ")
	return c.readLine()
}

func (c *Console) ShowQuizResult(result domain.QuizResult) {
	fmt.Fprintf(c.out, "\n%s scored %d/%d (%d%%, grade %s) with %d of %d correct.\n",
		result.PlayerName, result.Score, result.TotalPossible,
		result.Percentage(), result.Grade(), result.CorrectAnswers, result.TotalQuestions)
}

func (c *Console) ShowHighScores(results []domain.QuizResult, quizTitle string) {
	fmt.Fprintf(c.out, "\nHigh scores for %s:\n", quizTitle)
	if len(results) == 0 {
		fmt.Fprintln(c.out, "  (no results yet)")
		return
	}
	for i, result := range results {
		fmt.Fprintf(c.out, "  %d. %s - %d points (%s) on %s\n",
			i+1, result.PlayerName, result.Score, result.Grade(),
			result.CompletedAt.Format("2006-01-02 15:04"))
	}
}

func (c *Console) ShowError(message string) {
	fmt.Fprintf(c.out, "Error: %s\n", message)
}

func (c *Console) readLine() string {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
