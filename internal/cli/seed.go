package cli

import "quiz-engine/internal/domain"

// sampleQuizzes provides built-in quiz content for running without Postgres.
func sampleQuizzes() []domain.Quiz {
	return []domain.Quiz{
		domain.NewQuiz("go-basics", "Go Basics", "Syntax and built-ins of the Go language", []domain.Question{
			mustQuestion(domain.NewMultipleChoice(
				"go-basics-q1",
				"Which keyword declares a variable with inferred type?",
				"go", 10,
				"It is also used inside if and for statements.",
				[]string{"var", ":=", "let", "def"}, 1,
			)),
			mustQuestion(domain.NewMultipleChoice(
				"go-basics-q2",
				"What does `len` return for a nil slice?",
				"go", 10,
				"nil slices behave like empty slices for reads.",
				[]string{"a panic", "0", "-1", "undefined"}, 1,
			)),
			mustQuestion(domain.NewTrueFalse(
				"go-basics-q3",
				"A map read on a nil map panics.",
				"go", 5,
				"Only writes panic on nil maps.",
				false,
			)),
		}),
		domain.NewQuiz("networking", "Networking 101", "Protocols, ports and packets", []domain.Question{
			mustQuestion(domain.NewMultipleChoice(
				"networking-q1",
				"Which port does HTTPS use by default?",
				"networking", 10,
				"One more than 442.",
				[]string{"80", "8080", "443", "22"}, 2,
			)),
			mustQuestion(domain.NewTrueFalse(
				"networking-q2",
				"UDP guarantees in-order delivery.",
				"networking", 5,
				"",
				false,
			)),
		}),
	}
}

// mustQuestion panics on a constructor error: the built-in seed failing
// validation means corrupt seed data, the one fatal error class.
func mustQuestion(q domain.Question, err error) domain.Question {
	if err != nil {
		panic(err)
	}
	return q
}
