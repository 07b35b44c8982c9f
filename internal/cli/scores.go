package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"quiz-engine/internal/app"
	"quiz-engine/internal/config"
	"quiz-engine/internal/domain"
	"quiz-engine/internal/infra/memory"
	pgloader "quiz-engine/internal/infra/postgres"
	redisrepo "quiz-engine/internal/infra/redis"
	"quiz-engine/internal/view"
)

// NewScoresCmd builds the subcommand that prints the top scores for a quiz.
func NewScoresCmd(configPath *string) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "scores <quiz-id>",
		Short: "Show the high scores for a quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScores(cmd.Context(), *configPath, args[0], limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "number of scores to show, overrides config")
	return cmd
}

func runScores(ctx context.Context, configPath, quizID string, limitFlag int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	limit := limitFlag
	if limit <= 0 {
		limit = scoreLimit(cfg)
	}

	quizzes := memory.NewQuizRepository()
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()

		// Read the quiz through the TTL cache so repeated score lookups in one
		// process don't re-hit Postgres.
		cache := memory.NewQuizCache(pgloader.NewQuizLoader(pool), quizTTL(cfg))
		quiz, err := cache.LoadQuiz(ctx, quizID)
		if errors.Is(err, domain.ErrQuizNotFound) {
			view.NewConsole(os.Stdin, os.Stdout).ShowError(fmt.Sprintf("unknown quiz %q", quizID))
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := quizzes.Save(ctx, quiz); err != nil {
			return err
		}
	} else {
		for _, quiz := range sampleQuizzes() {
			if _, err := quizzes.Save(ctx, quiz); err != nil {
				return err
			}
		}
	}

	var results app.ResultRepository = memory.NewResultRepository()
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		results = redisrepo.NewResultRepository(client)
	}

	console := view.NewConsole(os.Stdin, os.Stdout)
	service := app.NewQuizService(quizzes, results)
	_, err = service.HighScores(ctx, console, quizID, limit)
	if errors.Is(err, domain.ErrQuizNotFound) {
		console.ShowError(fmt.Sprintf("unknown quiz %q", quizID))
		return nil
	}
	return err
}
