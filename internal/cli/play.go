package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"quiz-engine/internal/app"
	"quiz-engine/internal/config"
	"quiz-engine/internal/domain"
	"quiz-engine/internal/infra/memory"
	pgloader "quiz-engine/internal/infra/postgres"
	redisrepo "quiz-engine/internal/infra/redis"
	"quiz-engine/internal/scoring"
	"quiz-engine/internal/view"
)

// NewPlayCmd builds the subcommand that runs one interactive quiz session.
func NewPlayCmd(configPath *string) *cobra.Command {
	var (
		strategyFlag string
		categoryFlag string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a quiz on the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, strategyFlag, categoryFlag)
		},
	}
	cmd.Flags().StringVar(&strategyFlag, "strategy", "", "scoring strategy (standard|penalty), overrides config")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "only offer quizzes with questions in this category")
	return cmd
}

func runPlay(ctx context.Context, configPath, strategyFlag, categoryFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	strategy, err := strategyFromConfig(cfg, strategyFlag)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	service, cleanup, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	console := view.NewConsole(os.Stdin, os.Stdout)
	log.Printf("scoring strategy: %s (%s)", strategy.Name(), strategy.Description())

	var result domain.QuizResult
	if categoryFlag != "" {
		result, err = service.PlayCategory(ctx, console, strategy, categoryFlag)
	} else {
		result, err = service.Play(ctx, console, strategy)
	}
	if errors.Is(err, domain.ErrNoQuizzes) || errors.Is(err, domain.ErrNoQuizSelected) {
		// already reported through the view; back to the shell without failure
		return nil
	}
	if err != nil {
		return err
	}

	_, err = service.HighScores(ctx, console, result.QuizID, scoreLimit(cfg))
	return err
}

// buildService wires repositories per config: Postgres-backed quiz content and
// a Redis result store when configured, in-memory stores otherwise.
func buildService(ctx context.Context, cfg config.Config) (*app.QuizService, func(), error) {
	quizzes := memory.NewQuizRepository()
	cleanup := func() {}

	var catalog []domain.Quiz
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		cleanup = pool.Close

		catalog, err = pgloader.NewQuizLoader(pool).ListQuizzes(ctx)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
	} else {
		catalog = sampleQuizzes()
	}

	for _, quiz := range catalog {
		if _, err := quizzes.Save(ctx, quiz); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	var results app.ResultRepository = memory.NewResultRepository()
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		prev := cleanup
		cleanup = func() {
			_ = client.Close()
			prev()
		}
		results = redisrepo.NewResultRepository(client)
	}

	return app.NewQuizService(quizzes, results), cleanup, nil
}

func strategyFromConfig(cfg config.Config, override string) (scoring.Strategy, error) {
	name := cfg.Scoring.Strategy
	if override != "" {
		name = override
	}
	fraction := cfg.Scoring.PenaltyFraction
	if fraction == 0 {
		fraction = 0.25
	}
	return scoring.ForName(name, fraction)
}

func scoreLimit(cfg config.Config) int {
	if cfg.Scores.Limit > 0 {
		return cfg.Scores.Limit
	}
	return 10
}

func quizTTL(cfg config.Config) time.Duration {
	return config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
}
