package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"quiz-engine/internal/domain"
)

// ResultRepository stores quiz results in Redis. Each result is a JSON string
// under result:{id}; per-quiz rankings live in a sorted set keyed by score so
// TopScores is a plain ZREVRANGE. Secondary indexes:
//
//	SADD results:all            {resultID}
//	ZADD results:quiz:{quizID}  {score} {resultID}
//	SADD results:player:{name}  {resultID}   (name lowercased)
type ResultRepository struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) *ResultRepository {
	return &ResultRepository{client: client}
}

// Save upserts the result. A re-save under the same id first drops the old
// index entries in case the quiz, player or score changed.
func (r *ResultRepository) Save(ctx context.Context, result domain.QuizResult) (domain.QuizResult, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return domain.QuizResult{}, fmt.Errorf("marshal result: %w", err)
	}

	if old, err := r.FindByID(ctx, result.ID); err == nil {
		if err := r.removeIndexes(ctx, old); err != nil {
			return domain.QuizResult{}, err
		}
	} else if !errors.Is(err, domain.ErrResultNotFound) {
		return domain.QuizResult{}, err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, resultKey(result.ID), data, 0)
	pipe.SAdd(ctx, allKey, result.ID)
	pipe.ZAdd(ctx, quizKey(result.QuizID), redis.Z{Score: float64(result.Score), Member: result.ID})
	pipe.SAdd(ctx, playerKey(result.PlayerName), result.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return domain.QuizResult{}, fmt.Errorf("save result: %w", err)
	}
	return result, nil
}

func (r *ResultRepository) FindByID(ctx context.Context, id string) (domain.QuizResult, error) {
	data, err := r.client.Get(ctx, resultKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.QuizResult{}, domain.ErrResultNotFound
	}
	if err != nil {
		return domain.QuizResult{}, fmt.Errorf("get result: %w", err)
	}
	var result domain.QuizResult
	if err := json.Unmarshal(data, &result); err != nil {
		return domain.QuizResult{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return result, nil
}

func (r *ResultRepository) FindAll(ctx context.Context) ([]domain.QuizResult, error) {
	ids, err := r.client.SMembers(ctx, allKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return r.fetch(ctx, ids)
}

// DeleteByID removes the result and its index entries; a missing id is a no-op.
func (r *ResultRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.FindByID(ctx, id)
	if errors.Is(err, domain.ErrResultNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := r.removeIndexes(ctx, result); err != nil {
		return err
	}
	if err := r.client.Del(ctx, resultKey(id)).Err(); err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	return nil
}

func (r *ResultRepository) Count(ctx context.Context) (int, error) {
	n, err := r.client.SCard(ctx, allKey).Result()
	if err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return int(n), nil
}

func (r *ResultRepository) FindByQuizID(ctx context.Context, quizID string) ([]domain.QuizResult, error) {
	ids, err := r.client.ZRange(ctx, quizKey(quizID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("results by quiz: %w", err)
	}
	return r.fetch(ctx, ids)
}

func (r *ResultRepository) FindByPlayerName(ctx context.Context, name string) ([]domain.QuizResult, error) {
	ids, err := r.client.SMembers(ctx, playerKey(name)).Result()
	if err != nil {
		return nil, fmt.Errorf("results by player: %w", err)
	}
	return r.fetch(ctx, ids)
}

// TopScores returns the quiz's results by score descending. Equal scores come
// back in Redis member order, which is implementation-defined for this contract.
func (r *ResultRepository) TopScores(ctx context.Context, quizID string, limit int) ([]domain.QuizResult, error) {
	if limit <= 0 {
		return nil, nil
	}
	ids, err := r.client.ZRevRange(ctx, quizKey(quizID), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}
	return r.fetch(ctx, ids)
}

func (r *ResultRepository) fetch(ctx context.Context, ids []string) ([]domain.QuizResult, error) {
	results := make([]domain.QuizResult, 0, len(ids))
	for _, id := range ids {
		result, err := r.FindByID(ctx, id)
		if errors.Is(err, domain.ErrResultNotFound) {
			// index entry raced a delete; skip
			continue
		}
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *ResultRepository) removeIndexes(ctx context.Context, result domain.QuizResult) error {
	pipe := r.client.Pipeline()
	pipe.SRem(ctx, allKey, result.ID)
	pipe.ZRem(ctx, quizKey(result.QuizID), result.ID)
	pipe.SRem(ctx, playerKey(result.PlayerName), result.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("unindex result: %w", err)
	}
	return nil
}

const allKey = "results:all"

func resultKey(id string) string { return "result:" + id }

func quizKey(quizID string) string { return "results:quiz:" + quizID }

func playerKey(name string) string { return "results:player:" + strings.ToLower(name) }
