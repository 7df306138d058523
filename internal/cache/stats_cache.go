package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"irindex/internal/model"
)

// StatsCache tracks running submission statistics in Redis: a score ZSET for
// percentile ranking and per-cohort counters. Advisory data only; callers
// treat errors here as non-fatal.
type StatsCache interface {
	RecordSubmission(ctx context.Context, assessmentID string, score float64, industry model.Industry) error
	PercentileForScore(ctx context.Context, score float64) (float64, error)
	SubmissionCount(ctx context.Context) (int64, error)
}

type statsCache struct {
	client *redis.Client
}

// NewStatsCache creates a new stats cache
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{client: client}
}

func (c *statsCache) scoresKey() string {
	return "stats:scores"
}

func (c *statsCache) industryKey(ind model.Industry) string {
	return fmt.Sprintf("stats:industry:%s:count", ind)
}

func (c *statsCache) RecordSubmission(ctx context.Context, assessmentID string, score float64, industry model.Industry) error {
	pipe := c.client.TxPipeline()
	pipe.ZAdd(ctx, c.scoresKey(), redis.Z{Score: score, Member: assessmentID})
	if industry != "" {
		pipe.Incr(ctx, c.industryKey(industry))
	}
	_, err := pipe.Exec(ctx)
	return err
}

// PercentileForScore returns the share of recorded submissions scoring below
// the given index, as a 0-100 percentile
func (c *statsCache) PercentileForScore(ctx context.Context, score float64) (float64, error) {
	total, err := c.client.ZCard(ctx, c.scoresKey()).Result()
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	below, err := c.client.ZCount(ctx, c.scoresKey(), "-inf", fmt.Sprintf("(%f", score)).Result()
	if err != nil {
		return 0, err
	}
	return float64(below) / float64(total) * 100, nil
}

func (c *statsCache) SubmissionCount(ctx context.Context) (int64, error) {
	return c.client.ZCard(ctx, c.scoresKey()).Result()
}
