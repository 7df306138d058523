package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"irindex/internal/model"
)

// benchmarkKey holds the serialized live reference table
const benchmarkKey = "benchmark:table"

// BenchmarkCache handles Redis caching of the benchmark reference table
type BenchmarkCache interface {
	Get(ctx context.Context) (*model.ReferenceTable, error)
	Set(ctx context.Context, table *model.ReferenceTable) error
	Invalidate(ctx context.Context) error
}

type benchmarkCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBenchmarkCache creates a new benchmark cache
func NewBenchmarkCache(client *redis.Client) BenchmarkCache {
	return &benchmarkCache{
		client: client,
		ttl:    12 * time.Hour,
	}
}

func (c *benchmarkCache) Get(ctx context.Context) (*model.ReferenceTable, error) {
	data, err := c.client.Get(ctx, benchmarkKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var table model.ReferenceTable
	if err := json.Unmarshal([]byte(data), &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *benchmarkCache) Set(ctx context.Context, table *model.ReferenceTable) error {
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, benchmarkKey, data, c.ttl).Err()
}

func (c *benchmarkCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, benchmarkKey).Err()
}
