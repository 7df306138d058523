package service

import (
	"context"
	"fmt"
	"log"

	"irindex/internal/benchmark"
	"irindex/internal/cache"
	"irindex/internal/model"
	"irindex/internal/repository"
)

// BenchmarkService serves the live benchmark reference table through a
// cache-aside path: Redis, then Mongo, then the compiled-in snapshot. A
// missing or unreachable table degrades to the default rather than failing;
// benchmarks are context, not the primary result.
type BenchmarkService struct {
	repo  repository.BenchmarkRepo
	cache cache.BenchmarkCache
}

// NewBenchmarkService creates a new benchmark service
func NewBenchmarkService(repo repository.BenchmarkRepo, c cache.BenchmarkCache) *BenchmarkService {
	return &BenchmarkService{repo: repo, cache: c}
}

// Resolver returns a resolver over the freshest table available
func (s *BenchmarkService) Resolver(ctx context.Context) *benchmark.Resolver {
	return benchmark.NewResolver(s.table(ctx))
}

// Table returns the current reference table (never nil)
func (s *BenchmarkService) Table(ctx context.Context) *model.ReferenceTable {
	if t := s.table(ctx); t != nil {
		return t
	}
	return benchmark.DefaultTable()
}

func (s *BenchmarkService) table(ctx context.Context) *model.ReferenceTable {
	if table, err := s.cache.Get(ctx); err != nil {
		log.Printf("benchmark cache read: %v", err)
	} else if table != nil {
		return table
	}

	table, err := s.repo.Get(ctx)
	if err != nil {
		log.Printf("benchmark table load: %v", err)
		return nil
	}
	if table == nil {
		return nil
	}
	if err := s.cache.Set(ctx, table); err != nil {
		log.Printf("benchmark cache write: %v", err)
	}
	return table
}

// Refresh replaces the stored reference table and invalidates the cache.
// The offline research-report import calls this.
func (s *BenchmarkService) Refresh(ctx context.Context, table *model.ReferenceTable) error {
	if err := s.repo.Replace(ctx, table); err != nil {
		return fmt.Errorf("replace benchmark table: %w", err)
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("benchmark cache invalidate: %v", err)
	}
	return nil
}
