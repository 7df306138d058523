package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"irindex/internal/benchmark"
	"irindex/internal/cache"
	"irindex/internal/catalog"
	"irindex/internal/model"
	"irindex/internal/repository"
	"irindex/internal/scoring"
)

// Submission is a raw assessment as the form sends it: answers plus
// free-text organization metadata
type Submission struct {
	Answers     []model.Answer `json:"answers"`
	Industry    string         `json:"industry,omitempty"`
	CompanySize string         `json:"companySize,omitempty"`
}

// SubmissionResult pairs the stored id with the computed result
type SubmissionResult struct {
	ID         string                  `json:"id"`
	CreatedAt  time.Time               `json:"createdAt"`
	Result     *model.AssessmentResult `json:"result"`
	Percentile float64                 `json:"percentile"` // share of prior submissions scoring lower
}

// AssessmentService runs the scoring engine over submissions and persists
// the results
type AssessmentService struct {
	cat        *catalog.Catalog
	benchmarks *BenchmarkService
	repo       repository.AssessmentRepo
	stats      cache.StatsCache
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	cat *catalog.Catalog,
	benchmarks *BenchmarkService,
	repo repository.AssessmentRepo,
	stats cache.StatsCache,
) *AssessmentService {
	return &AssessmentService{
		cat:        cat,
		benchmarks: benchmarks,
		repo:       repo,
		stats:      stats,
	}
}

// Submit normalizes the cohort strings, scores the answers, and stores a
// snapshot. Validation errors from the engine pass through unchanged so the
// transport layer can map them; unrecognized industry/size strings are not
// errors and simply score without a cohort preference.
func (s *AssessmentService) Submit(ctx context.Context, sub Submission) (*SubmissionResult, error) {
	industry, _ := benchmark.NormalizeIndustry(sub.Industry)
	size, _ := benchmark.NormalizeCompanySize(sub.CompanySize)

	engine := scoring.NewEngine(s.cat, s.benchmarks.Resolver(ctx))
	result, err := engine.Calculate(model.AssessmentInput{
		Answers:     sub.Answers,
		Industry:    industry,
		CompanySize: size,
	})
	if err != nil {
		return nil, err
	}

	assessment := &model.Assessment{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Industry:     industry,
		CompanySize:  size,
		Answers:      sub.Answers,
		PillarScores: result.PillarBreakdown,
		IRI:          result.TotalScore,
		Level:        result.Level.Level,
	}
	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("store assessment: %w", err)
	}

	// stats are advisory; a cache outage must not fail the submission
	percentile := 0.0
	if err := s.stats.RecordSubmission(ctx, assessment.ID, result.TotalScore, industry); err != nil {
		log.Printf("record submission stats: %v", err)
	} else if p, err := s.stats.PercentileForScore(ctx, result.TotalScore); err == nil {
		percentile = p
	}

	return &SubmissionResult{
		ID:         assessment.ID,
		CreatedAt:  assessment.CreatedAt,
		Result:     result,
		Percentile: percentile,
	}, nil
}

// Get returns a stored assessment snapshot, or nil when unknown
func (s *AssessmentService) Get(ctx context.Context, id string) (*model.Assessment, error) {
	return s.repo.GetByID(ctx, id)
}

// Recent returns the latest stored assessments, newest first
func (s *AssessmentService) Recent(ctx context.Context, limit int64) ([]*model.Assessment, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListRecent(ctx, limit)
}

// Stats summarizes the recorded submission population
type Stats struct {
	Submissions int64 `json:"submissions"`
}

// Stats reads the running submission counters. Counter unavailability is an
// error here, unlike during Submit, because stats are the whole response.
func (s *AssessmentService) Stats(ctx context.Context) (*Stats, error) {
	n, err := s.stats.SubmissionCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("submission count: %w", err)
	}
	return &Stats{Submissions: n}, nil
}

// Rescore recomputes the full result for a stored assessment against the
// current catalog and benchmark table. Report renderers use this to show a
// fresh benchmark comparison for an old submission.
func (s *AssessmentService) Rescore(ctx context.Context, id string) (*model.AssessmentResult, error) {
	assessment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, nil
	}

	engine := scoring.NewEngine(s.cat, s.benchmarks.Resolver(ctx))
	return engine.Calculate(model.AssessmentInput{
		Answers:     assessment.Answers,
		Industry:    assessment.Industry,
		CompanySize: assessment.CompanySize,
	})
}

// Catalog exposes the questionnaire definition for the UI payload
func (s *AssessmentService) Catalog() *catalog.Catalog {
	return s.cat
}
