package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irindex/internal/catalog"
	"irindex/internal/model"
	"irindex/internal/scoring"
)

// In-memory fakes for the repository and cache interfaces

type fakeAssessmentRepo struct {
	byID map[string]*model.Assessment
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{byID: make(map[string]*model.Assessment)}
}

func (r *fakeAssessmentRepo) Create(_ context.Context, a *model.Assessment) error {
	r.byID[a.ID] = a
	return nil
}

func (r *fakeAssessmentRepo) GetByID(_ context.Context, id string) (*model.Assessment, error) {
	return r.byID[id], nil
}

func (r *fakeAssessmentRepo) ListRecent(_ context.Context, limit int64) ([]*model.Assessment, error) {
	var out []*model.Assessment
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

type fakeBenchmarkRepo struct {
	table *model.ReferenceTable
}

func (r *fakeBenchmarkRepo) Get(_ context.Context) (*model.ReferenceTable, error) {
	return r.table, nil
}

func (r *fakeBenchmarkRepo) Replace(_ context.Context, table *model.ReferenceTable) error {
	r.table = table
	return nil
}

type fakeBenchmarkCache struct {
	table *model.ReferenceTable
}

func (c *fakeBenchmarkCache) Get(_ context.Context) (*model.ReferenceTable, error) {
	return c.table, nil
}

func (c *fakeBenchmarkCache) Set(_ context.Context, table *model.ReferenceTable) error {
	c.table = table
	return nil
}

func (c *fakeBenchmarkCache) Invalidate(_ context.Context) error {
	c.table = nil
	return nil
}

type fakeStatsCache struct {
	recorded int
	fail     bool
}

func (c *fakeStatsCache) RecordSubmission(_ context.Context, _ string, _ float64, _ model.Industry) error {
	if c.fail {
		return errors.New("redis down")
	}
	c.recorded++
	return nil
}

func (c *fakeStatsCache) PercentileForScore(_ context.Context, _ float64) (float64, error) {
	return 42.0, nil
}

func (c *fakeStatsCache) SubmissionCount(_ context.Context) (int64, error) {
	return int64(c.recorded), nil
}

func newTestService(t *testing.T, stats *fakeStatsCache) (*AssessmentService, *fakeAssessmentRepo) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	repo := newFakeAssessmentRepo()
	benchmarks := NewBenchmarkService(&fakeBenchmarkRepo{}, &fakeBenchmarkCache{})
	return NewAssessmentService(cat, benchmarks, repo, stats), repo
}

func completeSubmission(cat *catalog.Catalog, value float64) Submission {
	sub := Submission{Industry: "Technology", CompanySize: "enterprise"}
	for _, q := range cat.Questions() {
		sub.Answers = append(sub.Answers, model.Answer{QuestionID: q.ID, Value: value})
	}
	return sub
}

func TestSubmit_StoresSnapshotAndReturnsResult(t *testing.T) {
	stats := &fakeStatsCache{}
	svc, repo := newTestService(t, stats)

	out, err := svc.Submit(context.Background(), completeSubmission(svc.Catalog(), 75))
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.InDelta(t, 75, out.Result.TotalScore, 0.01)
	assert.Equal(t, 42.0, out.Percentile)
	assert.Equal(t, 1, stats.recorded)

	stored := repo.byID[out.ID]
	require.NotNil(t, stored)
	assert.Equal(t, out.Result.TotalScore, stored.IRI)
	assert.Equal(t, out.Result.Level.Level, stored.Level)
	assert.Equal(t, model.IndustryTechnology, stored.Industry)
	assert.Equal(t, model.SizeEnterprise, stored.CompanySize)
	assert.Len(t, stored.PillarScores, 5)
}

func TestSubmit_ValidationErrorPassesThrough(t *testing.T) {
	svc, repo := newTestService(t, &fakeStatsCache{})

	sub := completeSubmission(svc.Catalog(), 50)
	sub.Answers = sub.Answers[:5]

	_, err := svc.Submit(context.Background(), sub)
	var verr *scoring.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, scoring.KindIncomplete, verr.Kind)
	assert.Empty(t, repo.byID, "rejected submission must not be stored")
}

func TestSubmit_UnknownCohortStringsScoreWithoutPreference(t *testing.T) {
	svc, _ := newTestService(t, &fakeStatsCache{})

	sub := completeSubmission(svc.Catalog(), 50)
	sub.Industry = "interpretive dance"
	sub.CompanySize = "several"

	out, err := svc.Submit(context.Background(), sub)
	require.NoError(t, err)
	// both dimensions fall back to the overall average
	assert.Equal(t, out.Result.Benchmark.Overall, out.Result.Benchmark.Industry)
	assert.Equal(t, out.Result.Benchmark.Overall, out.Result.Benchmark.CompanySize)
}

func TestSubmit_StatsOutageIsNotFatal(t *testing.T) {
	svc, _ := newTestService(t, &fakeStatsCache{fail: true})

	out, err := svc.Submit(context.Background(), completeSubmission(svc.Catalog(), 25))
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.Percentile)
}

func TestRescore_RecomputesFromStoredAnswers(t *testing.T) {
	svc, _ := newTestService(t, &fakeStatsCache{})

	out, err := svc.Submit(context.Background(), completeSubmission(svc.Catalog(), 100))
	require.NoError(t, err)

	result, err := svc.Rescore(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.InDelta(t, 100, result.TotalScore, 0.01)

	missing, err := svc.Rescore(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRecentAndStats(t *testing.T) {
	stats := &fakeStatsCache{}
	svc, _ := newTestService(t, stats)

	for _, v := range []float64{25, 50, 75} {
		_, err := svc.Submit(context.Background(), completeSubmission(svc.Catalog(), v))
		require.NoError(t, err)
	}

	recent, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, recent, 3)

	got, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Submissions)
}

func TestBenchmarkService_CacheAside(t *testing.T) {
	repo := &fakeBenchmarkRepo{table: &model.ReferenceTable{
		Overall:    55,
		Industries: map[string]float64{string(model.IndustryRetail): 60},
		Sizes:      map[string]float64{},
	}}
	c := &fakeBenchmarkCache{}
	svc := NewBenchmarkService(repo, c)

	table := svc.Table(context.Background())
	assert.Equal(t, 55.0, table.Overall)
	assert.NotNil(t, c.table, "table should be cached after first load")

	// refresh replaces storage and invalidates the cache
	err := svc.Refresh(context.Background(), &model.ReferenceTable{Overall: 70})
	require.NoError(t, err)
	assert.Nil(t, c.table)
	assert.Equal(t, 70.0, svc.Table(context.Background()).Overall)
}

func TestBenchmarkService_FallsBackToCompiledTable(t *testing.T) {
	svc := NewBenchmarkService(&fakeBenchmarkRepo{}, &fakeBenchmarkCache{})
	table := svc.Table(context.Background())
	require.NotNil(t, table)
	assert.Greater(t, table.Overall, 0.0)
}
