// Package scoring computes the Insider Risk Index: a deterministic weighted
// aggregation of questionnaire answers into pillar scores, an overall 0-100
// index, a maturity level, and benchmark context. It performs no I/O and
// holds no mutable state, so concurrent calls are safe.
package scoring

import (
	"math"
	"sort"

	"irindex/internal/benchmark"
	"irindex/internal/catalog"
	"irindex/internal/model"
)

// Engine scores assessments against one catalog and one benchmark resolver
type Engine struct {
	cat   *catalog.Catalog
	bench *benchmark.Resolver
}

// NewEngine creates a scoring engine
func NewEngine(cat *catalog.Catalog, bench *benchmark.Resolver) *Engine {
	return &Engine{cat: cat, bench: bench}
}

// Calculate validates the answer set and computes the full assessment
// result. Every catalog question must be answered exactly once with one of
// its declared option values; anything else returns a *ValidationError and
// no result — a partial score would silently bias the weighted average
// toward whichever pillars happened to be answered.
func (e *Engine) Calculate(input model.AssessmentInput) (*model.AssessmentResult, error) {
	byQuestion, err := e.indexAnswers(input.Answers)
	if err != nil {
		return nil, err
	}

	pillars := e.cat.Pillars()
	breakdown := make([]model.PillarBreakdown, 0, len(pillars))
	total := 0.0
	for _, p := range pillars {
		raw, max := 0.0, 0.0
		for _, q := range e.cat.QuestionsForPillar(p.ID) {
			ans := byQuestion[q.ID]
			raw += ans.Value * q.Weight
			max += 100 * q.Weight
		}
		// max is exactly 100 for any valid catalog; the guard covers a
		// degenerate pillar with no weight
		score := 0.0
		if max > 0 {
			score = raw / max * 100
		}
		contribution := score * p.Weight
		breakdown = append(breakdown, model.PillarBreakdown{
			PillarID:            p.ID,
			Score:               round2(score),
			Weight:              p.Weight,
			ContributionToTotal: round2(contribution),
			MaxScore:            100,
		})
		total += contribution
	}
	totalScore := round2(total)

	strengths, weaknesses := e.classifyPillars(breakdown)

	return &model.AssessmentResult{
		TotalScore:      totalScore,
		Level:           ClassifyLevel(totalScore),
		PillarBreakdown: breakdown,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: Recommend(breakdown, e.pillarNames(), input.Industry),
		Benchmark:       e.bench.Resolve(input.Industry, input.CompanySize),
	}, nil
}

// indexAnswers builds the questionId lookup and enforces one-to-one coverage
// of the catalog plus option-value membership
func (e *Engine) indexAnswers(answers []model.Answer) (map[string]model.Answer, error) {
	verr := &ValidationError{}
	byQuestion := make(map[string]model.Answer, len(answers))
	for _, ans := range answers {
		q := e.cat.QuestionByID(ans.QuestionID)
		if q == nil {
			verr.Unknown = append(verr.Unknown, ans.QuestionID)
			continue
		}
		if _, dup := byQuestion[ans.QuestionID]; dup {
			verr.Duplicates = append(verr.Duplicates, ans.QuestionID)
			continue
		}
		if !q.HasOptionValue(ans.Value) {
			verr.BadValues = append(verr.BadValues, ans.QuestionID)
			continue
		}
		byQuestion[ans.QuestionID] = ans
	}
	for _, q := range e.cat.Questions() {
		if _, ok := byQuestion[q.ID]; ok {
			continue
		}
		if !contains(verr.Duplicates, q.ID) && !contains(verr.BadValues, q.ID) {
			verr.Missing = append(verr.Missing, q.ID)
		}
	}

	switch {
	case len(verr.Unknown) > 0 || len(verr.BadValues) > 0:
		// client/catalog skew is an internal data error, not a UI state
		verr.Kind = KindInvalid
		return nil, verr
	case len(verr.Missing) > 0 || len(verr.Duplicates) > 0:
		verr.Kind = KindIncomplete
		return nil, verr
	}
	return byQuestion, nil
}

// classifyPillars sorts the breakdown by score and names the strong and weak
// pillars. Ties keep catalog order.
func (e *Engine) classifyPillars(breakdown []model.PillarBreakdown) (strengths, weaknesses []string) {
	names := e.pillarNames()

	sorted := make([]model.PillarBreakdown, len(breakdown))
	copy(sorted, breakdown)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	strengths = []string{}
	weaknesses = []string{}
	for _, pb := range sorted {
		if pb.Score >= strengthThreshold {
			strengths = append(strengths, names[pb.PillarID])
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Score < needsImprovementThreshold {
			weaknesses = append(weaknesses, names[sorted[i].PillarID])
		}
	}
	return strengths, weaknesses
}

func (e *Engine) pillarNames() map[model.PillarID]string {
	names := make(map[model.PillarID]string, len(e.cat.Pillars()))
	for _, p := range e.cat.Pillars() {
		names[p.ID] = p.Name
	}
	return names
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
