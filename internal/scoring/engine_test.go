package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irindex/internal/benchmark"
	"irindex/internal/catalog"
	"irindex/internal/model"
)

// testEngine builds an engine over the default catalog and benchmark table
func testEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewEngine(cat, benchmark.NewResolver(nil))
}

// uniformAnswers answers every catalog question with the same value
func uniformAnswers(cat *catalog.Catalog, value float64) []model.Answer {
	answers := make([]model.Answer, 0, cat.Size())
	for _, q := range cat.Questions() {
		answers = append(answers, model.Answer{QuestionID: q.ID, Value: value})
	}
	return answers
}

func TestCalculate_AllZero(t *testing.T) {
	e := testEngine(t)
	res, err := e.Calculate(model.AssessmentInput{Answers: uniformAnswers(e.cat, 0)})
	require.NoError(t, err)
	assert.InDelta(t, 0, res.TotalScore, 0.01)
	assert.Equal(t, 1, res.Level.Level)
}

func TestCalculate_AllMax(t *testing.T) {
	e := testEngine(t)
	res, err := e.Calculate(model.AssessmentInput{Answers: uniformAnswers(e.cat, 100)})
	require.NoError(t, err)
	assert.InDelta(t, 100, res.TotalScore, 0.01)
	assert.Equal(t, 5, res.Level.Level)
}

func TestCalculate_UniformValueCancelsWeightSkew(t *testing.T) {
	// Normalization cancels intra-pillar weight differences and pillar
	// weights sum to 1.0, so a uniform answer value is the total score.
	e := testEngine(t)
	for _, v := range []float64{25, 50, 75} {
		res, err := e.Calculate(model.AssessmentInput{Answers: uniformAnswers(e.cat, v)})
		require.NoError(t, err)
		assert.InDelta(t, v, res.TotalScore, 0.01, "uniform value %v", v)
	}
}

func TestCalculate_SinglePillarIsolation(t *testing.T) {
	// Visibility (weight 0.25) at 100, everything else at 0.
	e := testEngine(t)
	answers := make([]model.Answer, 0, e.cat.Size())
	for _, q := range e.cat.Questions() {
		v := 0.0
		if q.PillarID == model.PillarVisibility {
			v = 100
		}
		answers = append(answers, model.Answer{QuestionID: q.ID, Value: v})
	}
	res, err := e.Calculate(model.AssessmentInput{Answers: answers})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, res.TotalScore, 0.01)
}

func TestCalculate_ContributionsSumToTotal(t *testing.T) {
	e := testEngine(t)
	for _, v := range []float64{0, 25, 50, 75, 100} {
		res, err := e.Calculate(model.AssessmentInput{Answers: uniformAnswers(e.cat, v)})
		require.NoError(t, err)
		sum := 0.0
		for _, pb := range res.PillarBreakdown {
			sum += pb.ContributionToTotal
		}
		assert.InDelta(t, res.TotalScore, sum, 0.01)
	}
}

func TestCalculate_BreakdownCoversAllPillarsInOrder(t *testing.T) {
	e := testEngine(t)
	res, err := e.Calculate(model.AssessmentInput{Answers: uniformAnswers(e.cat, 50)})
	require.NoError(t, err)
	require.Len(t, res.PillarBreakdown, 5)
	for i, p := range e.cat.Pillars() {
		assert.Equal(t, p.ID, res.PillarBreakdown[i].PillarID)
		assert.Equal(t, p.Weight, res.PillarBreakdown[i].Weight)
		assert.Equal(t, 100.0, res.PillarBreakdown[i].MaxScore)
	}
}

func TestCalculate_PartialAnswersRejected(t *testing.T) {
	e := testEngine(t)
	answers := uniformAnswers(e.cat, 50)[:e.cat.Size()-3]

	_, err := e.Calculate(model.AssessmentInput{Answers: answers})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KindIncomplete, verr.Kind)
	assert.Len(t, verr.Missing, 3)
}

func TestCalculate_EmptyAnswersRejected(t *testing.T) {
	e := testEngine(t)
	_, err := e.Calculate(model.AssessmentInput{})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KindIncomplete, verr.Kind)
	assert.Len(t, verr.Missing, e.cat.Size())
}

func TestCalculate_DuplicateAnswersRejected(t *testing.T) {
	e := testEngine(t)
	answers := uniformAnswers(e.cat, 50)
	answers = append(answers, model.Answer{QuestionID: answers[0].QuestionID, Value: 75})

	_, err := e.Calculate(model.AssessmentInput{Answers: answers})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KindIncomplete, verr.Kind)
	assert.Equal(t, []string{answers[0].QuestionID}, verr.Duplicates)
}

func TestCalculate_UnknownQuestionRejected(t *testing.T) {
	e := testEngine(t)
	answers := uniformAnswers(e.cat, 50)
	answers[0].QuestionID = "retired-question-9"

	_, err := e.Calculate(model.AssessmentInput{Answers: answers})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KindInvalid, verr.Kind)
	assert.Equal(t, []string{"retired-question-9"}, verr.Unknown)
}

func TestCalculate_NonOptionValueRejected(t *testing.T) {
	e := testEngine(t)
	answers := uniformAnswers(e.cat, 50)
	answers[4].Value = 62.5

	_, err := e.Calculate(model.AssessmentInput{Answers: answers})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KindInvalid, verr.Kind)
	assert.Equal(t, []string{answers[4].QuestionID}, verr.BadValues)
}

func TestCalculate_StrengthsAndWeaknesses(t *testing.T) {
	e := testEngine(t)
	perPillar := map[model.PillarID]float64{
		model.PillarVisibility: 100,
		model.PillarCoaching:   75,
		model.PillarEvidence:   50,
		model.PillarIdentity:   25,
		model.PillarPhishing:   0,
	}
	answers := make([]model.Answer, 0, e.cat.Size())
	for _, q := range e.cat.Questions() {
		answers = append(answers, model.Answer{QuestionID: q.ID, Value: perPillar[q.PillarID]})
	}

	res, err := e.Calculate(model.AssessmentInput{Answers: answers})
	require.NoError(t, err)

	assert.Equal(t, []string{"Visibility"}, res.Strengths)
	// weakest first
	assert.Equal(t, []string{"Phishing Resilience", "Identity & SaaS", "Investigation & Evidence"}, res.Weaknesses)
}

func TestCalculate_EndToEndScenario(t *testing.T) {
	// 4 questions per pillar, pillar weights 0.25/0.25/0.20/0.15/0.15,
	// uniform per-pillar answers 80/60/70/40/90:
	// total = 80*0.25 + 60*0.25 + 70*0.20 + 40*0.15 + 90*0.15 = 68.5
	cat := scenarioCatalog(t)
	e := NewEngine(cat, benchmark.NewResolver(nil))

	perPillar := map[model.PillarID]float64{
		model.PillarVisibility: 80,
		model.PillarCoaching:   60,
		model.PillarEvidence:   70,
		model.PillarIdentity:   40,
		model.PillarPhishing:   90,
	}
	answers := make([]model.Answer, 0, cat.Size())
	for _, q := range cat.Questions() {
		answers = append(answers, model.Answer{QuestionID: q.ID, Value: perPillar[q.PillarID]})
	}

	res, err := e.Calculate(model.AssessmentInput{Answers: answers})
	require.NoError(t, err)
	assert.InDelta(t, 68.5, res.TotalScore, 0.01)
	assert.Equal(t, 4, res.Level.Level)
}

// scenarioCatalog builds a 20-question catalog with skewed intra-pillar
// weights and a denser option ladder than the production one
func scenarioCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	options := []model.AnswerOption{
		{Value: 0, Label: "none"},
		{Value: 40, Label: "partial"},
		{Value: 60, Label: "fair"},
		{Value: 70, Label: "good"},
		{Value: 80, Label: "strong"},
		{Value: 90, Label: "very strong"},
		{Value: 100, Label: "full"},
	}
	weights := []float64{0.4, 0.3, 0.2, 0.1}

	var questions []model.Question
	for _, p := range catalog.Pillars() {
		for i, w := range weights {
			questions = append(questions, model.Question{
				ID:       string(p.ID) + "-q" + string(rune('1'+i)),
				PillarID: p.ID,
				Text:     "scenario question",
				Weight:   w,
				Options:  options,
			})
		}
	}

	cat, err := catalog.New(catalog.Pillars(), questions)
	require.NoError(t, err)
	return cat
}
