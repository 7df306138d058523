package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irindex/internal/model"
)

func TestDefault_IsValid(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 20, cat.Size())
	assert.Len(t, cat.Pillars(), 5)
	for _, p := range cat.Pillars() {
		assert.Len(t, cat.QuestionsForPillar(p.ID), 4, "pillar %s", p.ID)
	}
}

func TestDefault_LookupMatchesCatalogOrder(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	for _, q := range cat.Questions() {
		got := cat.QuestionByID(q.ID)
		require.NotNil(t, got, "question %s", q.ID)
		assert.Equal(t, q.PillarID, got.PillarID)
	}
	assert.Nil(t, cat.QuestionByID("no-such-question"))
}

func TestNew_RejectsBadPillarWeights(t *testing.T) {
	pillars := Pillars()
	pillars[0].Weight = 0.5 // sum now 1.25

	_, err := New(pillars, Questions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pillar weights")
}

func TestNew_RejectsBadQuestionWeights(t *testing.T) {
	questions := Questions()
	questions[0].Weight += 0.1

	_, err := New(Pillars(), questions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question weights")
}

func TestNew_RejectsDuplicateQuestionIDs(t *testing.T) {
	questions := Questions()
	questions[1].ID = questions[0].ID

	_, err := New(Pillars(), questions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate question id")
}

func TestNew_RejectsUnknownPillarReference(t *testing.T) {
	questions := Questions()
	questions[3].PillarID = "astral-projection"

	_, err := New(Pillars(), questions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown pillar")
}

func TestNew_RejectsOutOfRangeOptionValues(t *testing.T) {
	questions := Questions()
	questions[0].Options = append(questions[0].Options, model.AnswerOption{Value: 120, Label: "beyond"})

	_, err := New(Pillars(), questions)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside [0,100]")
}

func TestHasOptionValue(t *testing.T) {
	q := Questions()[0]
	assert.True(t, q.HasOptionValue(0))
	assert.True(t, q.HasOptionValue(75))
	assert.False(t, q.HasOptionValue(42))
}
