package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLevel_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		level int
		name  string
	}{
		{100, 5, "Optimized"},
		{85, 5, "Optimized"}, // closed lower bound
		{84.99, 4, "Proactive"},
		{65, 4, "Proactive"},
		{64.99, 3, "Managed"},
		{45, 3, "Managed"},
		{44.99, 2, "Emerging"},
		{25, 2, "Emerging"},
		{24.99, 1, "Ad Hoc"},
		{0, 1, "Ad Hoc"},
	}
	for _, tc := range cases {
		got := ClassifyLevel(tc.score)
		assert.Equal(t, tc.level, got.Level, "score %v", tc.score)
		assert.Equal(t, tc.name, got.Name, "score %v", tc.score)
	}
}

func TestClassifyLevel_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, 1, ClassifyLevel(-10).Level)
	assert.Equal(t, 5, ClassifyLevel(250).Level)
}

func TestLevels_OrderedAndComplete(t *testing.T) {
	levels := Levels()
	assert.Len(t, levels, 5)
	for i, ml := range levels {
		assert.Equal(t, i+1, ml.Level)
		assert.NotEmpty(t, ml.Name)
		assert.NotEmpty(t, ml.Description)
		assert.NotEmpty(t, ml.Color)
	}
}
