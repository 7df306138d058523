package scoring

import "irindex/internal/model"

// maturityLevels is ordered highest threshold first; classification walks it
// top-down so a score sitting exactly on a boundary takes the higher level.
var maturityLevels = []struct {
	threshold float64
	level     model.MaturityLevel
}{
	{85, model.MaturityLevel{Level: 5, Name: "Optimized", Description: "Insider risk management is continuously measured and tuned across the organization.", Color: "#16a34a"}},
	{65, model.MaturityLevel{Level: 4, Name: "Proactive", Description: "Controls anticipate risky behavior; monitoring and coaching work together.", Color: "#65a30d"}},
	{45, model.MaturityLevel{Level: 3, Name: "Managed", Description: "Core monitoring and response processes exist but coverage is uneven.", Color: "#ca8a04"}},
	{25, model.MaturityLevel{Level: 2, Name: "Emerging", Description: "Early controls are in place; most detection and response is reactive.", Color: "#ea580c"}},
	{0, model.MaturityLevel{Level: 1, Name: "Ad Hoc", Description: "No structured insider risk program; incidents are handled case by case.", Color: "#dc2626"}},
}

// ClassifyLevel maps a 0-100 index to its maturity level. Out-of-range input
// from external callers clamps to the nearest level.
func ClassifyLevel(score float64) model.MaturityLevel {
	for _, ml := range maturityLevels {
		if score >= ml.threshold {
			return ml.level
		}
	}
	// score below 0
	return maturityLevels[len(maturityLevels)-1].level
}

// Levels returns the five maturity levels from lowest to highest
func Levels() []model.MaturityLevel {
	out := make([]model.MaturityLevel, 0, len(maturityLevels))
	for i := len(maturityLevels) - 1; i >= 0; i-- {
		out = append(out, maturityLevels[i].level)
	}
	return out
}
