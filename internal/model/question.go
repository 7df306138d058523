package model

// PillarID identifies one of the five risk pillars
type PillarID string

const (
	PillarVisibility PillarID = "visibility"
	PillarCoaching   PillarID = "prevention-coaching"
	PillarEvidence   PillarID = "investigation-evidence"
	PillarIdentity   PillarID = "identity-saas"
	PillarPhishing   PillarID = "phishing-resilience"
)

// Pillar is a top-level risk dimension with its share of the overall index
type Pillar struct {
	ID          PillarID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Weight      float64  `json:"weight"` // all pillar weights sum to 1.0
	Color       string   `json:"color"`  // presentation only, ignored by scoring
}

// AnswerOption is one discrete choice on a question
type AnswerOption struct {
	Value float64 `json:"value"` // 0-100
	Label string  `json:"label"`
}

// Question is a single questionnaire item. Questions are defined once at
// build time and are immutable at runtime.
type Question struct {
	ID       string         `json:"id"`
	PillarID PillarID       `json:"pillarId"`
	Text     string         `json:"text"`
	Weight   float64        `json:"weight"` // question weights within a pillar sum to 1.0
	Options  []AnswerOption `json:"options"`
}

// HasOptionValue reports whether v matches one of the question's declared option values
func (q *Question) HasOptionValue(v float64) bool {
	for _, opt := range q.Options {
		if opt.Value == v {
			return true
		}
	}
	return false
}
