package model

import "time"

// Answer is a respondent's choice for a single question
type Answer struct {
	QuestionID string  `json:"questionId" bson:"questionId"`
	Value      float64 `json:"value" bson:"value"`
	// Rationale is free text shown in reports; scoring ignores it
	Rationale string `json:"rationale,omitempty" bson:"rationale,omitempty"`
}

// AssessmentInput is everything the scoring engine needs for one run
type AssessmentInput struct {
	Answers     []Answer    `json:"answers"`
	Industry    Industry    `json:"industry,omitempty"`
	CompanySize CompanySize `json:"companySize,omitempty"`
}

// PillarBreakdown is the normalized score of one pillar within a result
type PillarBreakdown struct {
	PillarID            PillarID `json:"pillarId" bson:"pillarId"`
	Score               float64  `json:"score" bson:"score"`   // 0-100
	Weight              float64  `json:"weight" bson:"weight"` // copied from the pillar
	ContributionToTotal float64  `json:"contributionToTotal" bson:"contributionToTotal"`
	MaxScore            float64  `json:"maxScore" bson:"maxScore"` // always 100
}

// MaturityLevel is one of the five ordinal classifications of the index
type MaturityLevel struct {
	Level       int    `json:"level"` // 1-5
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// BenchmarkComparison holds cohort average indices for context
type BenchmarkComparison struct {
	Industry    float64 `json:"industry" bson:"industry"`
	CompanySize float64 `json:"companySize" bson:"companySize"`
	Overall     float64 `json:"overall" bson:"overall"`
}

// AssessmentResult is the full output of one scoring run
type AssessmentResult struct {
	TotalScore      float64             `json:"totalScore"`
	Level           MaturityLevel       `json:"level"`
	PillarBreakdown []PillarBreakdown   `json:"pillarBreakdown"` // always 5 entries, catalog order
	Strengths       []string            `json:"strengths"`
	Weaknesses      []string            `json:"weaknesses"`
	Recommendations []string            `json:"recommendations"`
	Benchmark       BenchmarkComparison `json:"benchmark"`
}

// Assessment is the persisted snapshot of a scored submission
type Assessment struct {
	ID           string            `json:"id" bson:"_id,omitempty"`
	CreatedAt    time.Time         `json:"createdAt" bson:"createdAt"`
	Industry     Industry          `json:"industry,omitempty" bson:"industry,omitempty"`
	CompanySize  CompanySize       `json:"companySize,omitempty" bson:"companySize,omitempty"`
	Answers      []Answer          `json:"answers" bson:"answers"`
	PillarScores []PillarBreakdown `json:"pillarScores" bson:"pillarScores"`
	IRI          float64           `json:"iri" bson:"iri"`
	Level        int               `json:"level" bson:"level"`
}
