package model

import "time"

// Industry is a canonical industry cohort key
type Industry string

const (
	IndustryTechnology        Industry = "TECHNOLOGY"
	IndustryHealthcare        Industry = "HEALTHCARE"
	IndustryFinancialServices Industry = "FINANCIAL_SERVICES"
	IndustryManufacturing     Industry = "MANUFACTURING"
	IndustryRetail            Industry = "RETAIL"
	IndustryGovernment        Industry = "GOVERNMENT"
	IndustryEducation         Industry = "EDUCATION"
	IndustryEnergy            Industry = "ENERGY"
	IndustryProfessional      Industry = "PROFESSIONAL_SERVICES"
)

// CompanySize is a canonical headcount-bracket cohort key
type CompanySize string

const (
	SizeStartup    CompanySize = "STARTUP_1_50"
	SizeSmall      CompanySize = "SMALL_51_250"
	SizeMid        CompanySize = "MID_251_1000"
	SizeLarge      CompanySize = "LARGE_1001_5000"
	SizeEnterprise CompanySize = "ENTERPRISE_5000_PLUS"
)

// ReferenceTable holds pre-computed cohort average indices. It is refreshed
// offline (research report imports) and read-only at request time.
type ReferenceTable struct {
	ID         string             `json:"id,omitempty" bson:"_id,omitempty"`
	Overall    float64            `json:"overall" bson:"overall"`
	Industries map[string]float64 `json:"industries" bson:"industries"` // keyed by Industry
	Sizes      map[string]float64 `json:"sizes" bson:"sizes"`           // keyed by CompanySize
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IndustryAverage returns the cohort average and whether the industry is known
func (t *ReferenceTable) IndustryAverage(ind Industry) (float64, bool) {
	avg, ok := t.Industries[string(ind)]
	return avg, ok
}

// SizeAverage returns the cohort average and whether the size bracket is known
func (t *ReferenceTable) SizeAverage(size CompanySize) (float64, bool) {
	avg, ok := t.Sizes[string(size)]
	return avg, ok
}
