package benchmark

import (
	"time"

	"irindex/internal/model"
)

// DefaultTable is the compiled-in benchmark snapshot, used until a refreshed
// table is loaded from storage. Values come from the annual research report
// import and are plain cohort averages of the 0-100 index.
func DefaultTable() *model.ReferenceTable {
	return &model.ReferenceTable{
		Overall: 64.2,
		Industries: map[string]float64{
			string(model.IndustryTechnology):        71.3,
			string(model.IndustryHealthcare):        58.7,
			string(model.IndustryFinancialServices): 72.8,
			string(model.IndustryManufacturing):     61.5,
			string(model.IndustryRetail):            57.9,
			string(model.IndustryGovernment):        66.4,
			string(model.IndustryEducation):         54.2,
			string(model.IndustryEnergy):            68.1,
			string(model.IndustryProfessional):      63.6,
		},
		Sizes: map[string]float64{
			string(model.SizeStartup):    52.8,
			string(model.SizeSmall):      58.4,
			string(model.SizeMid):        64.9,
			string(model.SizeLarge):      69.7,
			string(model.SizeEnterprise): 73.2,
		},
		UpdatedAt: time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}
