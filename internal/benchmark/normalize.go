package benchmark

import (
	"strings"

	"irindex/internal/model"
)

// industryAliases maps normalized free-text industry strings to canonical
// cohort keys. The submission form sends free text; this table is the single
// place where it becomes an enum.
var industryAliases = map[string]model.Industry{
	"technology":            model.IndustryTechnology,
	"tech":                  model.IndustryTechnology,
	"software":              model.IndustryTechnology,
	"saas":                  model.IndustryTechnology,
	"it":                    model.IndustryTechnology,
	"healthcare":            model.IndustryHealthcare,
	"health care":           model.IndustryHealthcare,
	"health":                model.IndustryHealthcare,
	"hospital":              model.IndustryHealthcare,
	"pharma":                model.IndustryHealthcare,
	"financial services":    model.IndustryFinancialServices,
	"finance":               model.IndustryFinancialServices,
	"financial":             model.IndustryFinancialServices,
	"banking":               model.IndustryFinancialServices,
	"insurance":             model.IndustryFinancialServices,
	"fintech":               model.IndustryFinancialServices,
	"manufacturing":         model.IndustryManufacturing,
	"industrial":            model.IndustryManufacturing,
	"retail":                model.IndustryRetail,
	"ecommerce":             model.IndustryRetail,
	"e-commerce":            model.IndustryRetail,
	"government":            model.IndustryGovernment,
	"public sector":         model.IndustryGovernment,
	"federal":               model.IndustryGovernment,
	"education":             model.IndustryEducation,
	"higher education":      model.IndustryEducation,
	"university":            model.IndustryEducation,
	"energy":                model.IndustryEnergy,
	"utilities":             model.IndustryEnergy,
	"oil and gas":           model.IndustryEnergy,
	"professional services": model.IndustryProfessional,
	"consulting":            model.IndustryProfessional,
	"legal":                 model.IndustryProfessional,
	"accounting":            model.IndustryProfessional,
}

// sizeAliases maps normalized free-text headcount descriptions to canonical
// size brackets
var sizeAliases = map[string]model.CompanySize{
	"1-50":       model.SizeStartup,
	"startup":    model.SizeStartup,
	"under 50":   model.SizeStartup,
	"51-250":     model.SizeSmall,
	"small":      model.SizeSmall,
	"251-1000":   model.SizeMid,
	"mid":        model.SizeMid,
	"midmarket":  model.SizeMid,
	"mid-market": model.SizeMid,
	"1001-5000":  model.SizeLarge,
	"large":      model.SizeLarge,
	"5000+":      model.SizeEnterprise,
	"5000plus":   model.SizeEnterprise,
	"enterprise": model.SizeEnterprise,
}

// NormalizeIndustry maps a free-text industry string to its canonical cohort
// key. Unrecognized input returns ok=false; callers fall back to the overall
// average rather than failing.
func NormalizeIndustry(raw string) (model.Industry, bool) {
	s := normalize(raw)
	if s == "" {
		return "", false
	}
	if ind, ok := industryAliases[s]; ok {
		return ind, true
	}
	// already-canonical values pass through
	canon := model.Industry(strings.ToUpper(strings.ReplaceAll(s, " ", "_")))
	if _, ok := DefaultTable().Industries[string(canon)]; ok {
		return canon, true
	}
	return "", false
}

// NormalizeCompanySize maps a free-text size string to its canonical bracket
func NormalizeCompanySize(raw string) (model.CompanySize, bool) {
	s := normalize(raw)
	if s == "" {
		return "", false
	}
	if size, ok := sizeAliases[s]; ok {
		return size, true
	}
	canon := model.CompanySize(strings.ToUpper(strings.ReplaceAll(s, " ", "_")))
	if _, ok := DefaultTable().Sizes[string(canon)]; ok {
		return canon, true
	}
	return "", false
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
