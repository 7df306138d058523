// Package benchmark resolves cohort average indices for an assessment.
// Benchmarking is advisory context: lookups degrade to the overall average
// and never fail.
package benchmark

import "irindex/internal/model"

// Resolver answers cohort-average lookups against one reference table
// snapshot. It is immutable; swap the resolver to pick up a refreshed table.
type Resolver struct {
	table *model.ReferenceTable
}

// NewResolver creates a resolver over the given table, or over the
// compiled-in default when table is nil.
func NewResolver(table *model.ReferenceTable) *Resolver {
	if table == nil {
		table = DefaultTable()
	}
	return &Resolver{table: table}
}

// Resolve returns the cohort comparison for an industry and size bracket.
// Either dimension may be empty or unknown; it then carries the overall
// average so the comparison fields are always populated.
func (r *Resolver) Resolve(industry model.Industry, size model.CompanySize) model.BenchmarkComparison {
	cmp := model.BenchmarkComparison{
		Industry:    r.table.Overall,
		CompanySize: r.table.Overall,
		Overall:     r.table.Overall,
	}
	if avg, ok := r.table.IndustryAverage(industry); ok {
		cmp.Industry = avg
	}
	if avg, ok := r.table.SizeAverage(size); ok {
		cmp.CompanySize = avg
	}
	return cmp
}
