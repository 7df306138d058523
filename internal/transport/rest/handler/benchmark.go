package handler

import (
	"net/http"

	"irindex/internal/benchmark"
	"irindex/internal/service"
)

// BenchmarkHandler handles benchmark endpoints
type BenchmarkHandler struct {
	benchmarkSvc *service.BenchmarkService
}

// NewBenchmarkHandler creates a new benchmark handler
func NewBenchmarkHandler(benchmarkSvc *service.BenchmarkService) *BenchmarkHandler {
	return &BenchmarkHandler{benchmarkSvc: benchmarkSvc}
}

// GetTable handles GET /v1/benchmarks
func (h *BenchmarkHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.benchmarkSvc.Table(r.Context()))
}

// Compare handles GET /v1/benchmarks/compare?industry=...&companySize=...
// Unrecognized cohort strings fall back to the overall average.
func (h *BenchmarkHandler) Compare(w http.ResponseWriter, r *http.Request) {
	industry, _ := benchmark.NormalizeIndustry(r.URL.Query().Get("industry"))
	size, _ := benchmark.NormalizeCompanySize(r.URL.Query().Get("companySize"))

	cmp := h.benchmarkSvc.Resolver(r.Context()).Resolve(industry, size)
	writeJSON(w, http.StatusOK, cmp)
}
