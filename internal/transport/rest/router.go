package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"irindex/internal/service"
	"irindex/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	AssessmentService *service.AssessmentService
	BenchmarkService  *service.BenchmarkService
	IndexingService   *service.IndexingService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	benchmarkHandler := handler.NewBenchmarkHandler(c.BenchmarkService)
	indexingHandler := handler.NewIndexingHandler(c.IndexingService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/questionnaire", assessmentHandler.Questionnaire).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments", assessmentHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments", assessmentHandler.List).Methods("GET")
	v1.HandleFunc("/assessments/{id}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/result", assessmentHandler.GetResult).Methods("GET", "OPTIONS")
	v1.HandleFunc("/benchmarks", benchmarkHandler.GetTable).Methods("GET", "OPTIONS")
	v1.HandleFunc("/benchmarks/compare", benchmarkHandler.Compare).Methods("GET", "OPTIONS")
	v1.HandleFunc("/stats", assessmentHandler.Stats).Methods("GET", "OPTIONS")
	v1.HandleFunc("/indexing/notify", indexingHandler.Notify).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
