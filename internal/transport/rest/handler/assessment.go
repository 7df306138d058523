package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"irindex/internal/model"
	"irindex/internal/scoring"
	"irindex/internal/service"
)

// AssessmentHandler handles questionnaire and assessment endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Questionnaire handles GET /v1/questionnaire
func (h *AssessmentHandler) Questionnaire(w http.ResponseWriter, r *http.Request) {
	cat := h.assessmentSvc.Catalog()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pillars":   cat.Pillars(),
		"questions": cat.Questions(),
		"levels":    scoring.Levels(),
	})
}

// Submit handles POST /v1/assessments
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub service.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.assessmentSvc.Submit(r.Context(), sub)
	if err != nil {
		var verr *scoring.ValidationError
		if errors.As(err, &verr) {
			// incomplete means "finish the questionnaire"; invalid means the
			// client and catalog disagree about the questions
			writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":      verr.Error(),
				"kind":       verr.Kind,
				"missing":    verr.Missing,
				"duplicates": verr.Duplicates,
				"unknown":    verr.Unknown,
				"badValues":  verr.BadValues,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// List handles GET /v1/assessments?limit=N
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	assessments, err := h.assessmentSvc.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if assessments == nil {
		assessments = []*model.Assessment{}
	}

	writeJSON(w, http.StatusOK, assessments)
}

// Stats handles GET /v1/stats
func (h *AssessmentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.assessmentSvc.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Get handles GET /v1/assessments/{id}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	assessment, err := h.assessmentSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if assessment == nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// GetResult handles GET /v1/assessments/{id}/result, recomputing the full
// result (recommendations, current benchmarks) for report renderers
func (h *AssessmentHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.assessmentSvc.Rescore(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "assessment not found")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
