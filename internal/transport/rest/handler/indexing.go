package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"irindex/internal/service"
)

// IndexingHandler handles search-indexing notification endpoints
type IndexingHandler struct {
	indexingSvc *service.IndexingService
}

// NewIndexingHandler creates a new indexing handler
func NewIndexingHandler(indexingSvc *service.IndexingService) *IndexingHandler {
	return &IndexingHandler{indexingSvc: indexingSvc}
}

// NotifyRequest is the request body for an indexing notification
type NotifyRequest struct {
	URLs []string `json:"urls"`
}

// Notify handles POST /v1/indexing/notify
func (h *IndexingHandler) Notify(w http.ResponseWriter, r *http.Request) {
	if !h.indexingSvc.Enabled() {
		writeError(w, http.StatusServiceUnavailable, "indexing not configured")
		return
	}

	var req NotifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.URLs) == 0 {
		writeError(w, http.StatusBadRequest, "urls required")
		return
	}

	if err := h.indexingSvc.NotifyURLs(r.Context(), req.URLs); err != nil {
		if errors.Is(err, service.ErrIndexingRateLimited) {
			writeError(w, http.StatusTooManyRequests, err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"submitted": len(req.URLs)})
}
