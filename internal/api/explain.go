package api

import (
	"encoding/json"
	"net/http"

	"github.com/MikeSquared-Agency/boxrank/internal/catalog"
	"github.com/MikeSquared-Agency/boxrank/internal/scoring"
)

type ExplainHandler struct {
	catalog *catalog.Catalog
	scorer  *scoring.Scorer
}

func NewExplainHandler(cat *catalog.Catalog, scorer *scoring.Scorer) *ExplainHandler {
	return &ExplainHandler{catalog: cat, scorer: scorer}
}

type ExplainRequest struct {
	Device  string `json:"device"`
	Weights []int  `json:"weights"`
}

// Explain returns the per-feature scoring breakdown for one device.
// POST /api/v1/scoring/explain
func (h *ExplainHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var req ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Device == "" {
		writeError(w, http.StatusBadRequest, "device required")
		return
	}
	if _, ok := h.catalog.Lookup(req.Device); !ok {
		writeError(w, http.StatusNotFound, "device not found")
		return
	}
	if err := h.catalog.ValidateWeights(req.Weights); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	exp, err := h.scorer.Explain(h.catalog, req.Device, req.Weights)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, exp)
}
