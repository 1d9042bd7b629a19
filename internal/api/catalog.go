package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/boxrank/internal/catalog"
	"github.com/MikeSquared-Agency/boxrank/internal/presets"
	"github.com/MikeSquared-Agency/boxrank/internal/scoring"
)

// CatalogHandler serves the read-only catalog views.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GET /api/v1/catalog
func (h *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog)
}

// GET /api/v1/presets
func (h *CatalogHandler) Presets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, presets.All())
}

// Frontier returns the devices no other device beats on every feature.
// GET /api/v1/frontier
func (h *CatalogHandler) Frontier(w http.ResponseWriter, r *http.Request) {
	frontier := scoring.Frontier(h.catalog.Devices)
	if frontier == nil {
		frontier = []catalog.Device{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(frontier),
		"devices": frontier,
	})
}
