package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/boxrank/internal/catalog"
	"github.com/MikeSquared-Agency/boxrank/internal/hermes"
	"github.com/MikeSquared-Agency/boxrank/internal/scoring"
	"github.com/MikeSquared-Agency/boxrank/internal/store"
)

// RouterConfig carries the tunables for NewRouter.
type RouterConfig struct {
	RateLimit    int
	HistoryLimit int
}

func NewRouter(cat *catalog.Catalog, scorer *scoring.Scorer, s store.Store, h hermes.Client, cfg RouterConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	if cfg.RateLimit > 0 {
		r.Use(RateLimitMiddleware(cfg.RateLimit))
	}

	rankings := NewRankingsHandler(cat, scorer, s, h, cfg.HistoryLimit, logger)
	catalogs := NewCatalogHandler(cat)
	explain := NewExplainHandler(cat, scorer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/rankings", rankings.Create)
		r.Get("/rankings", rankings.List)
		r.Get("/rankings/{id}", rankings.Get)

		r.Get("/catalog", catalogs.Catalog)
		r.Get("/presets", catalogs.Presets)
		r.Get("/frontier", catalogs.Frontier)

		r.Post("/scoring/explain", explain.Explain)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
