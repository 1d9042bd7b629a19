package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/boxrank/internal/catalog"
	"github.com/MikeSquared-Agency/boxrank/internal/hermes"
	"github.com/MikeSquared-Agency/boxrank/internal/metrics"
	"github.com/MikeSquared-Agency/boxrank/internal/presets"
	"github.com/MikeSquared-Agency/boxrank/internal/scoring"
	"github.com/MikeSquared-Agency/boxrank/internal/store"
)

const (
	sourcePreset = "preset"
	sourceCustom = "custom"
)

type RankingsHandler struct {
	catalog      *catalog.Catalog
	scorer       *scoring.Scorer
	store        store.Store
	hermes       hermes.Client
	historyLimit int
	logger       *slog.Logger
}

func NewRankingsHandler(cat *catalog.Catalog, scorer *scoring.Scorer, s store.Store, h hermes.Client, historyLimit int, logger *slog.Logger) *RankingsHandler {
	return &RankingsHandler{
		catalog:      cat,
		scorer:       scorer,
		store:        s,
		hermes:       h,
		historyLimit: historyLimit,
		logger:       logger,
	}
}

// CreateRankingRequest names either a preset or an explicit importance vector.
type CreateRankingRequest struct {
	Preset  string `json:"preset,omitempty"`
	Weights []int  `json:"weights,omitempty"`
}

// Create ranks the catalog and records the run.
// POST /api/v1/rankings
func (h *RankingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRankingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.ObserveError("bad_request")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	weights, source, err := h.resolveWeights(req)
	if err != nil {
		metrics.ObserveError("validation")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	ranking, err := h.scorer.Rank(h.catalog, weights)
	if err != nil {
		metrics.ObserveError("scoring")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	took := time.Since(start)

	run := &store.RankingRun{
		Preset:  req.Preset,
		Weights: weights,
		Policy:  ranking.Policy,
		Entries: ranking.Entries,
		Winner:  ranking.Winner,
	}
	if err := h.store.SaveRun(r.Context(), run); err != nil {
		metrics.ObserveError("store")
		h.logger.Error("failed to save ranking run", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.ObserveRanking(string(ranking.Policy), source, ranking.Winner, took)
	h.publish(r.Context(), run)

	writeJSON(w, http.StatusCreated, run)
}

func (h *RankingsHandler) resolveWeights(req CreateRankingRequest) ([]int, string, error) {
	switch {
	case req.Preset != "" && len(req.Weights) > 0:
		return nil, "", errors.New("give either preset or weights, not both")
	case req.Preset != "":
		p, ok := presets.Find(req.Preset)
		if !ok {
			return nil, "", fmt.Errorf("unknown preset %q", req.Preset)
		}
		if err := h.catalog.ValidateWeights(p.Weights); err != nil {
			return nil, "", err
		}
		return p.Weights, sourcePreset, nil
	case len(req.Weights) > 0:
		if err := h.catalog.ValidateWeights(req.Weights); err != nil {
			return nil, "", err
		}
		return req.Weights, sourceCustom, nil
	default:
		return nil, "", errors.New("preset or weights required")
	}
}

func (h *RankingsHandler) publish(ctx context.Context, run *store.RankingRun) {
	if h.hermes == nil {
		return
	}

	ev := hermes.RankingComputedEvent{
		RunID:     run.ID.String(),
		Preset:    run.Preset,
		Weights:   run.Weights,
		Policy:    string(run.Policy),
		Winner:    run.Winner,
		Ranking:   make([]hermes.RankedDeviceEvent, len(run.Entries)),
		Timestamp: run.CreatedAt,
	}
	for i, e := range run.Entries {
		ev.Ranking[i] = hermes.RankedDeviceEvent{
			Rank:       e.Rank,
			Name:       e.Name,
			Normalized: e.Normalized,
			Stars:      e.Stars,
		}
	}

	if err := h.hermes.Publish(ctx, hermes.SubjectRankingComputed(ev.RunID), ev); err != nil {
		metrics.EventPublishFailuresTotal.Inc()
		h.logger.Warn("failed to publish ranking event", "run_id", ev.RunID, "error", err)
	}
}

// List returns recent runs, newest first.
// GET /api/v1/rankings
func (h *RankingsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.RunFilter{
		Preset: r.URL.Query().Get("preset"),
		Winner: r.URL.Query().Get("winner"),
		Limit:  h.historyLimit,
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}

	runs, err := h.store.ListRuns(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []*store.RankingRun{}
	}
	writeJSON(w, http.StatusOK, runs)
}

// Get returns one run.
// GET /api/v1/rankings/{id}
func (h *RankingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid run id")
		return
	}

	run, err := h.store.GetRun(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}
