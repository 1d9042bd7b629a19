package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/boxrank/internal/scoring"
)

// RankingRun is one persisted ranking request and its result.
type RankingRun struct {
	ID        uuid.UUID              `json:"run_id"`
	Preset    string                 `json:"preset,omitempty"`
	Weights   []int                  `json:"weights"`
	Policy    scoring.PenaltyMode    `json:"policy"`
	Entries   []scoring.RankedDevice `json:"entries"`
	Winner    string                 `json:"winner"`
	CreatedAt time.Time              `json:"created_at"`
}

type RunFilter struct {
	Preset string
	Winner string
	Limit  int
}

const defaultListLimit = 100

type Store interface {
	SaveRun(ctx context.Context, run *RankingRun) error
	GetRun(ctx context.Context, id uuid.UUID) (*RankingRun, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]*RankingRun, error)
	Close() error
}
