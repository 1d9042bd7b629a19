package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps ranking runs in process. Used when no database is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	runs []*RankingRun
	max  int
}

// NewMemoryStore keeps at most max runs, dropping the oldest. max <= 0 means unbounded.
func NewMemoryStore(max int) *MemoryStore {
	return &MemoryStore{max: max}
}

func (m *MemoryStore) SaveRun(_ context.Context, run *RankingRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, copyRun(run))
	if m.max > 0 && len(m.runs) > m.max {
		m.runs = m.runs[len(m.runs)-m.max:]
	}
	return nil
}

func (m *MemoryStore) GetRun(_ context.Context, id uuid.UUID) (*RankingRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.runs {
		if r.ID == id {
			return copyRun(r), nil
		}
	}
	return nil, nil
}

// ListRuns returns matching runs newest first.
func (m *MemoryStore) ListRuns(_ context.Context, filter RunFilter) ([]*RankingRun, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*RankingRun
	for i := len(m.runs) - 1; i >= 0 && len(out) < limit; i-- {
		r := m.runs[i]
		if filter.Preset != "" && r.Preset != filter.Preset {
			continue
		}
		if filter.Winner != "" && r.Winner != filter.Winner {
			continue
		}
		out = append(out, copyRun(r))
	}
	return out, nil
}

func (m *MemoryStore) Close() error { return nil }

func copyRun(r *RankingRun) *RankingRun {
	c := *r
	c.Weights = append([]int(nil), r.Weights...)
	c.Entries = append(c.Entries[:0:0], r.Entries...)
	return &c
}
