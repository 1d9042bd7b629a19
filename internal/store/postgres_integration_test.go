//go:build integration

package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/boxrank/internal/scoring"
)

func setupTestDB(t *testing.T) *PostgresStore {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	s, err := NewPostgresStore(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	t.Cleanup(func() {
		_, _ = s.pool.Exec(ctx, "TRUNCATE ranking_runs")
		s.Close()
	})

	return s
}

func TestSaveAndGetRun(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	run := &RankingRun{
		Preset:  "balanced",
		Weights: []int{5, 5, 5},
		Policy:  scoring.PenaltyRaw,
		Entries: []scoring.RankedDevice{
			{Rank: 1, Name: "Onn", Raw: 90, Normalized: 1, MatchQuality: 100, Stars: 5},
			{Rank: 2, Name: "Shield", Raw: 120, Normalized: 10, MatchQuality: 11.1, Stars: 1, CriticalMisses: 1},
		},
		Winner: "Onn",
	}

	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if run.ID == uuid.Nil {
		t.Fatal("expected non-nil run ID after save")
	}
	if run.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	got, err := s.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected run, got nil")
	}
	if got.Winner != "Onn" {
		t.Errorf("expected winner Onn, got %s", got.Winner)
	}
	if got.Policy != scoring.PenaltyRaw {
		t.Errorf("expected raw policy, got %s", got.Policy)
	}
	if len(got.Weights) != 3 {
		t.Errorf("expected 3 weights, got %d", len(got.Weights))
	}
	if len(got.Entries) != 2 || got.Entries[1].CriticalMisses != 1 {
		t.Errorf("entries not round-tripped: %+v", got.Entries)
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := setupTestDB(t)
	got, err := s.GetRun(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestListRunsFilter(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	for _, p := range []string{"balanced", "cost-only", "balanced"} {
		run := &RankingRun{Preset: p, Weights: []int{1}, Policy: scoring.PenaltyNone, Winner: "Onn"}
		if err := s.SaveRun(ctx, run); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	runs, err := s.ListRuns(ctx, RunFilter{Preset: "balanced"})
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}

	runs, err = s.ListRuns(ctx, RunFilter{Limit: 1})
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}
