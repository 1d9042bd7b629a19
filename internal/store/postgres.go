package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeSquared-Agency/boxrank/internal/scoring"
)

const schema = `
CREATE TABLE IF NOT EXISTS ranking_runs (
	run_id     UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	preset     TEXT NOT NULL DEFAULT '',
	weights    JSONB NOT NULL,
	policy     TEXT NOT NULL,
	entries    JSONB NOT NULL,
	winner     TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ranking_runs_created_at_idx ON ranking_runs (created_at DESC);
`

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const runColumns = `run_id, preset, weights, policy, entries, winner, created_at`

func (s *PostgresStore) SaveRun(ctx context.Context, run *RankingRun) error {
	weightsJSON, err := json.Marshal(run.Weights)
	if err != nil {
		return fmt.Errorf("marshal weights: %w", err)
	}
	entriesJSON, err := json.Marshal(run.Entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	return s.pool.QueryRow(ctx, `
		INSERT INTO ranking_runs (preset, weights, policy, entries, winner)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING run_id, created_at`,
		run.Preset, weightsJSON, string(run.Policy), entriesJSON, run.Winner,
	).Scan(&run.ID, &run.CreatedAt)
}

func (s *PostgresStore) GetRun(ctx context.Context, id uuid.UUID) (*RankingRun, error) {
	run, err := scanRun(s.pool.QueryRow(ctx, `
		SELECT `+runColumns+`
		FROM ranking_runs WHERE run_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return run, err
}

func (s *PostgresStore) ListRuns(ctx context.Context, filter RunFilter) ([]*RankingRun, error) {
	query := `SELECT ` + runColumns + ` FROM ranking_runs WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.Preset != "" {
		n++
		query += fmt.Sprintf(" AND preset = $%d", n)
		args = append(args, filter.Preset)
	}
	if filter.Winner != "" {
		n++
		query += fmt.Sprintf(" AND winner = $%d", n)
		args = append(args, filter.Winner)
	}

	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	n++
	query += fmt.Sprintf(" LIMIT $%d", n)
	args = append(args, limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*RankingRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func scanRun(row pgx.Row) (*RankingRun, error) {
	r := &RankingRun{}
	var weightsJSON, entriesJSON []byte
	var policy string
	if err := row.Scan(&r.ID, &r.Preset, &weightsJSON, &policy, &entriesJSON, &r.Winner, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.Policy = scoring.PenaltyMode(policy)
	if err := json.Unmarshal(weightsJSON, &r.Weights); err != nil {
		return nil, fmt.Errorf("decode weights: %w", err)
	}
	if err := json.Unmarshal(entriesJSON, &r.Entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return r, nil
}
