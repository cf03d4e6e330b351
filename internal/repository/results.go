package repository

import (
	"context"
	"fmt"

	"github.com/animaldominion/dominion-server-go/internal/game"
)

const resultsSchema = `
CREATE TABLE IF NOT EXISTS match_results (
	game_id     TEXT PRIMARY KEY,
	winner      TEXT NOT NULL,
	loser       TEXT NOT NULL,
	turns       INTEGER NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL
)`

// ResultRepository persists finished-match results. The rules engine never
// reads these back; they exist for operators and standings tooling.
type ResultRepository struct {
	db *DB
}

// NewResultRepository creates a result repository over the shared pool.
func NewResultRepository(db *DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// EnsureSchema creates the match_results table when missing.
func (r *ResultRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.pool.Exec(ctx, resultsSchema); err != nil {
		return fmt.Errorf("ensuring match_results schema: %w", err)
	}
	return nil
}

// RecordResult inserts one finished match. Satisfies game.MatchRecorder.
func (r *ResultRepository) RecordResult(ctx context.Context, result game.MatchResult) error {
	_, err := r.db.pool.Exec(ctx,
		`INSERT INTO match_results (game_id, winner, loser, turns, finished_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (game_id) DO NOTHING`,
		result.GameID, result.Winner, result.Loser, result.Turns, result.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting match result: %w", err)
	}
	return nil
}
