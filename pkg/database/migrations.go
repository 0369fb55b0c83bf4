package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateCustomIndexes creates PostgreSQL indexes that Ent/Atlas cannot express.
func CreateCustomIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Full-text search over goals and final answers (operational queries).
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_runs_goal_gin
		ON runs USING gin(to_tsvector('english', goal))`)
	if err != nil {
		return fmt.Errorf("failed to create goal GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_runs_answer_gin
		ON runs USING gin(to_tsvector('english', COALESCE(answer, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create answer GIN index: %w", err)
	}

	// At most one non-terminal run per webhook fingerprint. The in-memory
	// dedup cache is per-process; this backstops multi-replica deployments.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS run_alert_fingerprint_active
		ON runs (alert_fingerprint)
		WHERE alert_fingerprint IS NOT NULL AND status IN ('pending', 'running', 'awaiting_approval')`)
	if err != nil {
		return fmt.Errorf("failed to create active fingerprint index: %w", err)
	}

	return nil
}
