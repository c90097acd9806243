package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoralesv/educrawl"
)

// Compile-time interface verification.
var _ educrawl.RunService = (*RunService)(nil)

// RunService implements educrawl.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun creates a new run record and assigns its ID.
func (s *RunService) CreateRun(ctx context.Context, run *educrawl.CrawlRun) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO crawl_runs (run_id, start_url, pages, started_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.StartURL, run.Pages, run.StartedAt.Format(time.RFC3339))

	return err
}

// FinishRun stores the final counters and finish time for a run.
func (s *RunService) FinishRun(ctx context.Context, run *educrawl.CrawlRun) error {
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE crawl_runs
		SET links_found = ?, saved = ?, skipped = ?, failed = ?, finished_at = ?
		WHERE run_id = ?
	`, run.LinksFound, run.Saved, run.Skipped, run.Failed,
		run.FinishedAt.Format(time.RFC3339), run.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return educrawl.Errorf(educrawl.ENOTFOUND, "run not found")
	}

	return nil
}
