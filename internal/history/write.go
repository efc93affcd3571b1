package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/turnstile/internal/runner"
)

// Run is one recorded batch run.
type Run struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	BaseDir   string    `json:"base_dir"`
	Total     int       `json:"total"`
	Passed    int       `json:"passed"`
	Failed    int       `json:"failed"`
}

// NewRun builds a Run record from a report. The id is a fresh UUID.
func NewRun(report *runner.Report, startedAt time.Time) Run {
	return Run{
		ID:        uuid.NewString(),
		StartedAt: startedAt.UTC(),
		BaseDir:   report.BaseDir,
		Total:     report.Total,
		Passed:    report.Passed,
		Failed:    report.Failed,
	}
}

// RecordRun persists a run and its per-document results in one
// transaction. Uses ON CONFLICT DO NOTHING on the run id for idempotency.
func (s *Store) RecordRun(ctx context.Context, run Run, results []runner.DocumentResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, base_dir, total, passed, failed)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.StartedAt.Format(time.RFC3339),
		run.BaseDir,
		run.Total,
		run.Passed,
		run.Failed,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	for _, result := range results {
		codes := result.Codes()
		if codes == nil {
			codes = []string{}
		}
		codesJSON, err := json.Marshal(codes)
		if err != nil {
			return fmt.Errorf("record run: marshal codes: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_results (run_id, path, pass, codes)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(run_id, path) DO NOTHING
		`,
			run.ID,
			result.Path,
			result.Pass,
			string(codesJSON),
		)
		if err != nil {
			return fmt.Errorf("record run: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}
