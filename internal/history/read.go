package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DocumentRow is one stored per-document result.
type DocumentRow struct {
	Path  string   `json:"path"`
	Pass  bool     `json:"pass"`
	Codes []string `json:"codes"`
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, base_dir, total, passed, failed
		FROM runs
		ORDER BY started_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var startedAt string
		if err := rows.Scan(&run.ID, &startedAt, &run.BaseDir, &run.Total, &run.Passed, &run.Failed); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		run.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("list runs: bad started_at %q: %w", startedAt, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// RunResults returns the per-document rows of one run, in path order.
func (s *Store) RunResults(ctx context.Context, runID string) ([]DocumentRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, pass, codes
		FROM run_results
		WHERE run_id = ?
		ORDER BY path
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("run results: %w", err)
	}
	defer rows.Close()

	var results []DocumentRow
	for rows.Next() {
		var row DocumentRow
		var codesJSON string
		if err := rows.Scan(&row.Path, &row.Pass, &codesJSON); err != nil {
			return nil, fmt.Errorf("run results: %w", err)
		}
		if err := json.Unmarshal([]byte(codesJSON), &row.Codes); err != nil {
			return nil, fmt.Errorf("run results: bad codes for %s: %w", row.Path, err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("run results: %w", err)
	}
	return results, nil
}
