package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/turnstile/internal/history"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DBPath string
	Limit  int
}

// NewHistoryCommand creates the history command for inspecting recorded
// batch runs.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded conformance runs",
		Long: `List past batch runs recorded with 'check --record', newest first.

Examples:
  turnstile history
  turnstile history --limit 5 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "history database path (default from config)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs to list")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = opts.Config.HistoryDB
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return NewExitError(ExitCommandError, err.Error())
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), opts.Limit)
	if err != nil {
		return NewExitError(ExitCommandError, err.Error())
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), Response{Status: "ok", Data: runs})
	}

	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(w, "No recorded runs.")
		return nil
	}
	for _, run := range runs {
		status := "ok"
		if run.Failed > 0 {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s  %s  %s  %d/%d passed  [%s]\n",
			run.StartedAt.Format("2006-01-02 15:04:05"), run.ID, run.BaseDir,
			run.Passed, run.Total, status)
	}
	return nil
}
