package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/turnstile/internal/history"
	"github.com/roach88/turnstile/internal/runner"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Record bool
	DBPath string
}

// NewCheckCommand creates the check command, the CI-facing entry point.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check [base-dir]",
		Short: "Validate a directory of trace documents",
		Long: `Run every .json trace document under the base directory through the
schema validator and the five invariant gates.

Each document is reported pass/fail with its full violation list; the
run succeeds only if every document passes every gate.

Examples:
  turnstile check ./traces
  turnstile check ./traces --format json
  turnstile check ./traces --record`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir := opts.Config.BaseDir
			if len(args) == 1 {
				baseDir = args[0]
			}
			return runCheck(opts, baseDir, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Record, "record", false, "record the run in the history database")
	cmd.Flags().StringVar(&opts.DBPath, "db", "", "history database path (default from config)")

	return cmd
}

func runCheck(opts *CheckOptions, baseDir string, cmd *cobra.Command) error {
	startedAt := time.Now()

	r, err := runner.New()
	if err != nil {
		return NewExitError(ExitCommandError, err.Error())
	}

	opts.Log.Debug().Str("base_dir", baseDir).Msg("starting batch run")

	report, err := r.RunDir(baseDir)
	if err != nil {
		return NewExitError(ExitCommandError, err.Error())
	}

	if opts.Record {
		if err := recordRun(opts, report, startedAt); err != nil {
			return NewExitError(ExitCommandError, err.Error())
		}
		opts.Log.Debug().Msg("run recorded")
	}

	if opts.Format == "json" {
		resp := Response{Status: "ok", Data: report}
		if !report.Ok() {
			resp.Status = "error"
			resp.Error = &ResponseError{
				Code:    "E_CONFORMANCE_FAILED",
				Message: fmt.Sprintf("%d document(s) failed", report.Failed),
			}
		}
		if err := writeJSON(cmd.OutOrStdout(), resp); err != nil {
			return err
		}
	} else {
		report.WriteText(cmd.OutOrStdout())
	}

	if !report.Ok() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d document(s) failed", report.Failed))
	}
	return nil
}

func recordRun(opts *CheckOptions, report *runner.Report, startedAt time.Time) error {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = opts.Config.HistoryDB
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run := history.NewRun(report, startedAt)
	return store.RecordRun(context.Background(), run, report.Results)
}
