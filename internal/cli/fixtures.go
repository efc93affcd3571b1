package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/turnstile/internal/fixture"
	"github.com/roach88/turnstile/internal/runner"
)

// NewFixturesCommand creates the fixtures command, which regression-tests
// the checker itself against the labeled corpus.
func NewFixturesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures [corpus-dir]",
		Short: "Replay the labeled fixture corpus against the checker",
		Long: `Replay every labeled fixture through the schema validator and the
gate pipeline, asserting the observed result matches the embedded
expected label exactly (same pass/fail outcome and, for fail
fixtures, the same violation code set).

A fixture whose observed result diverges from its label is a
regression in the checker itself and is reported distinctly from
ordinary document failures.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := rootOpts.Config.FixturesDir
			if len(args) == 1 {
				dir = args[0]
			}
			return runFixtures(rootOpts, dir, cmd)
		},
	}

	return cmd
}

func runFixtures(opts *RootOptions, dir string, cmd *cobra.Command) error {
	r, err := runner.New()
	if err != nil {
		return NewExitError(ExitCommandError, err.Error())
	}

	opts.Log.Debug().Str("corpus_dir", dir).Msg("replaying fixture corpus")

	suite, err := fixture.RunDir(r, dir)
	if err != nil {
		return NewExitError(ExitCommandError, err.Error())
	}

	if opts.Format == "json" {
		resp := Response{Status: "ok", Data: suite}
		if !suite.Ok() {
			resp.Status = "error"
			resp.Error = &ResponseError{
				Code:    "E_CHECKER_REGRESSION",
				Message: fmt.Sprintf("%d fixture(s) diverged from their labels", suite.Regressions),
			}
		}
		if err := writeJSON(cmd.OutOrStdout(), resp); err != nil {
			return err
		}
	} else {
		suite.WriteText(cmd.OutOrStdout())
	}

	if !suite.Ok() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d fixture(s) diverged from their labels", suite.Regressions))
	}
	return nil
}
