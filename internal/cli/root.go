package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/roach88/turnstile/internal/config"
	"github.com/roach88/turnstile/internal/logging"
)

// Version information set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootOptions holds global flags and resolved configuration shared by all
// commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json"
	ConfigFile string

	Config *config.Config
	Log    zerolog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the turnstile CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "turnstile",
		Short: "Conformance checker for turn-state traces",
		Long: `Turnstile validates recorded conversational-turn traces against the
turn-state trace contract: schema structure plus five interaction
invariants (forward path, toggle preservation, scaffolding
non-amputation, hint actionability, no flattening).

Exit codes:
  0 - all documents passed
  1 - conformance failure or fixture regression
  2 - command error`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(opts.ConfigFile)
			if err != nil {
				return NewExitError(ExitCommandError, err.Error())
			}
			opts.Config = cfg

			if !cmd.Flags().Changed("format") && cfg.Format != "" {
				opts.Format = cfg.Format
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			if opts.Verbose {
				opts.Log = logging.Setup("debug")
			} else {
				opts.Log = logging.Setup(cfg.LogLevel)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "config file path")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewFixturesCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "turnstile %s\n", Version)
			fmt.Fprintf(w, "  commit: %s\n", Commit)
			fmt.Fprintf(w, "  built:  %s\n", Date)
		},
	}
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
