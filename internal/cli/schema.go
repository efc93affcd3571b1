package cli

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/roach88/turnstile/internal/trace"
)

// NewSchemaCommand creates the schema command, which exports the trace
// contract as JSON Schema for client exporter teams.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the trace document contract as JSON Schema",
		Long: `Emit a JSON Schema rendering of the trace document contract.

This is a convenience for client-side exporter teams; the CUE contract
embedded in the checker remains the source of truth for validation.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reflector := jsonschema.Reflector{
				AllowAdditionalProperties: false,
			}
			s := reflector.Reflect(&trace.Document{})

			data, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return NewExitError(ExitCommandError, fmt.Sprintf("failed to render schema: %v", err))
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
