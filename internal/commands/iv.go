package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/strcrypt/internal/config"
	"github.com/idelchi/strcrypt/internal/logic"
)

// NewIVCommand creates a new cobra command for the iv subcommand.
func NewIVCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iv [flags]",
		Short: "Generate initialization vectors",
		Long: `Generate 16-character alphanumeric IVs from a cryptographically secure source.
--insecure switches to a predictable generator meant for examples only.`,
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, config.GenerateIV),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunIV(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Bool("insecure", false, "Use the non-cryptographic generator")
	cmd.Flags().IntP("count", "n", 1, "Number of IVs to generate")

	return cmd
}
