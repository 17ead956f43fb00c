package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/strcrypt/internal/config"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] [inputs...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt Base64 ciphertext",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, config.Decrypt),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return process(cmd, cfg)
		},
	}
}
