package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/strcrypt/internal/config"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] [inputs...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt text",
		Long: `Encrypt each input and print the Base64 ciphertext.
Without --mode the input is encrypted in ECB mode and --iv is ignored.`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, config.Encrypt),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return process(cmd, cfg)
		},
	}
}
