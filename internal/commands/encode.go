package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/strcrypt/internal/config"
)

// NewEncodeCommand creates a new cobra command for the encode subcommand.
func NewEncodeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "encode [flags] [inputs...]",
		Short:   "Base64-encode text",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, config.Encode),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return process(cmd, cfg)
		},
	}
}

// NewDecodeCommand creates a new cobra command for the decode subcommand.
func NewDecodeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decode [flags] [inputs...]",
		Short:   "Decode Base64 to text",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, config.Decode),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return process(cmd, cfg)
		},
	}
}
