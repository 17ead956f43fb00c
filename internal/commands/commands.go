package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/strcrypt/internal/config"
	"github.com/idelchi/strcrypt/internal/logging"
	"github.com/idelchi/strcrypt/internal/logic"
)

// defaults sets the values of keys that not every command binds a flag for.
func defaults(_ *cobra.Command, _ []string) error {
	viper.SetDefault("count", 1)

	return nil
}

// preRun returns a PreRunE handler that records the operation and positional args
// and validates the configuration.
func preRun(cfg *config.Config, operation config.Operation) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Operation = operation
		cfg.Inputs = args

		return cobraext.Validate(cfg, cfg)
	}
}

// process runs the configured operation over all inputs.
func process(cmd *cobra.Command, cfg *config.Config) error {
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable

	return logic.Run(cmd.Context(), cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
