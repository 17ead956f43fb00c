// Package logging builds the zap logger used by the command-line tool.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	// LogTypeDevelopment writes human-readable console output. It is the default.
	LogTypeDevelopment LogType = "development"
	// LogTypeProduction writes JSON output.
	LogTypeProduction LogType = "production"
)

type (
	// Config selects the level, encoding and destinations of the logger.
	Config struct {
		// Level is a zap level name such as "debug" or "warn".
		Level string
		// Type is a LogType; empty selects development.
		Type string
		// OutputPaths overrides the default stderr destination.
		OutputPaths []string
	}

	// LogType names a preset zap configuration.
	LogType string
)

// New builds a logger writing to stderr unless OutputPaths says otherwise.
func New(config Config) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	var c zap.Config

	switch LogType(config.Type) {
	case LogTypeDevelopment, "":
		c = zap.NewDevelopmentConfig()
		c.DisableStacktrace = true
	case LogTypeProduction:
		c = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown logger type %q", config.Type)
	}

	c.Level = lvl
	c.OutputPaths = []string{"stderr"}

	if len(config.OutputPaths) != 0 {
		c.OutputPaths = config.OutputPaths
	}

	return c.Build()
}
