// Package config holds the command-line configuration and its validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// Operation selects what the runner does with each input.
type Operation int

const (
	// Encrypt encrypts each input.
	Encrypt Operation = iota
	// Decrypt decrypts each input.
	Decrypt
	// Encode Base64-encodes each input.
	Encode
	// Decode Base64-decodes each input.
	Decode
	// GenerateIV prints freshly generated IVs.
	GenerateIV
)

// String returns the command name of the operation.
func (o Operation) String() string {
	switch o {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	case GenerateIV:
		return "iv"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// Ciphers reports whether the operation needs key material.
func (o Operation) Ciphers() bool {
	return o == Encrypt || o == Decrypt
}

// Key holds the key material source. At most one of the fields may be set.
type Key struct {
	// String is the raw key, used verbatim.
	String string `label:"--key" mapstructure:"key" mask:"fixed" validate:"exclusive=File"`

	// File is a path to a file containing the raw key.
	File string `label:"--key-file" mapstructure:"key-file"`
}

// Config holds the resolved flags, environment and positional arguments.
type Config struct {
	// Show prints the configuration and exits.
	Show bool

	// Parallel bounds the number of inputs processed at once.
	Parallel int `label:"--parallel" validate:"min=1"`

	// Quiet suppresses skipped-input warnings.
	Quiet bool

	// Stats prints a summary after processing.
	Stats bool

	// Key is the key material source.
	Key Key `mapstructure:",squash"`

	// IV is the initialization vector for modes that use one.
	IV string `label:"--iv" mapstructure:"iv"`

	// Mode is the cipher mode identifier. Empty selects the default ECB operation.
	Mode string `label:"--mode" mapstructure:"mode" validate:"omitempty,aesmode"`

	// From is a JSONC file holding an array of additional inputs.
	From string `label:"--from" mapstructure:"from"`

	// LogLevel is the zap level name.
	LogLevel string `label:"--log-level" mapstructure:"log-level" validate:"oneof=debug info warn error"`

	// Insecure selects the non-cryptographic IV generator.
	Insecure bool

	// Count is the number of IVs to generate.
	Count int `label:"--count" validate:"min=1"`

	// Operation is set by the subcommand.
	Operation Operation `mapstructure:"-"`

	// Inputs are the positional arguments.
	Inputs []string `mapstructure:"-"`
}

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

// ErrMissingKey is returned when a cipher operation has no key material.
var ErrMissingKey = errors.New("one of --key or --key-file is required")

// Display returns the value of the Show field.
func (c *Config) Display() bool {
	return c.Show
}

// Validate validates config against its struct tags and checks that cipher operations
// have key material. Violations are wrapped in ErrUsage.
func (c *Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := register(validator); err != nil {
		return err
	}

	errs := validator.Validate(config)

	switch {
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	case len(errs) > 1:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}

	if c.Operation.Ciphers() && c.Key.String == "" && c.Key.File == "" {
		return fmt.Errorf("%w: %w", ErrUsage, ErrMissingKey)
	}

	return nil
}

// ResolveKey returns the key material, reading it from the key file when one is configured.
// A single trailing line break in the file is dropped.
func (c *Config) ResolveKey() (string, error) {
	if c.Key.File == "" {
		return c.Key.String, nil
	}

	data, err := os.ReadFile(c.Key.File)
	if err != nil {
		return "", fmt.Errorf("reading key file: %w", err)
	}

	key := strings.TrimSuffix(string(data), "\n")

	return strings.TrimSuffix(key, "\r"), nil
}
