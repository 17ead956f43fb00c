package logic

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/idelchi/strcrypt/internal/config"
)

// ErrNoInputs is returned when neither arguments nor an input file provide anything to process.
var ErrNoInputs = errors.New("no inputs")

// LoadInputs reads a JSONC file holding an array of strings.
func LoadInputs(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading inputs file %q: %w", path, err)
	}

	clean := jsonc.ToJSONInPlace(data)

	var inputs []string
	if err := json.Unmarshal(clean, &inputs); err != nil {
		return nil, fmt.Errorf("parsing inputs file %q: %w", path, err)
	}

	return inputs, nil
}

// collectInputs returns the positional inputs followed by those from the inputs file.
func collectInputs(cfg *config.Config) ([]string, error) {
	inputs := append([]string{}, cfg.Inputs...)

	if cfg.From != "" {
		loaded, err := LoadInputs(cfg.From)
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, loaded...)
	}

	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	return inputs, nil
}
