package logic

import (
	"fmt"
	"io"

	"github.com/idelchi/strcrypt/internal/config"
	"github.com/idelchi/strcrypt/pkg/aesutil"
)

// RunIV writes cfg.Count generated IVs to out, one per line.
func RunIV(cfg *config.Config, out io.Writer) error {
	generate := aesutil.GenerateIV
	if cfg.Insecure {
		generate = aesutil.InsecureIV
	}

	for range cfg.Count {
		if _, err := fmt.Fprintln(out, generate()); err != nil {
			return fmt.Errorf("writing IV: %w", err)
		}
	}

	return nil
}
