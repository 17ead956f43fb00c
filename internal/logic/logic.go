// Package logic runs the configured operation over every input.
package logic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/strcrypt/internal/config"
	"github.com/idelchi/strcrypt/pkg/aesutil"
	"github.com/idelchi/strcrypt/pkg/base64text"
)

// ErrFailed is returned when at least one input could not be processed.
var ErrFailed = errors.New("processing failed")

// transform maps one input to its output. ok is false when the input was skipped.
type transform func(input string) (output string, ok bool, err error)

// outcome is the result of processing a single input.
type outcome struct {
	input  string
	output string
	ok     bool
	err    error
}

// Run is the main logic of the application.
// Every input produces one line on out, in input order; skipped and failed inputs
// produce an empty line and a log entry. Outputs are written unescaped, so an output
// containing line breaks spans several lines.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger, out, errOut io.Writer) error {
	start := time.Now()

	inputs, err := collectInputs(cfg)
	if err != nil {
		return fmt.Errorf("collecting inputs: %w", err)
	}

	fn, err := newTransform(cfg)
	if err != nil {
		return err
	}

	outcomes := process(ctx, cfg.Parallel, inputs, fn)

	st, err := report(out, outcomes, cfg.Quiet, logger)
	if err != nil {
		return err
	}

	if cfg.Stats {
		st.print(errOut, time.Since(start))
	}

	if st.errored > 0 {
		return fmt.Errorf("%w: %d of %d inputs", ErrFailed, st.errored, st.scanned)
	}

	return nil
}

// newTransform picks the operation for cfg.
func newTransform(cfg *config.Config) (transform, error) {
	switch cfg.Operation {
	case config.Encode:
		return func(input string) (string, bool, error) {
			return base64text.Encode(input), true, nil
		}, nil
	case config.Decode:
		return func(input string) (string, bool, error) {
			output, err := base64text.Decode(input)

			return output, err == nil, err
		}, nil
	case config.Encrypt, config.Decrypt:
	default:
		return nil, fmt.Errorf("unknown operation %s", cfg.Operation)
	}

	key, err := cfg.ResolveKey()
	if err != nil {
		return nil, err
	}

	decrypt := cfg.Operation == config.Decrypt

	switch {
	case cfg.Mode == "" && decrypt:
		return unwrap(func(input string) (aesutil.Result, error) {
			return aesutil.Decrypt(input, key)
		}), nil
	case cfg.Mode == "":
		return unwrap(func(input string) (aesutil.Result, error) {
			return aesutil.Encrypt(input, key)
		}), nil
	case decrypt:
		return unwrap(func(input string) (aesutil.Result, error) {
			return aesutil.DecryptWith(input, key, cfg.IV, cfg.Mode)
		}), nil
	default:
		return unwrap(func(input string) (aesutil.Result, error) {
			return aesutil.EncryptWith(input, key, cfg.IV, cfg.Mode)
		}), nil
	}
}

func unwrap(fn func(string) (aesutil.Result, error)) transform {
	return func(input string) (string, bool, error) {
		result, err := fn(input)
		if err != nil {
			return "", false, err
		}

		output, ok := result.Get()

		return output, ok, nil
	}
}

// process runs fn over inputs with at most parallel calls in flight.
// Each call writes only its own slot, so the returned slice keeps input order.
func process(ctx context.Context, parallel int, inputs []string, fn transform) []outcome {
	outcomes := make([]outcome, len(inputs))

	group := errgroup.Group{}
	group.SetLimit(parallel)

	for i, input := range inputs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = outcome{input: input, err: err}

				return nil
			}

			output, ok, err := fn(input)
			outcomes[i] = outcome{input: input, output: output, ok: ok, err: err}

			return nil
		})
	}

	_ = group.Wait()

	return outcomes
}

// report writes one line per outcome and tallies the results.
func report(out io.Writer, outcomes []outcome, quiet bool, logger *zap.Logger) (stats, error) {
	st := stats{scanned: len(outcomes)}

	for i, o := range outcomes {
		st.bytesIn += int64(len(o.input))

		switch {
		case o.err != nil:
			st.errored++

			logger.Error("processing input", zap.Int("index", i), zap.Error(o.err))
		case !o.ok:
			st.skipped++

			if !quiet {
				logger.Warn("input skipped: blank input", zap.Int("index", i))
			}
		default:
			st.processed++
			st.bytesOut += int64(len(o.output))

			logger.Debug("processed input", zap.Int("index", i), zap.Int("size", len(o.output)))
		}

		if _, err := fmt.Fprintln(out, o.output); err != nil {
			return st, fmt.Errorf("writing output: %w", err)
		}
	}

	return st, nil
}
