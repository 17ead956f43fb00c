package logic_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/idelchi/strcrypt/internal/config"
	"github.com/idelchi/strcrypt/internal/logic"
	"github.com/idelchi/strcrypt/pkg/aesutil"
	"github.com/idelchi/strcrypt/pkg/base64text"
)

const key = "0123456789abcdef"

func newConfig(op config.Operation, inputs ...string) *config.Config {
	return &config.Config{
		Parallel:  4,
		LogLevel:  "debug",
		Count:     1,
		Key:       config.Key{String: key},
		Operation: op,
		Inputs:    inputs,
	}
}

func run(t *testing.T, cfg *config.Config) ([]string, *observer.ObservedLogs, error) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)

	var out, errOut bytes.Buffer

	err := logic.Run(context.Background(), cfg, zap.New(core), &out, &errOut)

	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"), logs, err
}

func TestRunEncryptDecrypt(t *testing.T) {
	t.Parallel()

	lines, _, err := run(t, newConfig(config.Encrypt, "hello world", "second", "third"))
	require.NoError(t, err)
	require.Len(t, lines, 3)
	require.Equal(t, "gWm+1O9JqIdFWcWyANqt5w==", lines[0])

	decrypted, _, err := run(t, newConfig(config.Decrypt, lines...))
	require.NoError(t, err)
	require.Equal(t, []string{"hello world", "second", "third"}, decrypted)
}

func TestRunWithMode(t *testing.T) {
	t.Parallel()

	cfg := newConfig(config.Encrypt, "hello world")
	cfg.Mode = aesutil.IdentifierCBC
	cfg.IV = "abcdefghijklmnop"

	lines, _, err := run(t, cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"qqFFyNlv5MdO3lY3hBC3Qg=="}, lines)

	cfg = newConfig(config.Decrypt, lines...)
	cfg.Mode = aesutil.IdentifierCBC
	cfg.IV = "abcdefghijklmnop"

	lines, _, err = run(t, cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"hello world"}, lines)
}

func TestRunSkipped(t *testing.T) {
	t.Parallel()

	lines, logs, err := run(t, newConfig(config.Encrypt, "a", "", "b"))
	require.NoError(t, err)
	require.Len(t, lines, 3)
	require.Empty(t, lines[1])
	require.Equal(t, 1, logs.FilterMessage("input skipped: blank input").Len())
}

func TestRunFailures(t *testing.T) {
	t.Parallel()

	lines, logs, err := run(t, newConfig(config.Decrypt, "gWm+1O9JqIdFWcWyANqt5w==", "not-valid-base64!!"))
	require.ErrorIs(t, err, logic.ErrFailed)
	require.Equal(t, []string{"hello world", ""}, lines)

	entries := logs.FilterMessage("processing input").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestRunEncodeDecode(t *testing.T) {
	t.Parallel()

	cfg := newConfig(config.Encode, "hello world", "")
	cfg.Key = config.Key{}

	lines, _, err := run(t, cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"aGVsbG8gd29ybGQ=", ""}, lines)

	cfg = newConfig(config.Decode, "aGVsbG8gd29ybGQ=")

	lines, _, err = run(t, cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"hello world"}, lines)
}

func TestRunFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "inputs.jsonc")
	content := `[
		// first
		"hello world",
		"second", /* trailing */
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := newConfig(config.Encrypt, "arg")
	cfg.From = path

	lines, _, err := run(t, cfg)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	require.Equal(t, "gWm+1O9JqIdFWcWyANqt5w==", lines[1])
}

func TestRunNoInputs(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, newConfig(config.Encrypt))
	require.ErrorIs(t, err, logic.ErrNoInputs)
}

func TestRunStats(t *testing.T) {
	t.Parallel()

	cfg := newConfig(config.Encode, "hello")
	cfg.Stats = true

	var out, errOut bytes.Buffer

	require.NoError(t, logic.Run(context.Background(), cfg, zap.NewNop(), &out, &errOut))
	require.Contains(t, errOut.String(), "Processed: 1")
	require.Contains(t, errOut.String(), "5 B")
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer

	err := logic.Run(ctx, newConfig(config.Encode, "a"), zap.NewNop(), &out, &errOut)
	require.ErrorIs(t, err, logic.ErrFailed)
}

func TestRunIV(t *testing.T) {
	t.Parallel()

	for _, insecure := range []bool{false, true} {
		cfg := newConfig(config.Encrypt)
		cfg.Count = 3
		cfg.Insecure = insecure

		var out bytes.Buffer

		require.NoError(t, logic.RunIV(cfg, &out))

		lines := strings.Fields(out.String())
		require.Len(t, lines, 3)

		for _, line := range lines {
			require.Len(t, line, aesutil.IVSize)
		}
	}
}

func TestRunDecodeMultiline(t *testing.T) {
	t.Parallel()

	cfg := newConfig(config.Decode, base64text.Encode("first\nsecond"), base64text.Encode("third"))

	lines, _, err := run(t, cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second", "third"}, lines)
}
