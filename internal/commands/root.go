package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/strcrypt/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// Flags are bound to viper and to STRCRYPT_ prefixed environment variables.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version, defaults)

	root.Use = "strcrypt [flags] command [flags]"
	root.Short = "Text encryption utility"
	root.Long = `A text encryption utility for AES in ECB, CBC and CFB modes.
Ciphertext is written as Base64. Inputs come from positional arguments and
from a JSONC array given with --from; each input produces one output line.
Output lines are not escaped, so decoded text containing line breaks spans
several lines.

None of the modes authenticate the ciphertext. ECB reveals repeated blocks.`

	flags := root.PersistentFlags()

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress warnings about skipped inputs")
	flags.Bool("stats", false, "Print a summary after processing")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")

	flags.StringP("key", "k", "", "Encryption key (16, 24 or 32 bytes, used verbatim)")
	flags.StringP("key-file", "f", "", "Path to a file containing the encryption key")
	flags.String("iv", "", "Initialization vector (16 bytes) for CBC and CFB")
	flags.StringP("mode", "m", "", "Cipher mode: AES/ECB/PKCS5Padding, AES/CBC/PKCS5Padding or AES/CFB/PKCS5Padding")
	flags.String("from", "", "Path to a JSONC file with an array of additional inputs")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewEncodeCommand(cfg),
		NewDecodeCommand(cfg),
		NewIVCommand(cfg),
	)

	return root
}
