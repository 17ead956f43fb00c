package aesutil

import "fmt"

// Mode is an AES block cipher mode.
type Mode byte

const (
	// ECB is Electronic Codebook. It takes no IV.
	ECB Mode = iota
	// CBC is Cipher Block Chaining.
	CBC
	// CFB is Cipher Feedback with a full-block segment.
	CFB
)

// External mode identifiers, in algorithm/mode/padding form.
const (
	IdentifierECB = "AES/ECB/PKCS5Padding"
	IdentifierCBC = "AES/CBC/PKCS5Padding"
	IdentifierCFB = "AES/CFB/PKCS5Padding"
)

// Padding names the block padding scheme shared by all modes.
const Padding = "PKCS5Padding"

type modeSpec struct {
	identifier string
	requiresIV bool
}

//nolint:gochecknoglobals // fixed registry
var modes = [...]modeSpec{
	ECB: {identifier: IdentifierECB, requiresIV: false},
	CBC: {identifier: IdentifierCBC, requiresIV: true},
	CFB: {identifier: IdentifierCFB, requiresIV: true},
}

// ParseMode resolves an external identifier. The match is exact and case-sensitive.
func ParseMode(identifier string) (Mode, error) {
	for mode, spec := range modes {
		if spec.identifier == identifier {
			return Mode(mode), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, identifier)
}

// Modes lists every supported mode.
func Modes() []Mode {
	return []Mode{ECB, CBC, CFB}
}

// String returns the external identifier.
func (m Mode) String() string {
	if !m.valid() {
		return fmt.Sprintf("Mode(%d)", m)
	}

	return modes[m].identifier
}

// RequiresIV reports whether the mode consumes an initialization vector.
func (m Mode) RequiresIV() bool {
	return m.valid() && modes[m].requiresIV
}

func (m Mode) valid() bool {
	return int(m) < len(modes)
}
