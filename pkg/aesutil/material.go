package aesutil

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// IVSize is the required IV length in bytes.
const IVSize = aes.BlockSize

// material returns the raw bytes of a caller-supplied key or IV.
func material(s string) []byte {
	return []byte(s)
}

// newBlock creates a fresh AES block for key. The primitive accepts 16, 24 or 32 bytes.
func newBlock(key string) (cipher.Block, error) {
	block, err := aes.NewCipher(material(key))
	if err != nil {
		return nil, fmt.Errorf("%w: creating cipher: %w", ErrCipher, err)
	}

	return block, nil
}

// ivFor returns the IV bytes mode needs, or nil for modes that take none.
func ivFor(mode Mode, iv string) ([]byte, error) {
	if !mode.RequiresIV() {
		return nil, nil
	}

	raw := material(iv)
	if len(raw) != IVSize {
		return nil, fmt.Errorf("%w: IV must be %d bytes, got %d", ErrCipher, IVSize, len(raw))
	}

	return raw, nil
}
