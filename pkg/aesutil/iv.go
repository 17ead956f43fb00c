package aesutil

import (
	"math/rand/v2"

	"github.com/tink-crypto/tink-go/v2/subtle/random"
)

const ivAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateIV returns an IVSize-character alphanumeric IV drawn from a cryptographically
// secure source.
func GenerateIV() string {
	// Largest multiple of the alphabet size that fits in a byte; higher values are rejected.
	const limit = 256 - 256%len(ivAlphabet)

	iv := make([]byte, 0, IVSize)

	for len(iv) < IVSize {
		for _, b := range random.GetRandomBytes(IVSize) {
			if int(b) >= limit {
				continue
			}

			iv = append(iv, ivAlphabet[int(b)%len(ivAlphabet)])

			if len(iv) == IVSize {
				break
			}
		}
	}

	return string(iv)
}

// InsecureIV returns an IVSize-character alphanumeric IV from a non-cryptographic source.
// The result is predictable and must not protect real data; use GenerateIV instead.
func InsecureIV() string {
	iv := make([]byte, IVSize)

	for i := range iv {
		iv[i] = ivAlphabet[rand.IntN(len(ivAlphabet))] //nolint:gosec // intentionally non-cryptographic
	}

	return string(iv)
}
