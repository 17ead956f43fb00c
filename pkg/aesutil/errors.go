package aesutil

import "errors"

var (
	// ErrUnsupportedMode is returned when a mode identifier is not recognized.
	ErrUnsupportedMode = errors.New("unsupported cipher mode")
	// ErrMalformedCiphertext is returned when ciphertext is not valid Base64.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
	// ErrCipher is returned when the AES primitive rejects the key, the IV or the ciphertext,
	// including invalid padding after decryption.
	ErrCipher = errors.New("cipher failure")
	// ErrInvalidPadding is returned when PKCS#7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidBlockSize is returned when ciphertext length is not aligned with the AES block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")
)
