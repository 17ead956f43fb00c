package aesutil

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/idelchi/strcrypt/pkg/base64text"
)

// Encrypt encrypts text under key in ECB mode and returns the Base64 ciphertext.
// The result is skipped when text or key is empty.
func Encrypt(text, key string) (Result, error) {
	if text == "" || key == "" {
		return skipped(), nil
	}

	return encrypt(text, key, nil, ECB)
}

// Decrypt reverses Encrypt. The result is skipped when text or key is empty.
func Decrypt(text, key string) (Result, error) {
	if text == "" || key == "" {
		return skipped(), nil
	}

	return decrypt(text, key, nil, ECB)
}

// EncryptWith encrypts text under key in the mode named by identifier.
// CBC and CFB use iv; ECB ignores it.
// The result is skipped when text or key is empty, or when the mode needs an IV and iv is empty.
func EncryptWith(text, key, iv, identifier string) (Result, error) {
	mode, raw, ok, err := resolve(text, key, iv, identifier)
	if err != nil || !ok {
		return skippedOr(err)
	}

	return encrypt(text, key, raw, mode)
}

// DecryptWith reverses EncryptWith and skips on the same blank inputs.
func DecryptWith(text, key, iv, identifier string) (Result, error) {
	mode, raw, ok, err := resolve(text, key, iv, identifier)
	if err != nil || !ok {
		return skippedOr(err)
	}

	return decrypt(text, key, raw, mode)
}

// resolve checks the inputs of the parameterized operations in order: blank text or key,
// mode identifier, blank IV for modes that need one, IV length.
// ok is false when the call must be skipped.
func resolve(text, key, iv, identifier string) (mode Mode, raw []byte, ok bool, err error) {
	if text == "" || key == "" {
		return 0, nil, false, nil
	}

	mode, err = ParseMode(identifier)
	if err != nil {
		return 0, nil, false, err
	}

	if mode.RequiresIV() && iv == "" {
		return 0, nil, false, nil
	}

	raw, err = ivFor(mode, iv)
	if err != nil {
		return 0, nil, false, err
	}

	return mode, raw, true, nil
}

func skippedOr(err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}

	return skipped(), nil
}

func encrypt(text, key string, iv []byte, mode Mode) (Result, error) {
	block, err := newBlock(key)
	if err != nil {
		return Result{}, err
	}

	padded := pkcs7Pad([]byte(text), aes.BlockSize)
	ciphertext := make([]byte, len(padded))

	switch mode {
	case ECB:
		newECBEncrypter(block).CryptBlocks(ciphertext, padded)
	case CBC:
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	case CFB:
		cipher.NewCFBEncrypter(block, iv).XORKeyStream(ciphertext, padded) //nolint:staticcheck // CFB is required for compatibility
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}

	return value(base64text.EncodeBytes(ciphertext)), nil
}

func decrypt(text, key string, iv []byte, mode Mode) (Result, error) {
	ciphertext, err := base64text.DecodeBytes(text)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}

	block, err := newBlock(key)
	if err != nil {
		return Result{}, err
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return Result{}, fmt.Errorf("%w: %w: %d bytes", ErrCipher, ErrInvalidBlockSize, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))

	switch mode {
	case ECB:
		newECBDecrypter(block).CryptBlocks(plaintext, ciphertext)
	case CBC:
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	case CFB:
		cipher.NewCFBDecrypter(block, iv).XORKeyStream(plaintext, ciphertext) //nolint:staticcheck // CFB is required for compatibility
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
	}

	unpadded, err := pkcs7Unpad(plaintext)
	if err != nil {
		return Result{}, fmt.Errorf("%w: removing padding: %w", ErrCipher, err)
	}

	return value(base64text.ToText(unpadded)), nil
}
