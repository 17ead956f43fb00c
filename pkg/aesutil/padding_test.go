package aesutil

import (
	"bytes"
	"crypto/aes"
	"errors"
	"testing"
)

func TestPKCS7Pad(t *testing.T) {
	t.Parallel()

	for length := range 2*aes.BlockSize + 1 {
		data := bytes.Repeat([]byte{'x'}, length)
		padded := pkcs7Pad(data, aes.BlockSize)

		if len(padded)%aes.BlockSize != 0 || len(padded) <= length {
			t.Fatalf("pkcs7Pad(%d bytes) gave %d bytes", length, len(padded))
		}

		want := byte(len(padded) - length)
		for _, b := range padded[length:] {
			if b != want {
				t.Fatalf("pkcs7Pad(%d bytes) padding byte %d, want %d", length, b, want)
			}
		}

		unpadded, err := pkcs7Unpad(padded)
		if err != nil {
			t.Fatalf("pkcs7Unpad(%d bytes) error: %v", length, err)
		}

		if !bytes.Equal(unpadded, data) {
			t.Errorf("pkcs7Unpad(pkcs7Pad(%d bytes)) = %q", length, unpadded)
		}
	}
}

func TestPKCS7PadDoesNotAlias(t *testing.T) {
	t.Parallel()

	data := make([]byte, 3, 32)
	copy(data, "abc")

	_ = pkcs7Pad(data, aes.BlockSize)

	if got := data[:cap(data)][3]; got != 0 {
		t.Errorf("pkcs7Pad wrote into the caller's backing array: %d", got)
	}
}

func TestPKCS7UnpadInvalid(t *testing.T) {
	t.Parallel()

	tests := map[string][]byte{
		"empty":         {},
		"zero":          append(bytes.Repeat([]byte{'a'}, 15), 0),
		"too large":     append(bytes.Repeat([]byte{'a'}, 15), 17),
		"beyond length": {'a', 3},
		"mismatch":      append(bytes.Repeat([]byte{'a'}, 13), 1, 2, 3),
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := pkcs7Unpad(data)
			if !errors.Is(err, ErrInvalidPadding) && !errors.Is(err, ErrInvalidBlockSize) {
				t.Errorf("pkcs7Unpad(%v) error = %v", data, err)
			}
		})
	}
}

func TestECBBlockMode(t *testing.T) {
	t.Parallel()

	block, err := aes.NewCipher([]byte("0123456789abcdef"))
	if err != nil {
		t.Fatal(err)
	}

	src := bytes.Repeat([]byte("0123456789ABCDEF"), 3)
	dst := make([]byte, len(src))

	newECBEncrypter(block).CryptBlocks(dst, src)

	if !bytes.Equal(dst[:16], dst[16:32]) || !bytes.Equal(dst[16:32], dst[32:]) {
		t.Fatal("ECB produced differing blocks for identical input blocks")
	}

	out := make([]byte, len(dst))
	newECBDecrypter(block).CryptBlocks(out, dst)

	if !bytes.Equal(out, src) {
		t.Errorf("ECB round trip = %q, want %q", out, src)
	}

	if size := newECBEncrypter(block).BlockSize(); size != aes.BlockSize {
		t.Errorf("BlockSize() = %d", size)
	}
}
