// Package base64text converts between UTF-8 text and its standard Base64 representation.
//
// Encoding always produces padded output. Decoding accepts padded input and, when the
// input length is not a multiple of four and carries no padding, unpadded input.
package base64text

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// ErrMalformed is returned when the input is not valid Base64, including input with line breaks.
var ErrMalformed = errors.New("malformed base64")

// Encode returns the Base64 encoding of the UTF-8 bytes of text.
func Encode(text string) string {
	return EncodeBytes([]byte(text))
}

// Decode reverses Encode. Invalid UTF-8 in the decoded bytes is replaced with U+FFFD.
func Decode(text string) (string, error) {
	data, err := DecodeBytes(text)
	if err != nil {
		return "", err
	}

	return ToText(data), nil
}

// EncodeBytes returns the padded standard Base64 encoding of data.
func EncodeBytes(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBytes decodes standard Base64.
// Line breaks are outside the alphabet and rejected wherever they occur.
func DecodeBytes(text string) ([]byte, error) {
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		return nil, fmt.Errorf("%w: line break at input byte %d", ErrMalformed, i)
	}

	encoding := base64.StdEncoding
	if len(text)%4 != 0 && !strings.HasSuffix(text, "=") {
		encoding = base64.RawStdEncoding
	}

	data, err := encoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return data, nil
}

// ToText decodes data as UTF-8, replacing every invalid byte with U+FFFD.
func ToText(data []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}

	return string(decoded)
}
