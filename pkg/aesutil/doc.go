// Package aesutil encrypts and decrypts text with AES in ECB, CBC or CFB mode.
//
// Keys and IVs are taken verbatim as the UTF-8 bytes of caller strings. Plaintext is padded
// with PKCS#5/#7 in every mode, and ciphertext travels as standard Base64.
//
// Blank input is not an error: operations given an empty text, key or required IV return a
// skipped Result. Every other failure is returned as an error wrapping one of
// ErrUnsupportedMode, ErrMalformedCiphertext or ErrCipher.
//
// None of the modes authenticate the ciphertext, and ECB leaks repeated plaintext blocks.
package aesutil
