// Package commands provides the command-line interface for the strcrypt tool.
//
// It implements commands for:
//   - encryption and decryption
//   - Base64 encoding and decoding
//   - IV generation
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
