// Package cli provides the `ulidgen` command line.
//
// Usage
//
//	ulidgen                                   # ULID for the current time
//	ulidgen -t 1767270896                     # Unix seconds
//	ulidgen --time 1767270896000              # Unix milliseconds
//	ulidgen -t 2026-01-01T12:34:56.789-03:00  # RFC 3339
//	ulidgen -t 2026-01-01                     # midnight UTC
//	ulidgen inspect 01KDWRVN4N000G40R40M30E209
//
// Only the ULID is written to stdout. Diagnostics go to stderr, so a failed
// run never leaves a partial value on stdout.
//
// # Configuration
//
// The optional YAML file (--config, default ~/.ulidgen.yaml) and ULIDGEN_*
// environment variables control logging and output case:
//
//	logging:
//	  level: debug     # ULIDGEN_LOGGING_LEVEL
//	  format: json     # ULIDGEN_LOGGING_FORMAT
//	output:
//	  lowercase: true  # ULIDGEN_OUTPUT_LOWERCASE
package cli
