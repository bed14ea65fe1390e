// Package timestamp resolves a free-form time argument into a canonical
// millisecond Unix epoch value.
//
// Three grammars are accepted, tried in this order:
//
//   - digits only: 1 to 10 digits are Unix seconds, 11 to 13 digits are Unix
//     milliseconds, anything longer is rejected
//   - date only: YYYY-MM-DD, interpreted as midnight UTC
//   - RFC 3339: YYYY-MM-DDTHH:MM:SS[.fraction](Z|±HH:MM) with a mandatory zone
//
// Fractional seconds are truncated to milliseconds. Instants before the Unix
// epoch are rejected. Every failure unwraps to ErrInvalidTimestamp.
package timestamp
