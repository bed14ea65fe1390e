// Package ulid provides ULID generation and validation functionality.
// ULIDs (Universally Unique Lexicographically Sortable Identifiers) are
// 26-character, URL-safe, base32-encoded strings that are sortable by creation time.
// The first 10 characters carry a 48-bit millisecond timestamp, the last 16
// carry 80 bits of randomness.
package ulid

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	// EncodedSize is the length of a ULID string
	EncodedSize = ulid.EncodedSize

	// TimestampSize is the number of leading characters encoding the timestamp
	TimestampSize = 10

	// Alphabet is the Crockford base32 symbol set used for encoding
	Alphabet = ulid.Encoding
)

var (
	// ErrInvalidULID indicates that a ULID string is malformed or invalid
	ErrInvalidULID = errors.New("invalid ULID format")

	// ErrTimestampOverflow indicates a timestamp beyond the 48-bit ULID range
	ErrTimestampOverflow = errors.New("timestamp exceeds ULID range")
)

// MaxTimestamp is the largest millisecond value a ULID can carry (10889-08-02T05:31:50.655Z)
func MaxTimestamp() uint64 {
	return ulid.MaxTime()
}

// Encoder packs a millisecond timestamp and random bits into a ULID.
type Encoder struct {
	entropy io.Reader
}

// NewEncoder creates an Encoder reading randomness from entropy.
// A nil entropy means crypto/rand.
func NewEncoder(entropy io.Reader) *Encoder {
	if entropy == nil {
		entropy = rand.Reader
	}
	return &Encoder{entropy: entropy}
}

// Encode builds a ULID for ms. Timestamps above MaxTimestamp are rejected,
// never truncated.
func (e *Encoder) Encode(ms uint64) (ulid.ULID, error) {
	if ms > MaxTimestamp() {
		return ulid.ULID{}, fmt.Errorf("%w: %d > %d", ErrTimestampOverflow, ms, MaxTimestamp())
	}

	id, err := ulid.New(ms, e.entropy)
	if err != nil {
		if errors.Is(err, ulid.ErrBigTime) {
			return ulid.ULID{}, fmt.Errorf("%w: %d", ErrTimestampOverflow, ms)
		}
		return ulid.ULID{}, fmt.Errorf("failed to read entropy: %w", err)
	}
	return id, nil
}

// EncodeString is Encode rendered as a 26-character string
func (e *Encoder) EncodeString(ms uint64) (string, error) {
	id, err := e.Encode(ms)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Validate checks if a string is a valid ULID format (26 characters, base32 encoded)
func Validate(str string) error {
	if len(str) != EncodedSize {
		return fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidULID, EncodedSize, len(str))
	}

	if _, err := ulid.ParseStrict(str); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidULID, err)
	}

	return nil
}

// Parse parses a ULID string and returns the underlying ULID value.
// Lowercase input is accepted.
func Parse(str string) (ulid.ULID, error) {
	if err := Validate(str); err != nil {
		return ulid.ULID{}, err
	}
	return ulid.ParseStrict(str)
}

// Time converts the timestamp field of id to a UTC time
func Time(id ulid.ULID) time.Time {
	return ulid.Time(id.Time()).UTC()
}
