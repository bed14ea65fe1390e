package timestamp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTimestamp indicates that the input matches no accepted grammar
	// or violates a range constraint of the grammar it matched
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Reasons reported in ParseError.
const (
	ReasonEmpty           = "empty input"
	ReasonTooManyDigits   = "numeric timestamps are limited to 13 digits"
	ReasonUnknownFormat   = "expected Unix seconds, Unix milliseconds, YYYY-MM-DD or RFC 3339"
	ReasonBeforeEpoch     = "instant precedes the Unix epoch"
	ReasonClockUnreadable = "system clock is before the Unix epoch"
)

// ParseError describes why an input could not be resolved.
type ParseError struct {
	Input  string
	Reason string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrInvalidTimestamp, e.Input, e.Reason)
}

// Unwrap returns ErrInvalidTimestamp so callers can use errors.Is
func (e *ParseError) Unwrap() error {
	return ErrInvalidTimestamp
}

func invalid(input, reason string) error {
	return &ParseError{Input: input, Reason: reason}
}
