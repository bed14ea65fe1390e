package timestamp

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/thalib/ulidgen/cmd/ulidgen/internal/constants"
)

// Resolver turns an optional input string into milliseconds since the Unix
// epoch. The clock is only read when no input is given.
type Resolver struct {
	now func() time.Time
}

// NewResolver creates a Resolver reading the given clock. A nil clock means time.Now.
func NewResolver(now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{now: now}
}

// Resolve returns the canonical timestamp for input, or the current time
// when input is nil.
func (r *Resolver) Resolve(input *string) (uint64, error) {
	if input == nil {
		ms := r.now().UnixMilli()
		if ms < 0 {
			return 0, invalid("now", ReasonClockUnreadable)
		}
		return uint64(ms), nil
	}
	ms, _, err := r.ResolveString(*input)
	return ms, err
}

// ResolveString resolves a present input and reports the grammar it matched.
// It never reads the clock.
func (r *Resolver) ResolveString(input string) (uint64, Kind, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, KindInvalid, invalid(input, ReasonEmpty)
	}

	kind := Classify(s)
	switch kind {
	case KindUnixSeconds:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, kind, invalid(input, err.Error())
		}
		return v * constants.MillisecondsPerSecond, kind, nil

	case KindUnixMilliseconds:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, kind, invalid(input, err.Error())
		}
		return v, kind, nil

	case KindDateOnly:
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return 0, kind, invalid(input, describe(err))
		}
		ms, err := toMillis(input, t)
		return ms, kind, err

	case KindRFC3339:
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return 0, kind, invalid(input, describe(err))
		}
		ms, err := toMillis(input, t)
		return ms, kind, err
	}

	if isDigits(s) {
		return 0, kind, invalid(input, ReasonTooManyDigits)
	}
	return 0, kind, invalid(input, ReasonUnknownFormat)
}

// toMillis truncates sub-millisecond precision.
func toMillis(input string, t time.Time) (uint64, error) {
	ms := t.UnixMilli()
	if ms < 0 {
		return 0, invalid(input, ReasonBeforeEpoch)
	}
	return uint64(ms), nil
}

// describe extracts the range violation from a time.Parse error,
// e.g. "month out of range".
func describe(err error) string {
	var pe *time.ParseError
	if errors.As(err, &pe) && pe.Message != "" {
		return strings.TrimPrefix(pe.Message, ": ")
	}
	return err.Error()
}
