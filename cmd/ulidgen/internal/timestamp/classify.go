package timestamp

import (
	"regexp"
	"strings"

	"github.com/thalib/ulidgen/cmd/ulidgen/internal/constants"
)

// Kind is the grammar an input was classified into.
type Kind int

const (
	KindInvalid Kind = iota
	KindUnixSeconds
	KindUnixMilliseconds
	KindDateOnly
	KindRFC3339
)

// String returns the name used in logs and errors.
func (k Kind) String() string {
	switch k {
	case KindUnixSeconds:
		return "unix_seconds"
	case KindUnixMilliseconds:
		return "unix_milliseconds"
	case KindDateOnly:
		return "date_only"
	case KindRFC3339:
		return "rfc3339"
	default:
		return "invalid"
	}
}

var (
	dateOnlyRegex = regexp.MustCompile(constants.DateOnlyPattern)
	rfc3339Regex  = regexp.MustCompile(constants.RFC3339Pattern)
)

// Classify determines the grammar of s from its shape alone. Values are not
// range checked here. Leading and trailing whitespace is ignored.
func Classify(s string) Kind {
	s = strings.TrimSpace(s)
	if s == "" {
		return KindInvalid
	}

	// Digit strings never reach the date grammars.
	if isDigits(s) {
		switch n := len(s); {
		case n <= constants.MaxUnixSecondsDigits:
			return KindUnixSeconds
		case n <= constants.MaxUnixMillisecondsDigits:
			return KindUnixMilliseconds
		default:
			return KindInvalid
		}
	}

	if dateOnlyRegex.MatchString(s) {
		return KindDateOnly
	}
	if rfc3339Regex.MatchString(s) {
		return KindRFC3339
	}
	return KindInvalid
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
