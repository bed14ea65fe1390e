package timestamp

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{"one digit", "7", KindUnixSeconds},
		{"nine digits", "176729696", KindUnixSeconds},
		{"ten digits", "1767296965", KindUnixSeconds},
		{"eleven digits", "17672969655", KindUnixMilliseconds},
		{"twelve digits", "176729696559", KindUnixMilliseconds},
		{"thirteen digits", "1767296965592", KindUnixMilliseconds},
		{"fourteen digits", "17672969655922", KindInvalid},
		{"date only", "2026-01-01", KindDateOnly},
		{"date only out of range is still date shaped", "2026-13-01", KindDateOnly},
		{"rfc3339 utc", "2026-01-01T12:00:00Z", KindRFC3339},
		{"rfc3339 utc fraction", "2026-01-01T12:00:00.123Z", KindRFC3339},
		{"rfc3339 positive offset", "2026-01-01T12:00:00+08:00", KindRFC3339},
		{"rfc3339 negative offset fraction", "2026-01-01T12:00:00.123-03:00", KindRFC3339},
		{"surrounding whitespace", "  2026-01-01\n", KindDateOnly},
		{"empty", "", KindInvalid},
		{"blank", "   ", KindInvalid},
		{"four parts", "2026-01-01-01", KindInvalid},
		{"year and month", "2026-01", KindInvalid},
		{"unpadded date", "2026-1-1", KindInvalid},
		{"missing seconds", "2026-01-01T12:00+08:00", KindInvalid},
		{"hour only", "2026-01-01T12+08:00", KindInvalid},
		{"fraction without seconds", "2026-01-01T12:00.123+08:00", KindInvalid},
		{"offset without time", "2026-01-01T-03:00", KindInvalid},
		{"bare T", "2026-01-01T", KindInvalid},
		{"wrong separator", "2026-01-01X12:00:00-03:00", KindInvalid},
		{"missing zone", "2026-01-01T12:00:00", KindInvalid},
		{"offset without colon", "2026-01-01T12:00:00+0800", KindInvalid},
		{"offset hour out of range", "2026-01-01T12:00:00+24:00", KindInvalid},
		{"empty fraction", "2026-01-01T12:00:00.Z", KindInvalid},
		{"signed number", "-1767296965", KindInvalid},
		{"words", "not-a-date", KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify_LongDigitStrings(t *testing.T) {
	for n := 14; n <= 40; n++ {
		s := strings.Repeat("1", n)
		if got := Classify(s); got != KindInvalid {
			t.Errorf("Classify(%d digits) = %v, want invalid", n, got)
		}
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindInvalid:          "invalid",
		KindUnixSeconds:      "unix_seconds",
		KindUnixMilliseconds: "unix_milliseconds",
		KindDateOnly:         "date_only",
		KindRFC3339:          "rfc3339",
		Kind(99):             "invalid",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
