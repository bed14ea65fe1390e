package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/thalib/ulidgen/cmd/ulidgen/internal/constants"
	"github.com/thalib/ulidgen/cmd/ulidgen/internal/ulid"
)

func TestInspect(t *testing.T) {
	t.Run("Valid ULID", func(t *testing.T) {
		res := run(t, "inspect", "01KDWRVN4N000G40R40M30E209")
		if res.err != nil {
			t.Fatalf("unexpected error: %v", res.err)
		}

		for _, want := range []string{
			"ulid:      01KDWRVN4N000G40R40M30E209",
			"timestamp: 1767270896789",
			"time:      2026-01-01T12:34:56.789Z",
			"entropy:   00010203040506070809",
		} {
			if !strings.Contains(res.stdout, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, res.stdout)
			}
		}
	})

	t.Run("Lowercase ULID", func(t *testing.T) {
		res := run(t, "inspect", "01kdwrvn4n000g40r40m30e209")
		if res.err != nil {
			t.Fatalf("unexpected error: %v", res.err)
		}
		if !strings.Contains(res.stdout, "timestamp: 1767270896789") {
			t.Errorf("unexpected output:\n%s", res.stdout)
		}
	})

	t.Run("Round trip with generate", func(t *testing.T) {
		gen := run(t, "-t", "2026-01-01T12:34:56.789Z")
		if gen.err != nil {
			t.Fatalf("unexpected error: %v", gen.err)
		}
		res := run(t, "inspect", strings.TrimSpace(gen.stdout))
		if !strings.Contains(res.stdout, "time:      2026-01-01T12:34:56.789Z") {
			t.Errorf("unexpected output:\n%s", res.stdout)
		}
	})

	t.Run("Invalid ULID", func(t *testing.T) {
		res := run(t, "inspect", "not-a-ulid")
		if !errors.Is(res.err, ulid.ErrInvalidULID) {
			t.Fatalf("expected ErrInvalidULID, got %v", res.err)
		}
		if res.stdout != "" {
			t.Errorf("expected no output on stdout, got %q", res.stdout)
		}
		if ExitCode(res.err) != constants.ExitFailure {
			t.Errorf("expected exit code %d, got %d", constants.ExitFailure, ExitCode(res.err))
		}
	})

	t.Run("Missing argument", func(t *testing.T) {
		res := run(t, "inspect")
		if ExitCode(res.err) != constants.ExitUsage {
			t.Errorf("expected usage error, got %v", res.err)
		}
	})
}
