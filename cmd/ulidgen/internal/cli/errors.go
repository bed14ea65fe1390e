package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/thalib/ulidgen/cmd/ulidgen/internal/constants"
)

// UsageError reports unknown flags or unexpected arguments.
type UsageError struct {
	Err error
}

// Error implements the error interface
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error
func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an Execute result to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return constants.ExitOK
	}
	var ue *UsageError
	if errors.As(err, &ue) {
		return constants.ExitUsage
	}
	return constants.ExitFailure
}

// ReportError writes a human-readable error to w.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)

	var ue *UsageError
	if errors.As(err, &ue) {
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", constants.AppName)
	}
}
