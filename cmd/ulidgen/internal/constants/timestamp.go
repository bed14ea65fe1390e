package constants

// Numeric epoch thresholds for the timestamp resolver.
// A digit-only input is classified purely by its length, so no unit suffix
// is ever needed on the command line.
const (
	// MaxUnixSecondsDigits is the longest digit string read as Unix seconds.
	// Used in: timestamp/classify.go
	// Purpose: 10 digits covers every second-resolution epoch through 2286-11-20
	// Default: 10 digits
	MaxUnixSecondsDigits = 10

	// MaxUnixMillisecondsDigits is the longest digit string read as Unix milliseconds.
	// Used in: timestamp/classify.go
	// Purpose: 13 digits covers every millisecond-resolution epoch through 2286-11-20
	// Default: 13 digits
	MaxUnixMillisecondsDigits = 13

	// MillisecondsPerSecond converts Unix seconds into the canonical unit.
	// Used in: timestamp/resolver.go
	MillisecondsPerSecond = 1000
)

// Textual grammars accepted by the timestamp resolver.
const (
	// DateOnlyPattern matches YYYY-MM-DD. Calendar validity is checked after matching.
	// Used in: timestamp/classify.go
	DateOnlyPattern = `^\d{4}-\d{2}-\d{2}$`

	// RFC3339Pattern matches YYYY-MM-DDTHH:MM:SS[.fraction](Z|±HH:MM).
	// The zone designator is mandatory and offsets are range checked here
	// because time.Parse accepts some offsets RFC 3339 does not.
	// Used in: timestamp/classify.go
	RFC3339Pattern = `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]([01]\d|2[0-3]):[0-5]\d)$`
)
