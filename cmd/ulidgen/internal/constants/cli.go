package constants

import "os"

// Application identity.
const (
	// AppName is the binary and service name used in usage text and logs.
	AppName = "ulidgen"

	// EnvPrefix is the prefix of environment variables read by config.Load.
	// Example: ULIDGEN_LOGGING_LEVEL=debug
	EnvPrefix = "ULIDGEN"

	// ConfigFileName is the default configuration file looked up in the
	// user's home directory when --config is not given.
	ConfigFileName = ".ulidgen.yaml"
)

// Process exit codes.
// Used in: cli/errors.go
const (
	// ExitOK is returned after a ULID (or help/version text) was printed.
	ExitOK = 0

	// ExitFailure is returned when the timestamp could not be resolved or encoded.
	ExitFailure = 1

	// ExitUsage is returned for unknown flags or unexpected arguments.
	ExitUsage = 2
)

// File permission constants.
const (
	// DirPermissions is used when creating the directory of a log file.
	DirPermissions os.FileMode = 0755

	// FilePermissions is used when creating a log file.
	FilePermissions os.FileMode = 0644
)
