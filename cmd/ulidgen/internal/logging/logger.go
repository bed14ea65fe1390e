// Package logging provides structured diagnostic logging with zerolog.
// It supports simple text, console and JSON formats, log levels, file output
// and per-invocation ID tracking. Logs never go to stdout, which carries
// only the generated ULID.
package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/thalib/ulidgen/cmd/ulidgen/internal/constants"
)

// simpleWriter is a custom writer that formats logs as: [LEVEL](TIMESTAMP): {MESSAGE}
type simpleWriter struct {
	out io.Writer
}

func (sw *simpleWriter) Write(p []byte) (n int, err error) {
	var logEntry map[string]any
	if err := json.Unmarshal(p, &logEntry); err != nil {
		// If not JSON, just write as-is
		return sw.out.Write(p)
	}

	level, _ := logEntry["level"].(string)
	timestamp, _ := logEntry["time"].(string)
	message, _ := logEntry["message"].(string)

	formatted := fmt.Sprintf("[%s](%s): %s\n",
		strings.ToUpper(level),
		timestamp,
		message,
	)

	if _, err := sw.out.Write([]byte(formatted)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Level represents logging levels
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ParseLevel maps a configuration string to a Level, defaulting to LevelWarn.
func ParseLevel(s string) Level {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelDebug:
		return LevelDebug
	case LevelInfo:
		return LevelInfo
	case LevelError:
		return LevelError
	default:
		return LevelWarn
	}
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level Level

	// Format is the output format (json, console or simple)
	Format string

	// Output is the writer for logs (default: os.Stderr)
	Output io.Writer

	// FilePath is the path to the log file (if specified, Output is ignored)
	FilePath string

	// ServiceName is the name of the service
	ServiceName string

	// Version is the version of the service
	Version string
}

// Logger wraps zerolog for structured logging
type Logger struct {
	logger zerolog.Logger
	config LoggerConfig
	file   *os.File
}

// NewLogger creates a new structured logger
func NewLogger(config LoggerConfig) *Logger {
	var output io.Writer
	var file *os.File

	if config.FilePath != "" {
		file = openLogFile(config.FilePath)
		output = file
		if file == nil {
			output = os.Stderr
		}
	} else if config.Output != nil {
		output = config.Output
	} else {
		output = os.Stderr
	}

	if config.Level == "" {
		config.Level = LevelWarn
	}

	var zeroLevel zerolog.Level
	switch config.Level {
	case LevelDebug:
		zeroLevel = zerolog.DebugLevel
	case LevelInfo:
		zeroLevel = zerolog.InfoLevel
	case LevelWarn:
		zeroLevel = zerolog.WarnLevel
	case LevelError:
		zeroLevel = zerolog.ErrorLevel
	default:
		zeroLevel = zerolog.WarnLevel
	}

	var logger zerolog.Logger

	switch config.Format {
	case "json":
		logger = zerolog.New(output).Level(zeroLevel).With().Timestamp().Logger()
	case "console":
		consoleOut := zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
		logger = zerolog.New(consoleOut).Level(zeroLevel).With().Timestamp().Logger()
	default:
		// [LEVEL](TIMESTAMP): {MESSAGE}
		simpleOut := &simpleWriter{out: output}
		logger = zerolog.New(simpleOut).Level(zeroLevel).With().Timestamp().Logger()
	}

	if config.ServiceName != "" {
		logger = logger.With().Str("service", config.ServiceName).Logger()
	}
	if config.Version != "" {
		logger = logger.With().Str("version", config.Version).Logger()
	}

	return &Logger{
		logger: logger,
		config: config,
		file:   file,
	}
}

// openLogFile returns nil when the file cannot be opened; the caller then
// logs to stderr.
func openLogFile(path string) *os.File {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory %s: %v\n", dir, err)
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.FilePermissions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", path, err)
		return nil
	}
	return file
}

// Close closes the log file, if any. Derived loggers share the file, so it
// must be closed only once.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// WithContext returns a logger with context fields
func (l *Logger) WithContext(ctx context.Context) *Logger {
	newLogger := *l

	if id := GetInvocationID(ctx); id != "" {
		newLogger.logger = l.logger.With().Str(InvocationIDField, id).Logger()
	}

	return &newLogger
}

// WithField returns a logger with an additional field
func (l *Logger) WithField(key string, value any) *Logger {
	newLogger := *l
	newLogger.logger = l.logger.With().Interface(key, value).Logger()
	return &newLogger
}

// WithFields returns a logger with additional fields
func (l *Logger) WithFields(fields map[string]any) *Logger {
	newLogger := *l
	ctx := l.logger.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	newLogger.logger = ctx.Logger()
	return &newLogger
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

// ErrorWithErr logs an error with the error object
func (l *Logger) ErrorWithErr(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}

// DebugWithErr logs an expected failure, such as rejected user input
func (l *Logger) DebugWithErr(msg string, err error) {
	l.logger.Debug().Err(err).Msg(msg)
}

// InvocationIDField is the log field carrying the invocation ID
const InvocationIDField = "invocation_id"

type contextKey string

const invocationIDKey contextKey = InvocationIDField

// NewInvocationID returns a random ID correlating all log lines of one run
func NewInvocationID() string {
	return uuid.New().String()
}

// SetInvocationID sets the invocation ID in the context
func SetInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDKey, id)
}

// GetInvocationID gets the invocation ID from the context
func GetInvocationID(ctx context.Context) string {
	if id, ok := ctx.Value(invocationIDKey).(string); ok {
		return id
	}
	return ""
}

// Global logger instance
var globalLogger *Logger

// Init initializes the global logger
func Init(config LoggerConfig) {
	globalLogger = NewLogger(config)
}

// GetLogger returns the global logger
func GetLogger() *Logger {
	if globalLogger == nil {
		globalLogger = NewLogger(LoggerConfig{
			Level:  LevelWarn,
			Format: "console",
		})
	}
	return globalLogger
}
