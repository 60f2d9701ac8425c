// Package logger wraps slog with a small level/format aware API used by
// the CLI and the library packages.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// OutputFormat selects the log encoding.
type OutputFormat string

const (
	// FormatText emits human-readable key=value output.
	FormatText OutputFormat = "text"
	// FormatJSON emits one JSON object per line.
	FormatJSON OutputFormat = "json"
)

// Fields is a type alias for log fields to make the API cleaner.
type Fields map[string]interface{}

var (
	logger *slog.Logger

	// testOutput captures log output during tests.
	testOutput   io.Writer
	testOutputMu sync.Mutex

	currentLevel slog.Level
)

// SetTestOutput redirects log output to w for testing purposes.
func SetTestOutput(w io.Writer) {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	testOutput = w
}

// UnsetTestOutput restores logging to stderr.
func UnsetTestOutput() {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	testOutput = nil
}

func getOutput() io.Writer {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	if testOutput != nil {
		return testOutput
	}
	return os.Stderr
}

func parseLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger initializes the global logger with the given level and format.
func InitLogger(logLevel string, format OutputFormat) {
	currentLevel = parseLevel(logLevel)
	logger = newLogger(currentLevel, format)
}

// SetOutputFormat switches the encoding of the global logger, keeping the
// configured level.
func SetOutputFormat(format OutputFormat) {
	logger = newLogger(currentLevel, format)
}

func newLogger(level slog.Level, format OutputFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(getOutput(), opts))
	}
	return slog.New(slog.NewTextHandler(getOutput(), opts))
}

// GetLogger returns the configured logger instance.
func GetLogger() *slog.Logger {
	if logger == nil {
		InitLogger("info", FormatText)
	}
	return logger
}

// Debug logs a debug message.
func Debug(msg string, fields ...Fields) {
	GetLogger().Debug(msg, mergeFields(fields...)...)
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...interface{}) {
	GetLogger().Debug(fmt.Sprintf(format, args...))
}

// Info logs an info message.
func Info(msg string, fields ...Fields) {
	GetLogger().Info(msg, mergeFields(fields...)...)
}

// Infof logs a formatted info message.
func Infof(format string, args ...interface{}) {
	GetLogger().Info(fmt.Sprintf(format, args...))
}

// Warn logs a warning message.
func Warn(msg string, fields ...Fields) {
	GetLogger().Warn(msg, mergeFields(fields...)...)
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...interface{}) {
	GetLogger().Warn(fmt.Sprintf(format, args...))
}

// Error logs an error message.
func Error(msg string, fields ...Fields) {
	GetLogger().Error(msg, mergeFields(fields...)...)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) {
	GetLogger().Error(fmt.Sprintf(format, args...))
}

// Success logs a success message as info with a success indicator.
func Success(msg string, fields ...Fields) {
	attrs := mergeFields(fields...)
	attrs = append(attrs, "status", "success")
	GetLogger().Info(msg, attrs...)
}

// mergeFields flattens field maps into the key-value slice slog expects.
func mergeFields(fields ...Fields) []interface{} {
	result := []interface{}{}
	for _, field := range fields {
		for k, v := range field {
			result = append(result, k, v)
		}
	}
	return result
}
