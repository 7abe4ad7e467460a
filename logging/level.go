package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is the severity of a log entry. Levels are ordered
// trace < debug < info < warn < error < fatal.
type Level = zapcore.Level

const (
	// TraceLevel is the most verbose level, below zap's debug.
	TraceLevel Level = zapcore.DebugLevel - 1

	// DebugLevel is for diagnostic output useful during development.
	DebugLevel Level = zapcore.DebugLevel

	// InfoLevel is the default level for normal operation.
	InfoLevel Level = zapcore.InfoLevel

	// WarnLevel is for recoverable problems worth attention.
	WarnLevel Level = zapcore.WarnLevel

	// ErrorLevel is for failures of an operation.
	ErrorLevel Level = zapcore.ErrorLevel

	// FatalLevel is for unrecoverable failures. The logger itself never
	// terminates the process; the embedding application decides that.
	FatalLevel Level = zapcore.FatalLevel
)

// ParseLevel converts a level name to a Level. Only the six platform
// level names are accepted; anything else is a configuration error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("invalid log level %q", s)
	}
}

// LevelName returns the lowercase name of a level. zapcore has no name for
// the custom trace level, so it is handled here.
func LevelName(l Level) string {
	if l == TraceLevel {
		return "trace"
	}
	return l.String()
}
