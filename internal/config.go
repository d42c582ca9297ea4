package internal

import (
	"log/slog"
	"strconv"
	"sync/atomic"
)

var (
	quietMode   atomic.Bool // Only warnings and errors are logged.
	debugMode   atomic.Bool // Debug records, including pipeline transitions, are logged.
	verboseMode atomic.Bool // Records carry caller information.
)

// Seeds the logging modes from linker flags.
//
// Unparseable values leave the mode disabled.
func init() {
	if v, err := strconv.ParseBool(rawQuiet); err == nil {
		quietMode.Store(v)
	}
	if v, err := strconv.ParseBool(rawDebug); err == nil {
		debugMode.Store(v)
	}
	if v, err := strconv.ParseBool(rawVerbose); err == nil {
		verboseMode.Store(v)
	}
}

func SetQuiet(enabled bool)   { quietMode.Store(enabled) }
func SetDebug(enabled bool)   { debugMode.Store(enabled) }
func SetVerbose(enabled bool) { verboseMode.Store(enabled) }

func IsQuiet() bool   { return quietMode.Load() }
func IsDebug() bool   { return debugMode.Load() }
func IsVerbose() bool { return verboseMode.Load() }

// Returns the log level implied by the current modes.
//
// Debug wins over quiet when both are set.
func LogLevel() slog.Level {
	switch {
	case IsDebug():
		return slog.LevelDebug
	case IsQuiet():
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
