package cli

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/pspkit/cargo-psp/internal"
)

// Shared stderr logger. It backs the default slog logger and is reconfigured
// after flag parsing.
var logger = newLogger()

// Returns the stderr logger, seeded from build-time linker flags.
func Logger() *log.Logger {
	return logger
}

func newLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: internal.Name,
		Level:  log.Level(internal.LogLevel()),
	})
	l.SetStyles(styles())
	return l
}

// Level labels in the colors cargo uses for its own diagnostics.
func styles() *log.Styles {
	s := log.DefaultStyles()
	label := func(text, color string) lipgloss.Style {
		return lipgloss.NewStyle().SetString(text).Bold(true).Foreground(lipgloss.Color(color))
	}
	s.Levels[log.DebugLevel] = label("debug", "4")
	s.Levels[log.InfoLevel] = label("info", "2")
	s.Levels[log.WarnLevel] = label("warning", "3")
	s.Levels[log.ErrorLevel] = label("error", "1")
	return s
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	internal.SetDebug(RootCmd.Debug || internal.IsDebug())
	internal.SetQuiet(RootCmd.Quiet || internal.IsQuiet())
	internal.SetVerbose(RootCmd.Verbose || internal.IsVerbose())

	logger.SetLevel(log.Level(internal.LogLevel()))
	logger.SetReportCaller(internal.IsVerbose())
	logger.SetReportTimestamp(internal.IsVerbose())

	slog.SetDefault(slog.New(logger))
}
