// Package actionmenu implements the multi-level action menu widget for
// watch firmware that predates the native one: a hierarchical list of
// actions and sub-menus on a small monochrome display, navigated with the
// four physical buttons, with animated slides between levels.
//
// The package splits into a platform-independent core (the level/item
// hierarchy, the session state machine, and the row drawing contract) and
// pluggable hosts. The SDL host in platform/sdlhost renders on real
// hardware or a desktop window; tests drive the core against fakes.
package actionmenu

import (
	"log/slog"

	"github.com/cobblekit/actionmenu/pkg/actionmenu/internal"
)

var defaultHost Host

// SetDefaultHost installs the host used by Open. The SDL host registers
// itself here during its Init.
func SetDefaultHost(h Host) {
	defaultHost = h
}

// DefaultHost returns the host installed with SetDefaultHost, nil if none.
func DefaultHost() Host {
	return defaultHost
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories. Call before the first logging
// to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string
// (e.g. "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
