package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	frameworkLoggerOnce sync.Once
	frameworkLogger     *slog.Logger
	frameworkLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		if logPath == "" {
			logWriter = os.Stdout
			return
		}
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			logWriter = os.Stdout
			return
		}
		var err error
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open the log file, fall back to console-only.
			logWriter = os.Stdout
			return
		}
		logWriter = io.MultiWriter(os.Stdout, logFile)
	})
}

// GetLogger returns the logger intended for the consuming application.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		setup()
		logger = slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
			Level: levelVar,
		}))
	})
	return logger
}

// GetFrameworkLogger returns the logger the widget and hosts log to.
// Separate from the application logger so its level can be raised without
// silencing the application.
func GetFrameworkLogger() *slog.Logger {
	frameworkLoggerOnce.Do(func() {
		frameworkLevelVar = &slog.LevelVar{}
		frameworkLevelVar.Set(slog.LevelError)
		setup()
		frameworkLogger = slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
			Level: frameworkLevelVar,
		}))
	})
	return frameworkLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetFrameworkLogLevel(level slog.Level) {
	GetFrameworkLogger()
	frameworkLevelVar.Set(level)
}

func SetRawLogLevel(rawLevel string) {
	var level slog.Level
	switch strings.ToLower(rawLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	SetLogLevel(level)
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
