// Package logging writes the application log to a file under ~/.tsekh.
// The terminal is owned by the board UI, so nothing may log to stdout or
// stderr while the program runs.
package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes logging to ~/.tsekh/logs/tsekh.log. The level defaults
// to info; set TSEKH_LOG_LEVEL=debug for sync and gesture tracing.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitAt(filepath.Join(homeDir, ".tsekh", "logs"))
}

// InitAt initializes logging into the given directory, creating it if
// needed. The log file is appended to across runs.
func InitAt(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(dir, "tsekh.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: LevelFromEnv(),
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file so library
	// logging never corrupts the terminal UI
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}

// LevelFromEnv reads TSEKH_LOG_LEVEL. Unknown or empty values mean info.
func LevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("TSEKH_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
