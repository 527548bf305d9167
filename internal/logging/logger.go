// Package logging builds the zerolog loggers used across the desklet.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// ConsoleTimeFormat keeps foreground output short.
	ConsoleTimeFormat = "15:04:05"

	logFileMaxSizeMB  = 5
	logFileMaxBackups = 3
	logFileMaxAgeDays = 14
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the optional rotating log file.
type FileConfig struct {
	Enabled bool
	LogDir  string
	// WriteToStderr keeps console output when the file sink is on.
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a textual level to zerolog, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newWithWriter(cfg, formatWriter(cfg, os.Stderr))
}

// NewWithFile creates a logger that also appends to a rotating file in
// fileCfg.LogDir. The returned cleanup closes the file. When the file cannot
// be opened the logger falls back to stderr and the error is returned
// alongside a usable logger.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled || fileCfg.LogDir == "" {
		return New(cfg), func() {}, nil
	}

	if err := os.MkdirAll(fileCfg.LogDir, 0o755); err != nil {
		return New(cfg), func() {}, err
	}
	rotator, err := NewLogRotator(fileCfg.LogDir, logFileMaxSizeMB, logFileMaxBackups, logFileMaxAgeDays, true)
	if err != nil {
		return New(cfg), func() {}, err
	}

	// The file always gets JSON lines so it stays greppable.
	var out io.Writer = rotator
	if fileCfg.WriteToStderr {
		out = zerolog.MultiLevelWriter(rotator, formatWriter(cfg, os.Stderr))
	}

	cleanup := func() {
		_ = rotator.Close()
	}
	return newWithWriter(cfg, out), cleanup, nil
}

// NewFromEnv creates a logger based on environment variables
// DESKLET_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DESKLET_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("DESKLET_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("DESKLET_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

func formatWriter(cfg Config, w io.Writer) io.Writer {
	if cfg.Format == "json" {
		return w
	}
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = ConsoleTimeFormat
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: timeFormat}
}

func newWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}
