// Package config provides the viper-backed configuration store for the desklet.
package config

import (
	"strconv"
	"strings"

	"github.com/bnema/desklet/internal/domain/entity"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration file.
type Config struct {
	Desklet  DeskletConfig  `mapstructure:"desklet" toml:"desklet" json:"desklet" jsonschema:"description=Overlay settings"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging" jsonschema:"description=Logging settings"`
	Instance InstanceConfig `mapstructure:"instance" toml:"instance" json:"instance" jsonschema:"description=Single-instance control"`
}

// DeskletConfig holds the overlay record shared with the settings editor.
type DeskletConfig struct {
	GIFPath   string `mapstructure:"gif_path" toml:"gif_path" json:"gif_path" jsonschema:"description=Path to the animated GIF"`
	Monitor   int    `mapstructure:"monitor" toml:"monitor" json:"monitor" jsonschema:"minimum=0,description=Monitor index (0 = first)"`
	Position  string `mapstructure:"position" toml:"position" json:"position" jsonschema:"enum=bottom-right,enum=bottom-left,enum=top-left,enum=top-right,enum=custom"`
	Margin    int    `mapstructure:"margin" toml:"margin" json:"margin" jsonschema:"minimum=0,description=Margin in pixels for corner placements"`
	Autostart bool   `mapstructure:"autostart" toml:"autostart" json:"autostart" jsonschema:"description=Launch the overlay at login"`
	// CustomX/CustomY are kept as text so a malformed value degrades to the
	// monitor origin at placement time instead of failing the load.
	CustomX string `mapstructure:"custom_x" toml:"custom_x" json:"custom_x" jsonschema:"description=Custom X position (custom mode)"`
	CustomY string `mapstructure:"custom_y" toml:"custom_y" json:"custom_y" jsonschema:"description=Custom Y position (custom mode)"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// EnableFileLog tees overlay logs to $XDG_STATE_HOME/desklet/logs.
	EnableFileLog bool `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
}

// InstanceConfig tunes the single-instance guard.
type InstanceConfig struct {
	// StopTimeoutMs bounds how long `desklet stop` waits for the overlay to exit.
	StopTimeoutMs int `mapstructure:"stop_timeout_ms" toml:"stop_timeout_ms" json:"stop_timeout_ms" jsonschema:"minimum=100"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	s := entity.DefaultSettings()
	return &Config{
		Desklet: DeskletConfig{
			GIFPath:   s.GIFPath,
			Monitor:   s.Monitor,
			Position:  string(s.Position),
			Margin:    s.Margin,
			Autostart: s.Autostart,
			CustomX:   s.CustomX,
			CustomY:   s.CustomY,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
		},
		Instance: InstanceConfig{
			StopTimeoutMs: 1500,
		},
	}
}

// Settings converts the file record into the domain record.
func (c *Config) Settings() *entity.Settings {
	return &entity.Settings{
		GIFPath:   c.Desklet.GIFPath,
		Monitor:   c.Desklet.Monitor,
		Position:  entity.ParsePlacementMode(c.Desklet.Position),
		Margin:    c.Desklet.Margin,
		Autostart: c.Desklet.Autostart,
		CustomX:   c.Desklet.CustomX,
		CustomY:   c.Desklet.CustomY,
	}
}

// ApplySettings copies a domain record into the file record.
func (c *Config) ApplySettings(s *entity.Settings) {
	c.Desklet = DeskletConfig{
		GIFPath:   s.GIFPath,
		Monitor:   s.Monitor,
		Position:  string(s.Position),
		Margin:    s.Margin,
		Autostart: s.Autostart,
		CustomX:   s.CustomX,
		CustomY:   s.CustomY,
	}
}

// coordinateValue returns an int when raw parses, so the file keeps numeric
// coordinates, and the raw text otherwise.
func coordinateValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n
	}
	return raw
}
