package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors Config in file order. Coordinates are typed any so
// numeric values are written as TOML integers.
type fileConfig struct {
	Desklet struct {
		GIFPath   string `toml:"gif_path"`
		Monitor   int    `toml:"monitor"`
		Position  string `toml:"position"`
		Margin    int    `toml:"margin"`
		Autostart bool   `toml:"autostart"`
		CustomX   any    `toml:"custom_x"`
		CustomY   any    `toml:"custom_y"`
	} `toml:"desklet"`
	Instance InstanceConfig `toml:"instance"`
	Logging  LoggingConfig  `toml:"logging"`
}

// WriteConfigOrdered writes the configuration to disk with a stable layout:
// [desklet] first, the remaining sections alphabetically.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var doc fileConfig
	doc.Desklet.GIFPath = cfg.Desklet.GIFPath
	doc.Desklet.Monitor = cfg.Desklet.Monitor
	doc.Desklet.Position = cfg.Desklet.Position
	doc.Desklet.Margin = cfg.Desklet.Margin
	doc.Desklet.Autostart = cfg.Desklet.Autostart
	doc.Desklet.CustomX = coordinateValue(cfg.Desklet.CustomX)
	doc.Desklet.CustomY = coordinateValue(cfg.Desklet.CustomY)
	doc.Instance = cfg.Instance
	doc.Logging = cfg.Logging

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// Write to a sibling file first so a crash never leaves a truncated config.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
