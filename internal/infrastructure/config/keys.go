package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/domain/entity"
)

// keySetter assigns a parsed value to one field of Config.
type keySetter func(cfg *Config, raw string) error

type keyDef struct {
	info entity.ConfigKeyInfo
	set  keySetter
}

// SchemaProvider lists the keys accepted by `desklet config set`.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = SchemaProvider{}

// GetSchema returns every settable key sorted by path.
func (SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defs := keyDefs()
	out := make([]entity.ConfigKeyInfo, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// SetValue parses raw according to key's type and assigns it on cfg.
// The result is not validated; Manager.Save does that.
func SetValue(cfg *Config, key, raw string) error {
	d, ok := keyDefs()[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	return d.set(cfg, strings.TrimSpace(raw))
}

func keyDefs() map[string]keyDef {
	defaults := DefaultConfig()
	positions := make([]string, 0, len(entity.PlacementModes()))
	for _, m := range entity.PlacementModes() {
		positions = append(positions, string(m))
	}

	return map[string]keyDef{
		"desklet.gif_path": {
			info: entity.ConfigKeyInfo{Key: "desklet.gif_path", Type: "string", Default: defaults.Desklet.GIFPath,
				Description: "Path to the animated GIF", Section: "Desklet"},
			set: func(cfg *Config, raw string) error { cfg.Desklet.GIFPath = raw; return nil },
		},
		"desklet.monitor": {
			info: entity.ConfigKeyInfo{Key: "desklet.monitor", Type: "int", Default: strconv.Itoa(defaults.Desklet.Monitor),
				Description: "Monitor index, 0 is the first", Range: "0-", Section: "Desklet"},
			set: intSetter(func(cfg *Config, n int) { cfg.Desklet.Monitor = n }),
		},
		"desklet.position": {
			info: entity.ConfigKeyInfo{Key: "desklet.position", Type: "string", Default: defaults.Desklet.Position,
				Description: "Placement mode", Values: positions, Section: "Desklet"},
			set: func(cfg *Config, raw string) error {
				mode := entity.ParsePlacementMode(raw)
				if !mode.Known() {
					return fmt.Errorf("position must be one of %s", strings.Join(positions, ", "))
				}
				cfg.Desklet.Position = string(mode)
				return nil
			},
		},
		"desklet.margin": {
			info: entity.ConfigKeyInfo{Key: "desklet.margin", Type: "int", Default: strconv.Itoa(defaults.Desklet.Margin),
				Description: "Margin in pixels for corner placements", Range: fmt.Sprintf("0-%d", maxMargin), Section: "Desklet"},
			set: intSetter(func(cfg *Config, n int) { cfg.Desklet.Margin = n }),
		},
		"desklet.autostart": {
			info: entity.ConfigKeyInfo{Key: "desklet.autostart", Type: "bool", Default: strconv.FormatBool(defaults.Desklet.Autostart),
				Description: "Launch the overlay at login", Section: "Desklet"},
			set: boolSetter(func(cfg *Config, b bool) { cfg.Desklet.Autostart = b }),
		},
		"desklet.custom_x": {
			info: entity.ConfigKeyInfo{Key: "desklet.custom_x", Type: "string", Default: defaults.Desklet.CustomX,
				Description: "Custom X position, used in custom mode", Section: "Desklet"},
			set: func(cfg *Config, raw string) error { cfg.Desklet.CustomX = raw; return nil },
		},
		"desklet.custom_y": {
			info: entity.ConfigKeyInfo{Key: "desklet.custom_y", Type: "string", Default: defaults.Desklet.CustomY,
				Description: "Custom Y position, used in custom mode", Section: "Desklet"},
			set: func(cfg *Config, raw string) error { cfg.Desklet.CustomY = raw; return nil },
		},
		"logging.level": {
			info: entity.ConfigKeyInfo{Key: "logging.level", Type: "string", Default: defaults.Logging.Level,
				Description: "Log verbosity level", Values: []string{"trace", "debug", "info", "warn", "error"}, Section: "Logging"},
			set: func(cfg *Config, raw string) error { cfg.Logging.Level = raw; return nil },
		},
		"logging.format": {
			info: entity.ConfigKeyInfo{Key: "logging.format", Type: "string", Default: defaults.Logging.Format,
				Description: "Console or JSON log lines", Values: []string{"console", "json"}, Section: "Logging"},
			set: func(cfg *Config, raw string) error { cfg.Logging.Format = raw; return nil },
		},
		"logging.enable_file_log": {
			info: entity.ConfigKeyInfo{Key: "logging.enable_file_log", Type: "bool", Default: strconv.FormatBool(defaults.Logging.EnableFileLog),
				Description: "Write overlay logs to the state directory", Section: "Logging"},
			set: boolSetter(func(cfg *Config, b bool) { cfg.Logging.EnableFileLog = b }),
		},
		"instance.stop_timeout_ms": {
			info: entity.ConfigKeyInfo{Key: "instance.stop_timeout_ms", Type: "int", Default: strconv.Itoa(defaults.Instance.StopTimeoutMs),
				Description: "How long `desklet stop` waits for the overlay to exit", Range: "100-", Section: "Instance"},
			set: intSetter(func(cfg *Config, n int) { cfg.Instance.StopTimeoutMs = n }),
		},
	}
}

func intSetter(assign func(*Config, int)) keySetter {
	return func(cfg *Config, raw string) error {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%q is not an integer", raw)
		}
		assign(cfg, n)
		return nil
	}
}

func boolSetter(assign func(*Config, bool)) keySetter {
	return func(cfg *Config, raw string) error {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%q is not a boolean", raw)
		}
		assign(cfg, b)
		return nil
	}
}
