package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/desklet/internal/domain/entity"
)

// Manager handles configuration loading and saving.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
}

// NewManager creates a manager bound to the XDG config file.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config file: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configFile)
}

// NewManagerAt creates a manager bound to an explicit TOML file.
func NewManagerAt(configFile string) (*Manager, error) {
	if configFile == "" {
		return nil, errors.New("config file path is empty")
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// DESKLET_DESKLET_GIF_PATH, DESKLET_LOGGING_LEVEL, ...
	v.SetEnvPrefix("DESKLET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DESKLET_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DESKLET_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DESKLET_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DESKLET_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v, configFile: configFile}, nil
}

// Load reads the configuration file, creating it with defaults on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	setDefaults(m.viper)

	if err := m.readConfigFile(); err != nil {
		return err
	}

	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile, err,
		)
	}
	normalizeConfig(cfg)

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = cfg
	return nil
}

func (m *Manager) readConfigFile() error {
	if _, err := os.Stat(m.configFile); errors.Is(err, os.ErrNotExist) {
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFile, createErr,
			)
		}
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}
	return nil
}

func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	return WriteConfigOrdered(DefaultConfig(), m.configFile)
}

func normalizeConfig(cfg *Config) {
	cfg.Desklet.GIFPath = strings.TrimSpace(cfg.Desklet.GIFPath)
	cfg.Desklet.Position = string(entity.ParsePlacementMode(cfg.Desklet.Position))
	if cfg.Desklet.Position == "" {
		cfg.Desklet.Position = string(entity.PlacementBottomRight)
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if cfg.Instance.StopTimeoutMs <= 0 {
		cfg.Instance.StopTimeoutMs = DefaultConfig().Instance.StopTimeoutMs
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to disk.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return m.writeLocked(cfg)
}

// SavePosition persists the custom coordinates. The file is re-read first so
// edits made by another process since Load are kept; only custom_x and
// custom_y change.
func (m *Manager) SavePosition(x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg, err := m.readDiskLocked()
	if err != nil {
		cfg = DefaultConfig()
		if m.config != nil {
			configCopy := *m.config
			cfg = &configCopy
		}
	}
	cfg.Desklet.CustomX = strconv.Itoa(x)
	cfg.Desklet.CustomY = strconv.Itoa(y)
	return m.writeLocked(cfg)
}

// readDiskLocked loads the file as currently on disk. It uses a fresh viper
// without env bindings: m.viper carries Set overrides from earlier writes that
// would shadow the file, and env values must not be persisted.
func (m *Manager) readDiskLocked() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(m.configFile)
	v.SetConfigType("toml")
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	normalizeConfig(cfg)
	return cfg, nil
}

func (m *Manager) writeLocked(cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return err
	}

	m.viper.Set("desklet.gif_path", cfg.Desklet.GIFPath)
	m.viper.Set("desklet.monitor", cfg.Desklet.Monitor)
	m.viper.Set("desklet.position", cfg.Desklet.Position)
	m.viper.Set("desklet.margin", cfg.Desklet.Margin)
	m.viper.Set("desklet.autostart", cfg.Desklet.Autostart)
	m.viper.Set("desklet.custom_x", coordinateValue(cfg.Desklet.CustomX))
	m.viper.Set("desklet.custom_y", coordinateValue(cfg.Desklet.CustomY))

	m.config = cfg
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// setDefaults registers DefaultConfig values on v.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("desklet.gif_path", defaults.Desklet.GIFPath)
	v.SetDefault("desklet.monitor", defaults.Desklet.Monitor)
	v.SetDefault("desklet.position", defaults.Desklet.Position)
	v.SetDefault("desklet.margin", defaults.Desklet.Margin)
	v.SetDefault("desklet.autostart", defaults.Desklet.Autostart)
	v.SetDefault("desklet.custom_x", defaults.Desklet.CustomX)
	v.SetDefault("desklet.custom_y", defaults.Desklet.CustomY)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)

	v.SetDefault("instance.stop_timeout_ms", defaults.Instance.StopTimeoutMs)
}
