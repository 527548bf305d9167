// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bnema/desklet/internal/application/usecase"
	"github.com/bnema/desklet/internal/cli/styles"
	"github.com/bnema/desklet/internal/domain/build"
	"github.com/bnema/desklet/internal/infrastructure/config"
	"github.com/bnema/desklet/internal/infrastructure/desktop"
	"github.com/bnema/desklet/internal/infrastructure/instance"
	"github.com/bnema/desklet/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Store     *config.SettingsStore
	Theme     *styles.Theme
	BuildInfo build.Info

	LockPath string
	Lock     *instance.Lock

	// Use cases
	ControlUC   *usecase.ControlInstanceUseCase
	AutostartUC *usecase.ManageAutostartUseCase
	SchemaUC    *usecase.GetConfigSchemaUseCase

	// ConfigErr is the load error when the file was unusable and defaults
	// are in effect. Commands that edit the file refuse to run with it set.
	ConfigErr error

	// Context with logger
	ctx         context.Context
	logCleanup  func()
	fileLogOnly bool
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}

	cfg, cfgErr := loadConfig(mgr)

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("DESKLET_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	// Controller commands stay quiet unless asked; results go through the theme.
	if logLevel == "" || logLevel == "info" {
		logLevel = "warn"
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(logLevel),
		Format:     cfg.Logging.Format,
		TimeFormat: logging.ConsoleTimeFormat,
	})
	ctx := logging.WithContext(context.Background(), logger)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	lockPath, err := config.GetLockFile()
	if err != nil {
		return nil, fmt.Errorf("resolve lock file: %w", err)
	}
	lock := instance.NewLock(lockPath)
	store := config.NewSettingsStore(mgr)
	stopTimeout := time.Duration(cfg.Instance.StopTimeoutMs) * time.Millisecond

	return &App{
		Config:      cfg,
		Manager:     mgr,
		Store:       store,
		Theme:       styles.NewTheme(),
		LockPath:    lockPath,
		Lock:        lock,
		ControlUC:   usecase.NewControlInstanceUseCase(lock, stopTimeout),
		AutostartUC: usecase.NewManageAutostartUseCase(desktop.NewAutostart(), store),
		SchemaUC:    usecase.NewGetConfigSchemaUseCase(config.SchemaProvider{}),
		ConfigErr:   cfgErr,
		ctx:         ctx,
		logCleanup:  func() {},
	}, nil
}

// EnableFileLog re-creates the logger so it also appends to the rotating
// file in the state directory. Used by the overlay, which outlives the
// terminal when started from autostart.
func (a *App) EnableFileLog(level string, toStderr bool) error {
	logDir, err := config.GetLogDir()
	if err != nil {
		return fmt.Errorf("resolve log dir: %w", err)
	}
	if level == "" {
		level = a.Config.Logging.Level
	}
	if envLevel := os.Getenv("DESKLET_LOG_LEVEL"); envLevel != "" {
		level = envLevel
	}

	logger, cleanup, fileErr := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(level), Format: a.Config.Logging.Format, TimeFormat: logging.ConsoleTimeFormat},
		logging.FileConfig{Enabled: a.Config.Logging.EnableFileLog, LogDir: logDir, WriteToStderr: toStderr},
	)
	a.logCleanup()
	a.logCleanup = cleanup
	a.ctx = logging.WithContext(context.Background(), logger)
	a.fileLogOnly = a.Config.Logging.EnableFileLog && fileErr == nil && !toStderr
	if fileErr != nil {
		logger.Warn().Err(fileErr).Str("dir", logDir).Msg("file logging unavailable")
	}
	return nil
}

// LogsOnlyToFile reports whether the logger set up by EnableFileLog writes
// to the rotating file and nowhere else.
func (a *App) LogsOnlyToFile() bool {
	return a.fileLogOnly
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from the XDG location, falling back to
// defaults when the file cannot be read.
func loadConfig(mgr *config.Manager) (*config.Config, error) {
	if err := mgr.Load(); err != nil {
		return config.DefaultConfig(), err
	}
	return mgr.Get(), nil
}
