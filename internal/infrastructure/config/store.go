package config

import (
	"context"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/domain/entity"
	"github.com/bnema/desklet/internal/logging"
)

// SettingsStore adapts Manager to port.SettingsStore.
type SettingsStore struct {
	manager *Manager
}

var _ port.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore wraps a loaded manager.
func NewSettingsStore(manager *Manager) *SettingsStore {
	return &SettingsStore{manager: manager}
}

// Load re-reads the file so edits made by another process are seen.
func (s *SettingsStore) Load(ctx context.Context) (*entity.Settings, error) {
	if err := s.manager.Load(); err != nil {
		return nil, err
	}
	settings := s.manager.Get().Settings()
	logging.FromContext(ctx).Debug().
		Str("gif_path", settings.GIFPath).
		Int("monitor", settings.Monitor).
		Str("position", string(settings.Position)).
		Int("margin", settings.Margin).
		Msg("loaded settings")
	return settings, nil
}

func (s *SettingsStore) Save(ctx context.Context, settings *entity.Settings) error {
	cfg := s.manager.Get()
	cfg.ApplySettings(settings)
	if err := s.manager.Save(cfg); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Str("file", s.manager.GetConfigFile()).Msg("saved settings")
	return nil
}

func (s *SettingsStore) SavePosition(ctx context.Context, origin entity.Point) error {
	if err := s.manager.SavePosition(origin.X, origin.Y); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Int("x", origin.X).Int("y", origin.Y).Msg("saved custom position")
	return nil
}
