package usecase

import (
	"context"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/logging"
)

// ManageAutostartUseCase toggles the login autostart entry and keeps the
// autostart setting in sync with it.
type ManageAutostartUseCase struct {
	registrar port.AutostartRegistrar
	store     port.SettingsStore
}

// NewManageAutostartUseCase creates a new ManageAutostartUseCase.
func NewManageAutostartUseCase(registrar port.AutostartRegistrar, store port.SettingsStore) *ManageAutostartUseCase {
	return &ManageAutostartUseCase{registrar: registrar, store: store}
}

// Enable writes the entry and returns its path.
func (uc *ManageAutostartUseCase) Enable(ctx context.Context) (string, error) {
	path, err := uc.registrar.Enable(ctx)
	if err != nil {
		return "", err
	}
	if err := uc.persist(ctx, true); err != nil {
		return path, err
	}
	logging.FromContext(ctx).Info().Str("path", path).Msg("autostart enabled")
	return path, nil
}

// Disable removes the entry. Idempotent.
func (uc *ManageAutostartUseCase) Disable(ctx context.Context) error {
	if err := uc.registrar.Disable(ctx); err != nil {
		return err
	}
	if err := uc.persist(ctx, false); err != nil {
		return err
	}
	logging.FromContext(ctx).Info().Msg("autostart disabled")
	return nil
}

// Status reports whether the entry exists.
func (uc *ManageAutostartUseCase) Status(ctx context.Context) (*port.AutostartStatus, error) {
	return uc.registrar.Status(ctx)
}

func (uc *ManageAutostartUseCase) persist(ctx context.Context, enabled bool) error {
	settings, err := uc.store.Load(ctx)
	if err != nil {
		return err
	}
	if settings.Autostart == enabled {
		return nil
	}
	settings.Autostart = enabled
	return uc.store.Save(ctx, settings)
}
