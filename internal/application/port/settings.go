package port

import (
	"context"

	"github.com/bnema/desklet/internal/domain/entity"
)

// SettingsStore is the configuration store collaborator.
type SettingsStore interface {
	Load(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, settings *entity.Settings) error
	// SavePosition persists custom_x/custom_y after a drag.
	SavePosition(ctx context.Context, origin entity.Point) error
}
