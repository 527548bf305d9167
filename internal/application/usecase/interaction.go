package usecase

import (
	"context"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/domain/entity"
	"github.com/bnema/desklet/internal/logging"
)

// InteractionHandler drags the overlay in custom placement mode. Every
// method runs on the UI thread.
type InteractionHandler struct {
	mode    entity.PlacementMode
	surface port.Surface
	store   port.SettingsStore

	session entity.DragSession
	origin  entity.Point
}

// NewInteractionHandler creates a handler for the given placement mode.
func NewInteractionHandler(mode entity.PlacementMode, surface port.Surface, store port.SettingsStore) *InteractionHandler {
	return &InteractionHandler{mode: mode, surface: surface, store: store}
}

// Active reports whether pointer events are handled at all.
func (h *InteractionHandler) Active() bool {
	return h.mode.IsCustom()
}

// Dragging reports whether a drag is in progress.
func (h *InteractionHandler) Dragging() bool {
	return h.session.Dragging()
}

// ButtonPress starts a drag on the primary button. pointer is in root
// (desktop) coordinates. Returns true when the event was consumed.
func (h *InteractionHandler) ButtonPress(ctx context.Context, button uint, pointer entity.Point) bool {
	if !h.Active() || button != entity.PrimaryButton {
		return false
	}
	h.origin = h.surface.Origin()
	h.session.Begin(pointer, h.origin)

	logging.FromContext(ctx).Debug().
		Stringer("pointer", pointer).
		Stringer("origin", h.origin).
		Stringer("offset", h.session.Offset()).
		Msg("drag started")
	return true
}

// Motion moves the window so the grab offset stays under the pointer. No
// clamping is applied while dragging.
func (h *InteractionHandler) Motion(_ context.Context, pointer entity.Point) bool {
	target, ok := h.session.Target(pointer)
	if !ok {
		return false
	}
	h.origin = target
	h.surface.Move(target)
	return true
}

// ButtonRelease ends the drag and persists the final origin as custom_x and
// custom_y. Persistence failures are logged only.
func (h *InteractionHandler) ButtonRelease(ctx context.Context, button uint, _ entity.Point) bool {
	if !h.Active() || button != entity.PrimaryButton {
		return false
	}
	if !h.session.End() {
		return false
	}

	log := logging.FromContext(ctx)
	if err := h.store.SavePosition(ctx, h.origin); err != nil {
		log.Warn().Err(err).Stringer("origin", h.origin).Msg("failed to persist dragged position")
		return true
	}
	log.Info().Stringer("origin", h.origin).Msg("desklet moved")
	return true
}
