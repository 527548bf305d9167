// Package usecase contains application business logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/domain/entity"
	"github.com/bnema/desklet/internal/domain/service"
	"github.com/bnema/desklet/internal/logging"
)

// ErrNoAnimation is returned when gif_path is empty or not a regular file.
var ErrNoAnimation = errors.New("no animation configured")

// PreparedDesklet is everything computed before a window exists.
type PreparedDesklet struct {
	Settings     entity.Settings
	Frames       *entity.FrameSequence
	Monitor      entity.MonitorGeometry
	MonitorIndex int
	Origin       entity.Point
}

// StartDeskletInput carries the UI-side collaborators for Start.
type StartDeskletInput struct {
	Prepared *PreparedDesklet
	Surface  port.Surface
	Sink     port.FrameSink
	Poster   port.MainThreadPoster
	// Quit runs on the UI thread after the window is destroyed.
	Quit          func()
	RenderOptions []RenderLoopOption
}

// RunningDesklet groups the live handlers of a shown overlay.
type RunningDesklet struct {
	Loop        *RenderLoop
	Interaction *InteractionHandler
	Shutdown    *ShutdownHandler
}

// LaunchDeskletUseCase builds and shows the overlay.
type LaunchDeskletUseCase struct {
	decoder    port.FrameDecoder
	monitors   port.MonitorProvider
	guard      port.InstanceGuard
	controller port.InstanceController
	store      port.SettingsStore
}

// NewLaunchDeskletUseCase creates a new LaunchDeskletUseCase.
func NewLaunchDeskletUseCase(
	decoder port.FrameDecoder,
	monitors port.MonitorProvider,
	guard port.InstanceGuard,
	controller port.InstanceController,
	store port.SettingsStore,
) *LaunchDeskletUseCase {
	return &LaunchDeskletUseCase{
		decoder:    decoder,
		monitors:   monitors,
		guard:      guard,
		controller: controller,
		store:      store,
	}
}

// Prepare validates settings, refuses when an overlay is already running,
// decodes every frame and computes the initial position. Must run on the UI
// thread because monitor geometry comes from the display server.
func (uc *LaunchDeskletUseCase) Prepare(ctx context.Context, settings *entity.Settings) (*PreparedDesklet, error) {
	log := logging.FromContext(ctx)

	if settings == nil {
		return nil, fmt.Errorf("%w: settings are missing", ErrNoAnimation)
	}
	path := strings.TrimSpace(settings.GIFPath)
	if path == "" {
		return nil, fmt.Errorf("%w: gif_path is empty", ErrNoAnimation)
	}
	if info, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAnimation, err)
	} else if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNoAnimation, path)
	}

	status, err := uc.controller.Status(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("cannot read instance lock, continuing")
	} else if status.Running {
		return nil, fmt.Errorf("%w (pid %d)", entity.ErrAlreadyRunning, status.PID)
	}

	frames, err := uc.decoder.Decode(ctx, path)
	if err != nil {
		return nil, err
	}

	index, monitor, err := uc.monitor(ctx, settings.Monitor)
	if err != nil {
		return nil, err
	}

	origin, err := service.ComputePlacement(service.PlacementInput{
		Monitor: monitor,
		Frame:   frames.Size(),
		Mode:    settings.Position,
		Margin:  settings.Margin,
		CustomX: settings.CustomX,
		CustomY: settings.CustomY,
	})
	if err != nil {
		log.Warn().Err(err).Stringer("origin", origin).Msg("custom position unusable, using monitor origin")
	}
	if !settings.Position.Known() {
		log.Warn().Str("position", string(settings.Position)).Msg("unknown position, using monitor origin")
	}

	log.Info().
		Str("gif_path", path).
		Int("frames", frames.Len()).
		Int("monitor", index).
		Str("position", string(settings.Position)).
		Stringer("origin", origin).
		Msg("desklet prepared")

	return &PreparedDesklet{
		Settings:     *settings,
		Frames:       frames,
		Monitor:      monitor,
		MonitorIndex: index,
		Origin:       origin,
	}, nil
}

// monitor falls back to the first monitor when the configured index is out
// of range.
func (uc *LaunchDeskletUseCase) monitor(ctx context.Context, index int) (int, entity.MonitorGeometry, error) {
	count := uc.monitors.MonitorCount()
	if count <= 0 {
		return 0, entity.MonitorGeometry{}, errors.New("no monitors available")
	}
	if index < 0 || index >= count {
		logging.FromContext(ctx).Warn().
			Int("monitor", index).
			Int("available", count).
			Msg("monitor index out of range, using monitor 0")
		index = 0
	}
	geom, err := uc.monitors.Monitor(index)
	if err != nil {
		return 0, entity.MonitorGeometry{}, fmt.Errorf("query monitor %d: %w", index, err)
	}
	return index, geom, nil
}

// Start shows the window, takes the instance lock and builds the handlers.
// The caller runs the returned render loop on its own goroutine. Only a live
// competing owner aborts the start; other lock failures are logged and the
// overlay runs without mutual exclusion.
func (uc *LaunchDeskletUseCase) Start(ctx context.Context, in StartDeskletInput) (*RunningDesklet, error) {
	log := logging.FromContext(ctx)
	p := in.Prepared

	in.Surface.Show(p.Origin)

	if err := uc.guard.Acquire(ctx); err != nil {
		if errors.Is(err, entity.ErrAlreadyRunning) {
			in.Surface.Destroy()
			return nil, err
		}
		log.Warn().Err(err).Msg("instance lock not written, single-instance guarantee is weakened")
	}

	loop := NewRenderLoop(p.Frames, in.Sink, in.RenderOptions...)
	running := &RunningDesklet{
		Loop:        loop,
		Interaction: NewInteractionHandler(p.Settings.Position, in.Surface, uc.store),
		Shutdown:    NewShutdownHandler(loop, uc.guard, in.Poster, in.Surface, in.Quit),
	}

	log.Info().
		Stringer("origin", p.Origin).
		Bool("draggable", running.Interaction.Active()).
		Msg("desklet shown")
	return running, nil
}
