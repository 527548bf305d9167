package usecase

import (
	"context"
	"sync"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/logging"
)

// ShutdownReason names what triggered a shutdown.
type ShutdownReason string

const (
	ShutdownSignalTerm    ShutdownReason = "SIGTERM"
	ShutdownSignalHangup  ShutdownReason = "SIGHUP"
	ShutdownStopRequest   ShutdownReason = "stop-request"
	ShutdownWindowClosed  ShutdownReason = "window-closed"
	ShutdownContextCancel ShutdownReason = "context-cancelled"
)

// Stopper halts the render schedule.
type Stopper interface {
	Stop()
}

// ShutdownHandler tears the overlay down exactly once no matter how many
// triggers fire: it stops the render loop, releases the instance lock and
// destroys the window on the UI thread.
type ShutdownHandler struct {
	loop    Stopper
	guard   port.InstanceGuard
	poster  port.MainThreadPoster
	surface port.Surface
	quit    func()

	once   sync.Once
	done   chan struct{}
	reason ShutdownReason
}

// NewShutdownHandler wires the teardown steps. quit runs on the UI thread
// after the window is destroyed and may be nil.
func NewShutdownHandler(
	loop Stopper,
	guard port.InstanceGuard,
	poster port.MainThreadPoster,
	surface port.Surface,
	quit func(),
) *ShutdownHandler {
	return &ShutdownHandler{
		loop:    loop,
		guard:   guard,
		poster:  poster,
		surface: surface,
		quit:    quit,
		done:    make(chan struct{}),
	}
}

// Shutdown runs the teardown on first call; later calls are no-ops.
// Safe from any goroutine.
func (h *ShutdownHandler) Shutdown(ctx context.Context, reason ShutdownReason) {
	log := logging.FromContext(ctx)

	fired := false
	h.once.Do(func() {
		fired = true
		h.reason = reason
		log.Info().Str("reason", string(reason)).Msg("shutting down desklet")

		h.loop.Stop()

		if err := h.guard.Release(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to release instance lock")
		}

		h.poster.Post(func() {
			h.surface.Destroy()
			if h.quit != nil {
				h.quit()
			}
		})
		close(h.done)
	})

	if !fired {
		log.Debug().Str("reason", string(reason)).Msg("shutdown already in progress")
	}
}

// Done is closed once the teardown has been scheduled.
func (h *ShutdownHandler) Done() <-chan struct{} {
	return h.done
}

// Reason returns the first trigger, or "" before shutdown.
func (h *ShutdownHandler) Reason() ShutdownReason {
	select {
	case <-h.done:
		return h.reason
	default:
		return ""
	}
}
