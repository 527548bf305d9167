package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/domain/entity"
	"github.com/bnema/desklet/internal/logging"
)

// RenderState is the render loop's lifecycle state.
type RenderState int32

const (
	RenderRunning RenderState = iota
	RenderStopped
)

func (s RenderState) String() string {
	switch s {
	case RenderRunning:
		return "running"
	case RenderStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ErrRenderLoopStarted is returned when Run is called a second time.
var ErrRenderLoopStarted = errors.New("render loop already started")

// RenderLoop owns frame timing. It runs on a background goroutine and only
// emits render events; compositing happens wherever the sink delivers them.
type RenderLoop struct {
	frames *entity.FrameSequence
	sink   port.FrameSink
	after  func(time.Duration) <-chan time.Time

	state    atomic.Int32
	started  atomic.Bool
	stopCh   chan struct{}
	stopOnce sync.Once
}

// RenderLoopOption configures a RenderLoop.
type RenderLoopOption func(*RenderLoop)

// WithTimer replaces time.After for the inter-frame wait.
func WithTimer(after func(time.Duration) <-chan time.Time) RenderLoopOption {
	return func(r *RenderLoop) {
		if after != nil {
			r.after = after
		}
	}
}

// NewRenderLoop creates a loop in the Running state.
func NewRenderLoop(frames *entity.FrameSequence, sink port.FrameSink, opts ...RenderLoopOption) *RenderLoop {
	r := &RenderLoop{
		frames: frames,
		sink:   sink,
		after:  time.After,
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.state.Store(int32(RenderRunning))
	return r
}

// Run emits frames in sequence order until Stop is called or ctx ends.
// The stop flag is checked before each hand-off and before each wait, so no
// frame is emitted once Stop has returned.
func (r *RenderLoop) Run(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return ErrRenderLoopStarted
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Int("frames", r.frames.Len()).
		Dur("cycle", r.frames.TotalDuration()).
		Msg("render loop started")

	index := 0
	for {
		if r.Stopped() {
			break
		}
		frame := r.frames.At(index)
		r.sink.Push(port.RenderEvent{Index: index, Frame: frame})

		if r.Stopped() {
			break
		}
		select {
		case <-r.after(frame.Duration):
		case <-r.stopCh:
		case <-ctx.Done():
			r.Stop()
		}
		index = r.frames.Next(index)
	}

	log.Debug().Msg("render loop stopped")
	return nil
}

// Stop moves the loop to Stopped. Safe to call repeatedly and from any
// goroutine.
func (r *RenderLoop) Stop() {
	r.stopOnce.Do(func() {
		r.state.Store(int32(RenderStopped))
		close(r.stopCh)
	})
}

// State returns the current lifecycle state.
func (r *RenderLoop) State() RenderState {
	return RenderState(r.state.Load())
}

// Stopped is shorthand for State() == RenderStopped.
func (r *RenderLoop) Stopped() bool {
	return r.State() == RenderStopped
}

// Presenter returns the UI-side consumer for render events. Events that
// arrive after Stop are dropped.
func (r *RenderLoop) Presenter(surface port.Surface) func(port.RenderEvent) {
	return func(ev port.RenderEvent) {
		if r.Stopped() || ev.Frame == nil {
			return
		}
		surface.Present(ev.Frame)
	}
}
