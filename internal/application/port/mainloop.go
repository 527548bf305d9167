package port

import "github.com/bnema/desklet/internal/domain/entity"

// MainThreadPoster schedules fn on the UI-owning context. Safe to call from
// any goroutine.
type MainThreadPoster interface {
	Post(fn func())
}

// RenderEvent asks the UI context to composite one frame.
type RenderEvent struct {
	Index int
	Frame *entity.Frame
}

// FrameSink receives render events from the background schedule.
// Push must not block on the UI context and must preserve order.
type FrameSink interface {
	Push(ev RenderEvent)
}
