// Package mainloop hands work from background goroutines to the UI thread.
package mainloop

import (
	"sync"

	"github.com/bnema/desklet/internal/application/port"
)

// PostFunc adapts a scheduling function such as glib.IdleAdd to
// port.MainThreadPoster.
type PostFunc func(fn func())

// Post implements port.MainThreadPoster.
func (f PostFunc) Post(fn func()) {
	f(fn)
}

// Queue is a FIFO drained on the UI thread. Bursts of Push share one
// scheduled drain, but every item is delivered in order.
type Queue[T any] struct {
	mu        sync.Mutex
	items     []T
	scheduled bool
	destroyed bool
	post      func(func())
	consume   func(T)
}

// FrameQueue carries render events from the render loop to the window.
type FrameQueue = Queue[port.RenderEvent]

var _ port.FrameSink = (*FrameQueue)(nil)

func NewQueue[T any](post func(func()), consume func(T)) *Queue[T] {
	if post == nil {
		panic("mainloop.NewQueue: post function cannot be nil")
	}
	if consume == nil {
		panic("mainloop.NewQueue: consume function cannot be nil")
	}

	return &Queue[T]{post: post, consume: consume}
}

// Push enqueues item. It never blocks on the UI thread.
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	if q.destroyed {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, item)
	if q.scheduled {
		q.mu.Unlock()
		return
	}
	q.scheduled = true
	post := q.post
	q.mu.Unlock()

	post(q.drain)
}

// Len returns the number of undelivered items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Destroy drops pending items and ignores later pushes.
func (q *Queue[T]) Destroy() {
	q.mu.Lock()
	q.destroyed = true
	q.items = nil
	q.mu.Unlock()
}

func (q *Queue[T]) drain() {
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.scheduled = false
	if q.destroyed {
		q.mu.Unlock()
		return
	}
	q.mu.Unlock()

	for _, item := range items {
		q.mu.Lock()
		destroyed := q.destroyed
		q.mu.Unlock()
		if destroyed {
			return
		}
		q.consume(item)
	}
}
