package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/domain/entity"
	"github.com/bnema/desklet/internal/logging"
)

func testContext() context.Context {
	cfg := logging.DefaultConfig()
	cfg.Level = zerolog.DebugLevel
	return logging.WithContext(context.Background(), logging.New(cfg))
}

func testFrames(durations ...time.Duration) *entity.FrameSequence {
	frames := make([]*entity.Frame, len(durations))
	for i, d := range durations {
		frames[i] = &entity.Frame{Width: 64, Height: 64, Stride: 256, Pix: make([]byte, 64*256), Duration: d}
	}
	seq, err := entity.NewFrameSequence(frames)
	if err != nil {
		panic(err)
	}
	return seq
}

// recordingSink collects render events without blocking the loop.
type recordingSink struct {
	mu     sync.Mutex
	events []port.RenderEvent
}

func (s *recordingSink) Push(ev port.RenderEvent) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

func (s *recordingSink) indices() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.Index
	}
	return out
}

// timerRequest is one pending inter-frame wait.
type timerRequest struct {
	d  time.Duration
	ch chan time.Time
}

func (r timerRequest) fire() {
	r.ch <- time.Time{}
}

// manualClock hands every wait to the test so it decides when frames advance.
type manualClock struct {
	requests chan timerRequest
}

func newManualClock() *manualClock {
	return &manualClock{requests: make(chan timerRequest, 16)}
}

func (c *manualClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	c.requests <- timerRequest{d: d, ch: ch}
	return ch
}

// inlinePoster runs posted work immediately, standing in for the UI thread.
type inlinePoster struct {
	mu    sync.Mutex
	calls int
}

func (p *inlinePoster) Post(fn func()) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	fn()
}

func (p *inlinePoster) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
