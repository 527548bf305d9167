package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/desklet/internal/logging"
)

// StartupTimer records how long each launch phase took.
type StartupTimer struct {
	start  time.Time
	last   time.Time
	phases []phase
	mu     sync.Mutex
}

type phase struct {
	name string
	dur  time.Duration
}

// NewStartupTimer creates a timer starting now.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{start: now, last: now}
}

// Mark records the time since the previous mark under name.
func (t *StartupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.phases = append(t.phases, phase{name: name, dur: now.Sub(t.last)})
	t.last = now
}

// LogDebug writes all phases in order.
func (t *StartupTimer) LogDebug(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", time.Since(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.name, p.dur)
	}
	event.Msg("startup timing")
}
