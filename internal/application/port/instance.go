package port

import (
	"context"
	"time"
)

// InstanceStatus describes the lock record as seen by a controller.
type InstanceStatus struct {
	Running  bool
	PID      int
	LockPath string
	// StaleRemoved is true when the query found and deleted a stale record.
	StaleRemoved bool
}

// InstanceGuard is the overlay-side half of the single-instance lock.
type InstanceGuard interface {
	// Acquire records the current process as owner. Returns an error wrapping
	// entity.ErrAlreadyRunning when a live process already owns the lock.
	Acquire(ctx context.Context) error

	// Release deletes the lock record. Idempotent.
	Release(ctx context.Context) error
}

// InstanceController is the controller-side half: it inspects or stops a
// running overlay without owning the lock.
type InstanceController interface {
	Status(ctx context.Context) (*InstanceStatus, error)

	// Stop asks the owning process to terminate and waits up to timeout for
	// the lock to go away. Returns an error wrapping entity.ErrStopTimeout
	// when the process is still alive afterwards. Never kills forcibly.
	Stop(ctx context.Context, timeout time.Duration) error
}
