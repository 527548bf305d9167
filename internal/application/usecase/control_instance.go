package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/domain/entity"
	"github.com/bnema/desklet/internal/logging"
)

// DefaultStopTimeout is the total time Stop waits across both attempts.
const DefaultStopTimeout = 1500 * time.Millisecond

// StopInstanceOutput reports what Stop did.
type StopInstanceOutput struct {
	WasRunning bool
	PID        int
	// Retried is true when the first wait expired and a grace attempt ran.
	Retried bool
}

// ControlInstanceUseCase lets a controller process query or stop the
// running overlay without owning the lock.
type ControlInstanceUseCase struct {
	controller port.InstanceController
	timeout    time.Duration
}

// NewControlInstanceUseCase creates the use case. A non-positive timeout
// selects DefaultStopTimeout.
func NewControlInstanceUseCase(controller port.InstanceController, timeout time.Duration) *ControlInstanceUseCase {
	if timeout <= 0 {
		timeout = DefaultStopTimeout
	}
	return &ControlInstanceUseCase{controller: controller, timeout: timeout}
}

// Status reports whether an overlay is running, cleaning a stale lock as a
// side effect.
func (uc *ControlInstanceUseCase) Status(ctx context.Context) (*port.InstanceStatus, error) {
	status, err := uc.controller.Status(ctx)
	if err != nil {
		return nil, err
	}
	if status.StaleRemoved {
		logging.FromContext(ctx).Info().
			Int("pid", status.PID).
			Str("lock", status.LockPath).
			Msg("removed stale instance lock")
	}
	return status, nil
}

// Stop sends a termination request and waits two thirds of the timeout,
// then retries once for the remainder. The process is never killed.
func (uc *ControlInstanceUseCase) Stop(ctx context.Context) (*StopInstanceOutput, error) {
	log := logging.FromContext(ctx)

	status, err := uc.Status(ctx)
	if err != nil {
		return nil, err
	}
	out := &StopInstanceOutput{WasRunning: status.Running, PID: status.PID}
	if !status.Running {
		return out, nil
	}

	first := uc.timeout * 2 / 3
	grace := uc.timeout - first

	err = uc.controller.Stop(ctx, first)
	if errors.Is(err, entity.ErrStopTimeout) {
		log.Debug().Int("pid", status.PID).Dur("grace", grace).Msg("desklet still running, retrying stop")
		out.Retried = true
		err = uc.controller.Stop(ctx, grace)
	}
	if err != nil {
		return out, err
	}

	log.Info().Int("pid", status.PID).Msg("desklet stopped")
	return out, nil
}
