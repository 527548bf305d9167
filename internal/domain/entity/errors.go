package entity

import "errors"

var (
	// ErrDecode is returned when the source animation cannot be opened or holds no frames.
	ErrDecode = errors.New("cannot decode animation")

	// ErrAlreadyRunning is returned when another overlay process owns the instance lock.
	ErrAlreadyRunning = errors.New("desklet already running")

	// ErrInvalidPlacement marks custom coordinates that could not be used as-is.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrStopTimeout is returned when a stopped overlay did not release its lock in time.
	ErrStopTimeout = errors.New("timed out waiting for desklet to stop")
)
