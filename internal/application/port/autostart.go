package port

import "context"

// AutostartStatus reports the login autostart entry state.
type AutostartStatus struct {
	Installed bool
	EntryPath string
	Exec      string
}

// AutostartRegistrar manages the XDG autostart entry that launches the
// overlay headlessly at login.
type AutostartRegistrar interface {
	Enable(ctx context.Context) (string, error)
	// Disable is idempotent.
	Disable(ctx context.Context) error
	Status(ctx context.Context) (*AutostartStatus, error)
}
