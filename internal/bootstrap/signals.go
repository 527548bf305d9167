package bootstrap

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/bnema/desklet/internal/application/usecase"
	"github.com/bnema/desklet/internal/logging"
)

// Shutdowner is the part of usecase.ShutdownHandler the signal watcher needs.
type Shutdowner interface {
	Shutdown(ctx context.Context, reason usecase.ShutdownReason)
}

// shutdownSignals are the only signals the overlay handles. Anything else
// keeps its default disposition; a lock left by Ctrl+C is reclaimed as stale
// on the next start.
var shutdownSignals = []os.Signal{unix.SIGTERM, unix.SIGHUP}

// watchSignals forwards shutdownSignals to h until ctx ends. Signals keep
// being caught after the first so a repeated SIGTERM cannot kill the process
// mid-teardown.
func watchSignals(ctx context.Context, shutdownCtx context.Context, h Shutdowner) error {
	log := logging.FromContext(shutdownCtx)

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, shutdownSignals...)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig := <-sigCh:
			log.Info().Str("signal", sig.String()).Msg("received signal")
			h.Shutdown(shutdownCtx, signalReason(sig))
		}
	}
}

func signalReason(sig os.Signal) usecase.ShutdownReason {
	if sig == unix.SIGHUP {
		return usecase.ShutdownSignalHangup
	}
	return usecase.ShutdownSignalTerm
}
