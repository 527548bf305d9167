// Package bootstrap wires the overlay runtime: GTK application, render
// goroutine and signal handling.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"runtime"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v3"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/application/usecase"
	"github.com/bnema/desklet/internal/domain/entity"
	"github.com/bnema/desklet/internal/infrastructure/gif"
	"github.com/bnema/desklet/internal/infrastructure/instance"
	"github.com/bnema/desklet/internal/logging"
	"github.com/bnema/desklet/internal/ui/desklet"
	"github.com/bnema/desklet/internal/ui/mainloop"
)

const applicationID = "io.github.bnema.desklet"

// ErrGTKExit is returned when the GTK application exits with a non-zero
// status without any other error.
var ErrGTKExit = errors.New("gtk application exited with failure")

// DeskletOptions configures one overlay run.
type DeskletOptions struct {
	Settings *entity.Settings
	Store    port.SettingsStore
	LockPath string
}

// RunDesklet shows the overlay and blocks until it shuts down. It must be
// called from the main goroutine.
func RunDesklet(ctx context.Context, opts DeskletOptions) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ctx = logging.WithPID(logging.WithComponent(ctx, "desklet"), os.Getpid())
	log := logging.FromContext(ctx)
	timer := NewStartupTimer()

	lock := instance.NewLock(opts.LockPath)
	launch := usecase.NewLaunchDeskletUseCase(gif.NewDecoder(), desklet.Monitors{}, lock, lock, opts.Store)

	groupCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	group, groupCtx := errgroup.WithContext(groupCtx)

	app := gtk.NewApplication(applicationID, gio.ApplicationNonUnique)

	var runErr error
	fail := func(err error) {
		runErr = err
		app.Quit()
	}

	app.ConnectActivate(func() {
		timer.Mark("gtk_init")

		prepared, err := launch.Prepare(ctx, opts.Settings)
		if err != nil {
			fail(err)
			return
		}
		timer.Mark("prepare")

		win, err := desklet.NewWindow(ctx, app, prepared.Frames.Size())
		if err != nil {
			fail(err)
			return
		}

		// The queue is drained on the main loop; present is set before the
		// render goroutine starts, so the first drain always sees it.
		var present func(port.RenderEvent)
		queue := mainloop.NewQueue(desklet.IdlePoster, func(ev port.RenderEvent) {
			if present != nil {
				present(ev)
			}
		})

		running, err := launch.Start(ctx, usecase.StartDeskletInput{
			Prepared: prepared,
			Surface:  win,
			Sink:     queue,
			Poster:   desklet.IdlePoster,
			Quit: func() {
				queue.Destroy()
				app.Quit()
			},
		})
		if err != nil {
			queue.Destroy()
			fail(err)
			return
		}
		timer.Mark("window")
		timer.LogDebug(ctx)

		present = running.Loop.Presenter(win)
		win.ConnectPointer(ctx, running.Interaction)
		win.ConnectDestroy(func() {
			running.Shutdown.Shutdown(ctx, usecase.ShutdownWindowClosed)
		})

		group.Go(func() error {
			return running.Loop.Run(groupCtx)
		})
		group.Go(func() error {
			return watchSignals(groupCtx, ctx, running.Shutdown)
		})
	})

	// GTK must not see cobra's flags.
	status := app.Run([]string{os.Args[0]})
	cancel()
	if err := group.Wait(); err != nil && runErr == nil {
		runErr = err
	}

	if runErr != nil {
		return runErr
	}
	if status != 0 {
		return ErrGTKExit
	}
	log.Info().Msg("desklet exited")
	return nil
}
