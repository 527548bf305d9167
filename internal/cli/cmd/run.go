package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/desklet/internal/application/usecase"
	"github.com/bnema/desklet/internal/bootstrap"
	"github.com/bnema/desklet/internal/cli/styles"
	"github.com/bnema/desklet/internal/domain/entity"
	"github.com/bnema/desklet/internal/logging"
)

var (
	runAutostart bool
	runGIF       string
	runMonitor   int
	runPosition  string
	runMargin    int
	runX         string
	runY         string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the overlay",
	Long: `Show the GIF overlay using the saved settings.

Flags override the saved settings for this run only. A position dragged in
custom mode is still written back to the config file.

With --autostart (used by the login entry) nothing is printed: failures,
including an overlay that is already running, are only logged to
$XDG_STATE_HOME/desklet/logs/desklet.log and the command exits 0.

Examples:
  desklet run
  desklet run --gif ~/Pictures/cat.gif --position top-left
  desklet run --x 300 --y 200       # implies --position custom`,
	RunE: runOverlay,
}

func init() {
	rootCmd.AddCommand(runCmd)
	f := runCmd.Flags()
	f.BoolVar(&runAutostart, "autostart", false, "headless login mode: log-only failures")
	f.StringVar(&runGIF, "gif", "", "animated GIF to show")
	f.IntVar(&runMonitor, "monitor", 0, "monitor index")
	f.StringVar(&runPosition, "position", "", "bottom-right, bottom-left, top-left, top-right or custom")
	f.IntVar(&runMargin, "margin", 0, "margin in pixels for corner placements")
	f.StringVar(&runX, "x", "", "custom X position")
	f.StringVar(&runY, "y", "", "custom Y position")
}

func runOverlay(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if runAutostart {
		return runHeadless()
	}

	renderer := styles.NewStatusRenderer(app.Theme)
	if app.ConfigErr != nil {
		fmt.Println(renderer.RenderError(app.ConfigErr))
		return reported(app.ConfigErr)
	}

	if err := app.EnableFileLog("", true); err != nil {
		return err
	}
	ctx := app.Ctx()

	settings := app.Config.Settings()
	if err := applyRunOverrides(cmd, settings); err != nil {
		return err
	}

	err := bootstrap.RunDesklet(ctx, bootstrap.DeskletOptions{
		Settings: settings,
		Store:    app.Store,
		LockPath: app.LockPath,
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entity.ErrAlreadyRunning):
		fmt.Println(renderer.RenderInfo("desklet is already running, use 'desklet stop' first"))
	case errors.Is(err, usecase.ErrNoAnimation):
		fmt.Println(renderer.RenderError(err))
		fmt.Println(renderer.RenderInfo("pick a GIF with 'desklet setup' or 'desklet run --gif <file>'"))
	default:
		fmt.Println(renderer.RenderError(err))
	}
	return reported(err)
}

// runHeadless starts the overlay for the login entry. It never fails the
// host session: every problem is logged and the exit status stays 0. Output
// printed by GTK is folded into the log file.
func runHeadless() error {
	app := GetApp()
	if err := app.EnableFileLog("", false); err != nil {
		return nil
	}
	ctx := logging.WithComponent(app.Ctx(), "autostart")
	log := logging.FromContext(ctx)

	if app.ConfigErr != nil {
		log.Error().Err(app.ConfigErr).Msg("configuration unusable, not starting")
		return nil
	}

	// Without a terminal, GTK's own warnings on stdout/stderr would be lost.
	// Only safe when the logger itself never writes to fd 2.
	if app.LogsOnlyToFile() {
		capture := logging.NewOutputCapture(*log)
		if err := capture.Start(); err != nil {
			log.Warn().Err(err).Msg("stdout/stderr capture unavailable")
		} else {
			defer capture.Stop()
		}
	}

	err := bootstrap.RunDesklet(ctx, bootstrap.DeskletOptions{
		Settings: app.Config.Settings(),
		Store:    app.Store,
		LockPath: app.LockPath,
	})
	switch {
	case err == nil:
	case errors.Is(err, entity.ErrAlreadyRunning):
		log.Info().Err(err).Msg("overlay already running, nothing to do")
	default:
		log.Error().Err(err).Msg("overlay failed")
	}
	return nil
}

func applyRunOverrides(cmd *cobra.Command, s *entity.Settings) error {
	f := cmd.Flags()
	if f.Changed("gif") {
		s.GIFPath = runGIF
	}
	if f.Changed("monitor") {
		if runMonitor < 0 {
			return fmt.Errorf("--monitor must be non-negative")
		}
		s.Monitor = runMonitor
	}
	if f.Changed("margin") {
		if runMargin < 0 {
			return fmt.Errorf("--margin must be non-negative")
		}
		s.Margin = runMargin
	}
	if f.Changed("x") {
		s.CustomX = runX
		s.Position = entity.PlacementCustom
	}
	if f.Changed("y") {
		s.CustomY = runY
		s.Position = entity.PlacementCustom
	}
	if f.Changed("position") {
		mode := entity.ParsePlacementMode(runPosition)
		if !mode.Known() {
			return fmt.Errorf("unknown --position %q", runPosition)
		}
		s.Position = mode
	}
	return nil
}
