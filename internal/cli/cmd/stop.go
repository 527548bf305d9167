package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/desklet/internal/application/usecase"
	"github.com/bnema/desklet/internal/cli/styles"
	"github.com/bnema/desklet/internal/domain/entity"
)

var stopTimeout time.Duration

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running overlay",
	Long: `Ask the running overlay to exit and wait for it to release its lock.

The overlay receives SIGTERM so it can clean up; it is never killed. When it
does not exit within --timeout a warning is printed and the command fails.`,
	RunE: runStop,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an overlay is running",
	Long:  `Read the instance lock without taking it. A lock left by a dead process is removed.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	stopCmd.Flags().DurationVar(&stopTimeout, "timeout", 0, "how long to wait (default instance.stop_timeout_ms)")
}

func runStop(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewStatusRenderer(app.Theme)

	timeout := time.Duration(app.Config.Instance.StopTimeoutMs) * time.Millisecond
	uc := app.ControlUC
	if cmd.Flags().Changed("timeout") {
		timeout = stopTimeout
		uc = usecase.NewControlInstanceUseCase(app.Lock, timeout)
	}

	out, err := uc.Stop(app.Ctx())
	switch {
	case err == nil:
		fmt.Print(renderer.RenderStopped(out.WasRunning, out.PID))
		return nil
	case errors.Is(err, entity.ErrStopTimeout):
		fmt.Print(renderer.RenderStopTimeout(out.PID, timeout))
	default:
		fmt.Print(renderer.RenderError(err))
	}
	return reported(err)
}

func runStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewStatusRenderer(app.Theme)

	status, err := app.ControlUC.Status(app.Ctx())
	if err != nil {
		fmt.Print(renderer.RenderError(err))
		return reported(err)
	}
	fmt.Print(renderer.RenderInstance(status))
	return nil
}
