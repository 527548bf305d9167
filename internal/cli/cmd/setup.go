package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/desklet/internal/cli/model"
	"github.com/bnema/desklet/internal/cli/styles"
	"github.com/bnema/desklet/internal/domain/entity"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Edit the overlay settings interactively",
	Long: `Open the settings editor: GIF path, monitor, position, margin and autostart.

Saving writes config.toml and installs or removes the autostart entry to
match. A custom position set by dragging the overlay is kept.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewStatusRenderer(app.Theme)
	ctx := app.Ctx()

	current := entity.DefaultSettings()
	if app.ConfigErr != nil {
		fmt.Print(renderer.RenderError(app.ConfigErr))
		fmt.Print(renderer.RenderInfo("starting from defaults, saving replaces the file"))
	} else {
		current = *app.Config.Settings()
	}

	final, err := tea.NewProgram(model.NewSetupModel(app.Theme, current)).Run()
	if err != nil {
		return fmt.Errorf("settings editor: %w", err)
	}
	result, ok := final.(model.SetupModel).Result()
	if !ok {
		fmt.Print(renderer.RenderInfo("cancelled, nothing saved"))
		return nil
	}

	if err := app.Store.Save(ctx, &result); err != nil {
		fmt.Print(renderer.RenderError(err))
		return reported(err)
	}

	if result.Autostart != current.Autostart {
		if result.Autostart {
			_, err = app.AutostartUC.Enable(ctx)
		} else {
			err = app.AutostartUC.Disable(ctx)
		}
		if err != nil {
			fmt.Print(renderer.RenderError(fmt.Errorf("autostart: %w", err)))
			return reported(err)
		}
	}

	fmt.Print(renderer.RenderSuccess(fmt.Sprintf("saved %s", app.Theme.Subtle.Render(app.Manager.GetConfigFile()))))
	status, err := app.ControlUC.Status(ctx)
	if err == nil && status.Running {
		fmt.Print(renderer.RenderInfo("restart the overlay to apply: desklet stop && desklet run"))
	} else {
		fmt.Print(renderer.RenderInfo("show it with: desklet run"))
	}
	return nil
}
