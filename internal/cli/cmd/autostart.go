package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/desklet/internal/cli/styles"
)

var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Manage the login autostart entry",
	Long: `Manage $XDG_CONFIG_HOME/autostart/desklet.desktop.

The entry runs 'desklet run --autostart', which shows the overlay with the
saved settings and logs instead of printing. The autostart key in
config.toml follows the entry.`,
}

var autostartEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Start the overlay at login",
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		renderer := styles.NewStatusRenderer(app.Theme)
		path, err := app.AutostartUC.Enable(app.Ctx())
		if err != nil {
			fmt.Print(renderer.RenderError(err))
			return reported(err)
		}
		fmt.Print(renderer.RenderSuccess(fmt.Sprintf("autostart enabled %s", app.Theme.Subtle.Render(path))))
		return nil
	},
}

var autostartDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Remove the login entry",
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		renderer := styles.NewStatusRenderer(app.Theme)
		if err := app.AutostartUC.Disable(app.Ctx()); err != nil {
			fmt.Print(renderer.RenderError(err))
			return reported(err)
		}
		fmt.Print(renderer.RenderSuccess("autostart disabled"))
		return nil
	},
}

var autostartStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the login entry is installed",
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		renderer := styles.NewStatusRenderer(app.Theme)
		st, err := app.AutostartUC.Status(app.Ctx())
		if err != nil {
			fmt.Print(renderer.RenderError(err))
			return reported(err)
		}
		fmt.Print(renderer.RenderAutostart(st))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(autostartCmd)
	autostartCmd.AddCommand(autostartEnableCmd)
	autostartCmd.AddCommand(autostartDisableCmd)
	autostartCmd.AddCommand(autostartStatusCmd)
}
