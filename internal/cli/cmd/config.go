package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/desklet/internal/application/usecase"
	"github.com/bnema/desklet/internal/cli/styles"
	"github.com/bnema/desklet/internal/infrastructure/config"
)

var configKeysSection string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and edit $XDG_CONFIG_HOME/desklet/config.toml.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the overlay settings",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println(GetApp().Manager.GetConfigFile())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a single key",
	Long: `Set a single configuration key and save the file.

Examples:
  desklet config set desklet.position top-left
  desklet config set desklet.gif_path ~/Pictures/cat.gif
  desklet config set logging.level debug

Run 'desklet config keys' for the full list.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the settable keys",
	RunE:  runConfigKeys,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configSchemaCmd)
	configKeysCmd.Flags().StringVar(&configKeysSection, "section", "", "only list one section (desklet, logging, instance)")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewStatusRenderer(app.Theme)

	if app.ConfigErr != nil {
		fmt.Print(renderer.RenderError(app.ConfigErr))
		return reported(app.ConfigErr)
	}
	fmt.Print(renderer.RenderSettings(app.Config.Settings(), app.Manager.GetConfigFile()))
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewStatusRenderer(app.Theme)

	// Saving over a file that failed to load would silently drop its content.
	if app.ConfigErr != nil {
		fmt.Print(renderer.RenderError(app.ConfigErr))
		return reported(app.ConfigErr)
	}

	cfg := app.Manager.Get()
	if err := config.SetValue(cfg, args[0], args[1]); err != nil {
		fmt.Print(renderer.RenderError(err))
		return reported(err)
	}
	if err := app.Manager.Save(cfg); err != nil {
		fmt.Print(renderer.RenderError(err))
		return reported(err)
	}
	fmt.Print(renderer.RenderSuccess(fmt.Sprintf("%s = %s", args[0], args[1])))
	return nil
}

func runConfigKeys(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.SchemaUC.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}
	if len(out.Keys) == 0 {
		return fmt.Errorf("no keys in section %q", configKeysSection)
	}
	fmt.Println(styles.NewStatusRenderer(app.Theme).RenderKeys(out.Keys))
	return nil
}
