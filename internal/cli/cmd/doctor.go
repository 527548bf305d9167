package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/desklet/internal/application/usecase"
	"github.com/bnema/desklet/internal/cli/styles"
	"github.com/bnema/desklet/internal/infrastructure/deps"
)

var doctorPrefix string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the GTK3 runtime libraries",
	Long: `Query pkg-config for GTK3, GdkPixbuf, GLib and GIO and compare them with
the minimum versions the overlay needs.

Use --prefix when the libraries live under a custom install root.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVar(&doctorPrefix, "prefix", "", "custom install prefix searched first (e.g. /opt/gtk3)")
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewStatusRenderer(app.Theme)

	uc := usecase.NewCheckRuntimeDependenciesUseCase(deps.NewPkgConfigProbe())
	out, err := uc.Execute(app.Ctx(), usecase.CheckRuntimeDependenciesInput{Prefix: doctorPrefix})
	if err != nil {
		return err
	}
	fmt.Print(renderer.RenderDoctor(out))
	if !out.OK {
		err := errors.New("runtime requirements not met")
		fmt.Print(renderer.RenderError(err))
		return reported(err)
	}
	return nil
}
