package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/desklet/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(_ *cobra.Command, _ []string) {
		t := styles.NewTheme()
		badge := t.AccentBadge(buildInfo.Version)
		if buildInfo.IsDev() {
			badge = t.MutedBadge("dev")
		}
		fmt.Printf("\n  %s %s\n", t.Title.Render("desklet"), badge)
		for _, f := range buildInfo.Fields() {
			fmt.Printf("  %s %s\n", t.Subtle.Render(fmt.Sprintf("%-7s", f.Label)), f.Value)
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
