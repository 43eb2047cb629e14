package cli

import (
	"github.com/spf13/cobra"

	"dossier/internal/settings"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit viewer preferences (volume, typing speed, snow, intro)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Run()
	},
}
