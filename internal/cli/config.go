package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfg "dossier/internal/config"
	"dossier/internal/settings"
	"dossier/internal/system"
)

func init() { rootCmd.AddCommand(configCmd) }

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Initialize and show config locations",
	Long:  "Create the dossier config directory, write default settings.yaml when missing and print where each file lives.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cfg.Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		sp, err := cfg.SettingsPath()
		if err != nil {
			return err
		}
		if !fileExists(sp) {
			if err := settings.Save(sp, settings.Defaults()); err != nil {
				return err
			}
			system.Logger.Info("wrote default settings", "path", sp)
		}
		stp, err := storyPath()
		if err != nil {
			return err
		}
		lp, err := cfg.LogPath()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config dir: %s\n", dir)
		fmt.Fprintf(out, "settings:   %s\n", sp)
		fmt.Fprintf(out, "story:      %s%s\n", stp, missingNote(stp))
		fmt.Fprintf(out, "log:        %s\n", lp)
		return nil
	},
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}

func missingNote(p string) string {
	if fileExists(p) {
		return ""
	}
	return " (missing, built-in story in use; run `dossier story init`)"
}
