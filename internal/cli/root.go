package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dossier/internal/app"
	"dossier/internal/config"
	"dossier/internal/story"
	"dossier/internal/system"
)

var (
	storyFlag string
	skipIntro bool
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:   "dossier",
	Short: "dossier – Treat's story in the terminal",
	Long:  "dossier plays the Treat dossier: a title screen, an intro over falling snow, the dossier sections and the system terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the TUI
		return app.Start(cmd.Context(), app.Config{
			StoryPath: storyFlag,
			SkipIntro: skipIntro,
			LogFile:   logFile,
		})
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storyFlag, "story", "", "story file (default <config dir>/dossier/story.yaml)")
	rootCmd.Flags().BoolVar(&skipIntro, "skip-intro", false, "start at the dossier menu")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file for the TUI (default <config dir>/dossier/dossier.log)")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// storyPath resolves --story against the config dir.
func storyPath() (string, error) {
	if storyFlag != "" {
		return storyFlag, nil
	}
	return config.StoryPath()
}

// loadStory reads the story, falling back to the built-in one with a
// warning when the file is broken.
func loadStory() (story.Story, string) {
	p, err := storyPath()
	if err != nil {
		system.Logger.Warn("no config dir, using built-in story", "err", err)
		return story.Default(), ""
	}
	s, err := story.Load(p)
	if err != nil {
		system.Logger.Warn("story load failed, using default", "path", p, "err", err)
	}
	return s, p
}
