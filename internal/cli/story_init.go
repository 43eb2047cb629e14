package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dossier/internal/story"
	"dossier/internal/system"
)

var initForce bool

func init() {
	storyInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing story file")
	storyCmd.AddCommand(storyInitCmd)
}

var storyInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in story to the story file for editing",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := storyPath()
		if err != nil {
			return err
		}
		if fileExists(p) && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", p)
		}
		if err := story.Save(p, story.Default()); err != nil {
			return err
		}
		system.Logger.Info("wrote story", "path", p)
		return nil
	},
}
