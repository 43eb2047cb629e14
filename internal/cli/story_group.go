package cli

import "github.com/spf13/cobra"

// storyCmd groups story file commands.
var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Inspect and edit the story file",
	Long:  "The story file holds the title, intro lines, dossier sections and terminal vocabulary. Without one the built-in story is used.",
}

func init() {
	rootCmd.AddCommand(storyCmd)
}
