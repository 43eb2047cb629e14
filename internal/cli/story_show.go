package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"dossier/internal/story"
)

var (
	showUnlocked bool
	showRaw      bool
)

func init() {
	storyShowCmd.Flags().BoolVar(&showUnlocked, "unlocked", false, "include locked sections")
	storyShowCmd.Flags().BoolVar(&showRaw, "raw", false, "print markdown without rendering")
	storyCmd.AddCommand(storyShowCmd)
}

var storyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the dossier as rendered markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _ := loadStory()
		md := story.Markdown(s, showUnlocked)
		if showRaw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
		if err != nil {
			return err
		}
		out, err := r.Render(md)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}
