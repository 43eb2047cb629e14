package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dossier/internal/story"
)

func init() {
	storyCmd.AddCommand(storySchemaCmd)
}

var storySchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the story file",
	Long:  "Print the JSON Schema of story.yaml to stdout, for editor validation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := story.MarshalSchema(story.Schema())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}
