package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	storyCmd.AddCommand(storyPathCmd)
}

var storyPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the story file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := storyPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), p)
		return nil
	},
}
