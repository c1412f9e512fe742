package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search tasks by title (case-insensitive substring)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Tasks.SetSearch(strings.Join(args, " "))
			printTasks(cmd.OutOrStdout(), app.Tasks.Filtered())
			return nil
		},
	}
	return cmd
}
