package cli

import (
	"github.com/spf13/cobra"
)

func newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sort",
		Aliases: []string{"order"},
		Short:   "Order the tasks list by title and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Tasks.Sort(); err != nil {
				return err
			}
			printTasks(cmd.OutOrStdout(), app.Tasks.Tasks())
			return nil
		},
	}
	return cmd
}
