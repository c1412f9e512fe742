package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Tasks.SetInput(strings.Join(args, " "))
			if err := app.Tasks.Submit(); err != nil {
				return err
			}
			tasks := app.Tasks.Tasks()
			added := tasks[len(tasks)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Task added %s\n", idTag(cmd.OutOrStdout(), added.ID))
			return nil
		},
	}
	return cmd
}
