package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [taskID]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			before := app.Tasks.Len()
			if err := app.Tasks.Delete(id); err != nil {
				return err
			}
			if app.Tasks.Len() == before {
				fmt.Fprintln(cmd.OutOrStdout(), "(no task with that id)")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "🗑️ Task deleted")
			return nil
		},
	}
	return cmd
}

func parseTaskID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.Trim(strings.TrimSpace(raw), "[]"))
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", raw)
	}
	return id, nil
}
