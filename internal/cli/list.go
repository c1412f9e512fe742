package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tasklist/internal/task"
)

const listWrapWidth = 72

func newListCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in their stored order",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Tasks.SetSearch(search)
			printTasks(cmd.OutOrStdout(), app.Tasks.Filtered())
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Only show tasks whose title contains this text (case-insensitive)")
	return cmd
}

func printTasks(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "(no tasks)")
		return
	}
	for _, t := range tasks {
		lines := wrapTitle(t.Title, listWrapWidth)
		id := idTag(w, t.ID)
		if len(lines) == 1 {
			fmt.Fprintf(w, "- %s %s\n", lines[0], id)
			continue
		}
		fmt.Fprintf(w, "- %s\n", lines[0])
		for _, line := range lines[1 : len(lines)-1] {
			fmt.Fprintf(w, "  %s\n", line)
		}
		fmt.Fprintf(w, "  %s %s\n", lines[len(lines)-1], id)
	}
}
