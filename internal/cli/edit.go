package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [taskID] [new title]",
		Short: "Replace a task's title (prompts when no title is given)",
		Args:  cobra.MinimumNArgs(1),
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
			current, ok := app.Tasks.Find(id)
			if !ok {
				return fmt.Errorf("task not found: %d", id)
			}

			app.Tasks.BeginEdit(id)
			if len(args) > 1 {
				app.Tasks.SetInput(strings.Join(args[1:], " "))
			} else {
				title := current.Title
				prompt := &survey.Input{Message: "Title", Default: current.Title}
				if err := survey.AskOne(prompt, &title); err != nil {
					return err
				}
				app.Tasks.SetInput(title)
			}
			if err := app.Tasks.Submit(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✏️  Task updated")
			return nil
		},
	}
	return cmd
}
