package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tasklist/internal/task"
)

func newExportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all tasks to stdout as json, yaml or toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := task.ParseFormat(format, "")
			if err != nil {
				return err
			}
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			data, err := task.Marshal(app.Tasks.Tasks(), f)
			if err != nil {
				return fmt.Errorf("export %s: %w", f, err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml or toml")
	return cmd
}

func newImportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace all tasks with the contents of an exported file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := task.ParseFormat(format, path)
			if err != nil {
				return err
			}
			// #nosec G304 -- path is supplied by the user on purpose
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			tasks, err := task.Unmarshal(data, f)
			if err != nil {
				return fmt.Errorf("import %s: %w", path, err)
			}

			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Tasks.Replace(tasks); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "📥 Imported %d tasks\n", len(tasks))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Input format: json, yaml or toml (defaults to the file extension)")
	return cmd
}
