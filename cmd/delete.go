package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zendo/internal/telemetry"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task permanently",
	Long: `Remove a task and all of its steps from the list. There is no
undo; the collection is rewritten without the task.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := GetService()
	if err != nil {
		return fmt.Errorf("open task list: %w", err)
	}
	defer closeStore()

	_, existed := svc.Get(args[0])
	if err := svc.Delete(args[0]); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	t := newTelemetry()
	defer func() { _ = t.Close() }()
	t.Track(telemetry.EventTaskDeleted, nil)

	if isJSON() {
		return printJSON(map[string]any{"id": args[0], "deleted": existed})
	}
	if existed {
		cmd.Printf("Deleted task %s.\n", args[0])
	} else {
		cmd.Printf("No task with ID %s. Nothing changed.\n", args[0])
	}
	return nil
}
