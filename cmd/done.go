package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zendo/internal/telemetry"
	"zendo/internal/ui"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Toggle a task between done and active",
	Long: `Flip the completion state of a task.

Running it on a completed task reopens the task. A task ID that does
not exist is ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := GetService()
	if err != nil {
		return fmt.Errorf("open task list: %w", err)
	}
	defer closeStore()

	if err := svc.ToggleComplete(args[0]); err != nil {
		return fmt.Errorf("toggle task: %w", err)
	}

	t := newTelemetry()
	defer func() { _ = t.Close() }()
	t.Track(telemetry.EventTaskToggled, nil)

	updated, ok := svc.Get(args[0])
	if !ok {
		cmd.Printf("No task with ID %s. Nothing changed.\n", args[0])
		return nil
	}
	if isJSON() {
		return printJSON(updated)
	}
	ui.RenderTask(cmd.OutOrStdout(), updated)
	return nil
}
