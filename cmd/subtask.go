package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zendo/internal/telemetry"
	"zendo/internal/ui"
)

// subtaskCmd groups subtask operations.
var subtaskCmd = &cobra.Command{
	Use:   "subtask",
	Short: "Work with a task's steps",
}

var subtaskToggleCmd = &cobra.Command{
	Use:   "toggle <task-id> <subtask-id>",
	Short: "Toggle one step between done and active",
	Long: `Flip the completion state of a single step. Completing every step
does not complete the parent task; mark the task done yourself with
'zendo done'.`,
	Args: cobra.ExactArgs(2),
	RunE: runSubtaskToggle,
}

func init() {
	rootCmd.AddCommand(subtaskCmd)
	subtaskCmd.AddCommand(subtaskToggleCmd)
}

func runSubtaskToggle(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := GetService()
	if err != nil {
		return fmt.Errorf("open task list: %w", err)
	}
	defer closeStore()

	if err := svc.ToggleSubtask(args[0], args[1]); err != nil {
		return fmt.Errorf("toggle step: %w", err)
	}

	t := newTelemetry()
	defer func() { _ = t.Close() }()
	t.Track(telemetry.EventSubtaskToggled, nil)

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
