package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"zendo/internal/telemetry"
	"zendo/internal/ui"
	"zendo/models"
)

var (
	addPriority string
	addSubtasks []string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task to your list",
	Long: `Add a task directly, without AI involvement.

New tasks land at the top of the list. Use --subtask to attach steps.

Examples:
  zendo add "Buy milk"
  zendo add "Plan trip" --priority High -s "Book flight" -s "Book hotel"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority: Low, Medium, High (default Medium)")
	addCmd.Flags().StringArrayVarP(&addSubtasks, "subtask", "s", nil, "Subtask text (repeatable)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("task text cannot be empty")
	}

	svc, closeStore, err := GetService()
	if err != nil {
		return fmt.Errorf("open task list: %w", err)
	}
	defer closeStore()

	created, err := svc.Create(text, models.ParsePriority(addPriority), addSubtasks)
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	t := newTelemetry()
	defer func() { _ = t.Close() }()
	t.Track(telemetry.EventTaskAdded, map[string]any{"has_subtasks": len(created.Subtasks) > 0})

	if isJSON() {
		return printJSON(created)
	}
	ui.RenderTask(cmd.OutOrStdout(), created)
	return nil
}
