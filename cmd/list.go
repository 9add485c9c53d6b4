package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zendo/internal/task"
	"zendo/internal/ui"
)

var listFilter string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your tasks",
	Long: `List tasks with a filter.

Filters: all (default), active, completed.

Examples:
  zendo list
  zendo list --filter active`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "all", "Filter: all, active, completed")
}

func runList(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := GetService()
	if err != nil {
		return fmt.Errorf("open task list: %w", err)
	}
	defer closeStore()

	tasks := svc.List(task.ParseFilter(listFilter))

	if isJSON() {
		return printJSON(tasks)
	}
	ui.RenderTaskList(cmd.OutOrStdout(), tasks, task.ParseFilter(listFilter))
	return nil
}
