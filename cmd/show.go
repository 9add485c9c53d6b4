package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zendo/internal/ui"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show one task with its steps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := GetService()
		if err != nil {
			return fmt.Errorf("open task list: %w", err)
		}
		defer closeStore()

		t, ok := svc.Get(args[0])
		if !ok {
			return fmt.Errorf("no task with ID %s", args[0])
		}
		if isJSON() {
			return printJSON(t)
		}
		ui.RenderTask(cmd.OutOrStdout(), t)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
