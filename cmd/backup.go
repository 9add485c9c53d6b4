package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup <destination>",
	Short: "Copy the task data file to a backup location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetStore()
		if err != nil {
			return fmt.Errorf("open task list: %w", err)
		}
		defer func() { _ = s.Close() }()

		if err := s.Backup(args[0]); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
		cmd.Printf("Backed up tasks to %s\n", args[0])
		return nil
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore <source>",
	Short: "Replace the task data file from a backup",
	Long: `Replace the current task collection with the contents of a backup
file. The previous collection is overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetStore()
		if err != nil {
			return fmt.Errorf("open task list: %w", err)
		}
		defer func() { _ = s.Close() }()

		if err := s.Restore(args[0]); err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		cmd.Printf("Restored tasks from %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
