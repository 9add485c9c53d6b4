package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"zendo/internal/task"
	"zendo/internal/ui"
	"zendo/models"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the task list and re-render on changes",
	Long: `Print the task list and keep it updated as the data file changes,
for example while another terminal runs 'zendo add' or the HTTP API
mutates tasks. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := GetService()
	if err != nil {
		return fmt.Errorf("open task list: %w", err)
	}
	defer closeStore()

	render := func(tasks []models.Task) {
		fmt.Print("\033[H\033[2J") // clear screen
		ui.RenderTaskList(cmd.OutOrStdout(), tasks, task.FilterAll)
		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSubtle.Render("Watching for changes. Ctrl+C to stop."))
	}
	svc.Subscribe(render)
	render(svc.List(task.FilterAll))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dataFile := GetTaskFilePath()
	// Watch the directory: saves go through a rename, which replaces the
	// watched inode if we watch the file itself.
	if err := watcher.Add(filepath.Dir(dataFile)); err != nil {
		return fmt.Errorf("watch %s: %w", dataFile, err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != dataFile {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := svc.Reload(); err != nil {
				LogError("reload after change", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			LogError("watcher", err)
		case <-stop:
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		}
	}
}
