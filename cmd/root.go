package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zendo/internal/task"
	"zendo/store"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// jsonOut switches command output to JSON.
	jsonOut bool
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zendo",
	Short: "Zendo is a zen to-do list with AI task breakdown.",
	Long: `Zendo keeps a single to-do list on your machine and uses AI to turn
vague tasks into actionable ones: a refined title, a priority, and a
short list of concrete steps.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.zendo.yaml or ./.zendo.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output JSON instead of tables")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// DataDir returns the directory holding the task data file.
func DataDir() string {
	config := GetConfig()
	if config.Data.Dir != "" {
		return config.Data.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zendo"
	}
	return filepath.Join(home, ".zendo")
}

// GetTaskFilePath returns the full path to the tasks file.
func GetTaskFilePath() string {
	config := GetConfig()
	if filepath.IsAbs(config.Data.File) {
		return config.Data.File
	}
	return filepath.Join(DataDir(), config.Data.File)
}

// GetStore initializes and returns the task store.
func GetStore() (store.TaskStore, error) {
	s := store.NewFileTaskStore()
	config := GetConfig()

	taskFilePath := GetTaskFilePath()
	err := s.Initialize(map[string]string{
		"dataFile":       taskFilePath,
		"dataFileFormat": config.Data.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store at %s: %w", taskFilePath, err)
	}
	return s, nil
}

// GetService opens the store and loads the task collection. The returned
// cleanup releases the store lock and must always be called.
func GetService() (*task.Service, func(), error) {
	s, err := GetStore()
	if err != nil {
		return nil, nil, err
	}
	svc, err := task.NewService(s)
	if err != nil {
		_ = s.Close()
		return nil, nil, err
	}
	return svc, func() { _ = s.Close() }, nil
}
