package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"zendo/internal/netcheck"
	"zendo/internal/telemetry"
	"zendo/internal/ui"
	"zendo/llm"
	"zendo/models"
)

var breakdownYes bool

// breakdownCmd represents the breakdown command
var breakdownCmd = &cobra.Command{
	Use:   "breakdown <text>",
	Short: "Turn a vague task into an actionable one with AI",
	Long: `Send a rough task description to the configured AI model and get
back a refined title, a priority, and up to five concrete steps. You
review the result before it is added to your list.

When offline, or when the model fails, your input is used as-is with
Medium priority.

Examples:
  zendo breakdown "sort out the trip"
  zendo breakdown --yes "renew passport"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
	breakdownCmd.Flags().BoolVarP(&breakdownYes, "yes", "y", false, "Accept the AI result without the interactive preview")
}

func runBreakdown(cmd *cobra.Command, args []string) error {
	input := strings.TrimSpace(strings.Join(args, " "))
	if input == "" {
		return fmt.Errorf("task text cannot be empty")
	}

	cfg := GetConfig()
	ctx := cmd.Context()

	provider, err := llm.NewProvider(ctx, &cfg.LLM)
	if err != nil {
		PrintError("AI is not configured; adding your input as-is. Set GEMINI_API_KEY or llm.apiKey to enable breakdown.", err)
		provider = nil
	}

	out := llm.Fallback(input)
	if provider != nil {
		timeout := time.Duration(cfg.LLM.RequestTimeoutSeconds) * time.Second
		client := llm.NewClient(provider, timeout, netcheck.Online)
		if out, err = client.Breakdown(ctx, input); err != nil {
			return err
		}
	}

	confirmed := true
	if !breakdownYes && term.IsTerminal(int(os.Stdout.Fd())) {
		out, confirmed, err = ui.RunPreview(out)
		if err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}
	if !confirmed {
		cmd.Println("Cancelled. Nothing was added.")
		return nil
	}

	svc, closeStore, err := GetService()
	if err != nil {
		return fmt.Errorf("open task list: %w", err)
	}
	defer closeStore()

	created, err := svc.Create(out.RefinedTitle, models.ParsePriority(out.Priority), out.Subtasks)
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	t := newTelemetry()
	defer func() { _ = t.Close() }()
	t.Track(telemetry.EventBreakdownRun, map[string]any{
		"provider":   cfg.LLM.Provider,
		"step_count": len(created.Subtasks),
	})

	if isJSON() {
		return printJSON(created)
	}
	ui.RenderTask(cmd.OutOrStdout(), created)
	return nil
}
