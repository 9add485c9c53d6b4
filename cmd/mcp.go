package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"zendo/internal/netcheck"
	"zendo/internal/task"
	"zendo/llm"
	"zendo/models"
	"zendo/types"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server so AI assistants can
manage your task list: add, list, toggle, delete, and run AI breakdowns.

The server speaks MCP over stdio and runs until the client disconnects.

Example usage with an MCP-capable assistant:
  zendo mcp`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// mcpJSONResponse marshals v into an MCP text result.
func mcpJSONResponse(v any) (*mcpsdk.CallToolResultFor[any], error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil
}

// mcpTextResponse wraps plain text in an MCP tool result.
func mcpTextResponse(text string) (*mcpsdk.CallToolResultFor[any], error) {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}, nil
}

// mcpErrorResponse wraps an error with IsError=true so the client model
// can see it and self-correct.
func mcpErrorResponse(err error) (*mcpsdk.CallToolResultFor[any], error) {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "Error: " + err.Error()}},
		IsError: true,
	}, nil
}

func runMCPServer(ctx context.Context) error {
	// MCP uses stdio transport; stdout must stay pure JSON-RPC, so all
	// status output goes to stderr.
	fmt.Fprintln(os.Stderr, "Zendo MCP server starting...")

	svc, closeStore, err := GetService()
	if err != nil {
		return fmt.Errorf("open task list: %w", err)
	}
	defer closeStore()

	cfg := GetConfig()
	var breakdown *llm.Client
	if provider, provErr := llm.NewProvider(ctx, &cfg.LLM); provErr == nil {
		timeout := time.Duration(cfg.LLM.RequestTimeoutSeconds) * time.Second
		breakdown = llm.NewClient(provider, timeout, netcheck.Online)
	} else {
		fmt.Fprintf(os.Stderr, "AI breakdown disabled: %v\n", provErr)
	}

	impl := &mcpsdk.Implementation{
		Name:    "zendo-mcp",
		Version: version,
	}
	serverOpts := &mcpsdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.InitializedParams) {
			fmt.Fprintln(os.Stderr, "MCP connection established")
		},
	}
	server := mcpsdk.NewServer(impl, serverOpts)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "task-add",
		Description: "Add a task to the list. Optionally attach subtask steps and a priority (Low, Medium, High).",
	}, func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.AddTaskParams]) (*mcpsdk.CallToolResultFor[any], error) {
		args := params.Arguments
		created, err := svc.Create(args.Text, models.ParsePriority(args.Priority), args.Subtasks)
		if err != nil {
			return mcpErrorResponse(err)
		}
		return mcpJSONResponse(created)
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "task-list",
		Description: "List tasks. Filter is one of: all, active, completed.",
	}, func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.ListTasksParams]) (*mcpsdk.CallToolResultFor[any], error) {
		tasks := svc.List(task.ParseFilter(params.Arguments.Filter))
		return mcpJSONResponse(map[string]any{
			"tasks":   tasks,
			"percent": task.CollectionPercent(tasks),
		})
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "task-done",
		Description: "Toggle a task between done and active. Unknown IDs change nothing.",
	}, func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.ToggleTaskParams]) (*mcpsdk.CallToolResultFor[any], error) {
		if err := svc.ToggleComplete(params.Arguments.ID); err != nil {
			return mcpErrorResponse(err)
		}
		if t, ok := svc.Get(params.Arguments.ID); ok {
			return mcpJSONResponse(t)
		}
		return mcpTextResponse("No task with that ID. Nothing changed.")
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "task-delete",
		Description: "Delete a task permanently, including its subtasks.",
	}, func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.DeleteTaskParams]) (*mcpsdk.CallToolResultFor[any], error) {
		if err := svc.Delete(params.Arguments.ID); err != nil {
			return mcpErrorResponse(err)
		}
		return mcpTextResponse("Deleted (if the task existed).")
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "subtask-toggle",
		Description: "Toggle one subtask step between done and active. The parent task is never auto-completed.",
	}, func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.ToggleSubtaskParams]) (*mcpsdk.CallToolResultFor[any], error) {
		if err := svc.ToggleSubtask(params.Arguments.TaskID, params.Arguments.SubtaskID); err != nil {
			return mcpErrorResponse(err)
		}
		if t, ok := svc.Get(params.Arguments.TaskID); ok {
			return mcpJSONResponse(t)
		}
		return mcpTextResponse("No task with that ID. Nothing changed.")
	})

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "task-breakdown",
		Description: "Refine a rough task description into a title, priority, and up to five steps, then add it to the list.",
	}, func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.BreakdownParams]) (*mcpsdk.CallToolResultFor[any], error) {
		out := llm.Fallback(params.Arguments.Input)
		if breakdown != nil {
			var err error
			if out, err = breakdown.Breakdown(ctx, params.Arguments.Input); err != nil {
				return mcpErrorResponse(err)
			}
		}
		created, err := svc.Create(out.RefinedTitle, models.ParsePriority(out.Priority), out.Subtasks)
		if err != nil {
			return mcpErrorResponse(err)
		}
		return mcpJSONResponse(created)
	})

	if err := server.Run(ctx, mcpsdk.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
