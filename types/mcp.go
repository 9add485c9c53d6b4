package types

// MCP tool parameter types

// AddTaskParams for creating a new task
type AddTaskParams struct {
	Text     string   `json:"text" mcp:"Task text (required)"`
	Priority string   `json:"priority,omitempty" mcp:"Task priority: Low, Medium, High"`
	Subtasks []string `json:"subtasks,omitempty" mcp:"Subtask texts to attach to the new task"`
}

// ListTasksParams for listing tasks through a filter
type ListTasksParams struct {
	Filter string `json:"filter,omitempty" mcp:"Filter: all, active, completed"`
}

// ToggleTaskParams for flipping a task's completion state
type ToggleTaskParams struct {
	ID string `json:"id" mcp:"Task ID to toggle (required)"`
}

// DeleteTaskParams for deleting a task
type DeleteTaskParams struct {
	ID string `json:"id" mcp:"Task ID to delete (required)"`
}

// ToggleSubtaskParams for flipping one subtask's completion state
type ToggleSubtaskParams struct {
	TaskID    string `json:"taskId" mcp:"Parent task ID (required)"`
	SubtaskID string `json:"subtaskId" mcp:"Subtask ID to toggle (required)"`
}

// BreakdownParams for asking the AI to break a task description down
type BreakdownParams struct {
	Input string `json:"input" mcp:"Rough task description to refine (required)"`
}
