package server

import (
	"time"

	"zendo/internal/task"
	"zendo/models"
)

// SubtaskResponse is the wire shape of one subtask.
type SubtaskResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// TaskResponse is the wire shape of one task, including its derived
// subtask progress.
type TaskResponse struct {
	ID             string            `json:"id"`
	Text           string            `json:"text"`
	Completed      bool              `json:"completed"`
	Priority       string            `json:"priority"`
	Subtasks       []SubtaskResponse `json:"subtasks"`
	SubtaskPercent int               `json:"subtaskPercent"`
	CreatedAt      time.Time         `json:"createdAt"`
	CompletedAt    *time.Time        `json:"completedAt,omitempty"`
}

// CreateTaskRequest is the body for creating a task.
type CreateTaskRequest struct {
	Text     string   `json:"text" minLength:"1" doc:"Task text"`
	Priority string   `json:"priority,omitempty" enum:"Low,Medium,High" doc:"Priority, defaults to Medium"`
	Subtasks []string `json:"subtasks,omitempty" doc:"Subtask texts"`
}

// ProgressResponse reports collection-wide completion.
type ProgressResponse struct {
	Percent   int `json:"percent"`
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// BreakdownRequest is the body for an AI breakdown.
type BreakdownRequest struct {
	Input string `json:"input" minLength:"1" doc:"Rough task description"`
}

// BreakdownResponse is the refined breakdown returned to the caller.
type BreakdownResponse struct {
	RefinedTitle string   `json:"refinedTitle"`
	Priority     string   `json:"priority"`
	Subtasks     []string `json:"subtasks"`
}

func taskResponse(t models.Task) TaskResponse {
	subs := make([]SubtaskResponse, 0, len(t.Subtasks))
	for _, st := range t.Subtasks {
		subs = append(subs, SubtaskResponse{ID: st.ID, Text: st.Text, Completed: st.Completed})
	}
	return TaskResponse{
		ID:             t.ID,
		Text:           t.Text,
		Completed:      t.Completed,
		Priority:       string(t.Priority),
		Subtasks:       subs,
		SubtaskPercent: task.SubtaskPercent(t),
		CreatedAt:      t.CreatedAt,
		CompletedAt:    t.CompletedAt,
	}
}

func mapTasks(tasks []models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskResponse(t))
	}
	return out
}
