package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Priority represents the urgency label of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority converts free-form user or model output into a Priority.
// Unrecognized values fall back to Medium so upstream noise never breaks
// task creation.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow
	case "high":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// SubTask is a child step of a task. Subtasks complete independently and
// never affect the parent's completion state.
type SubTask struct {
	ID        string `json:"id" validate:"required,uuid4"`
	Text      string `json:"text" validate:"required,min=1"`
	Completed bool   `json:"completed"`
}

// Task is a single to-do item with optional subtasks.
//
// CompletedAt is present if and only if Completed is true: ToggleComplete
// sets it on the false→true transition and clears it on true→false.
type Task struct {
	ID          string     `json:"id" validate:"required,uuid4"`
	Text        string     `json:"text" validate:"required,min=1"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority" validate:"required,oneof=Low Medium High"`
	Subtasks    []SubTask  `json:"subtasks" validate:"dive"`
	CreatedAt   time.Time  `json:"createdAt" validate:"required"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// CurrentSchemaVersion is the version written into every persisted TaskList.
const CurrentSchemaVersion = 1

// TaskList is the persisted envelope for the whole collection. Order is
// display order: newest tasks first.
type TaskList struct {
	SchemaVersion int    `json:"schemaVersion"`
	Tasks         []Task `json:"tasks" validate:"dive"`
}

// NewTask builds a task with a fresh ID and creation timestamp. Each entry
// of subtaskTexts becomes a SubTask with its own fresh ID; blank entries are
// skipped.
func NewTask(text string, priority Priority, subtaskTexts []string) Task {
	if priority == "" {
		priority = PriorityMedium
	}
	subtasks := make([]SubTask, 0, len(subtaskTexts))
	for _, st := range subtaskTexts {
		st = strings.TrimSpace(st)
		if st == "" {
			continue
		}
		subtasks = append(subtasks, SubTask{
			ID:   uuid.NewString(),
			Text: st,
		})
	}
	return Task{
		ID:        uuid.NewString(),
		Text:      strings.TrimSpace(text),
		Priority:  priority,
		Subtasks:  subtasks,
		CreatedAt: time.Now().UTC(),
	}
}

var validate = validator.New()

// ValidateStruct performs validation on any struct that carries validation
// tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var msgs []string
	for _, e := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
