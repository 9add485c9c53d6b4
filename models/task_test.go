package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTask_ValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{
			name: "valid task",
			task: Task{
				ID:        uuid.New().String(),
				Text:      "Buy milk",
				Priority:  PriorityMedium,
				CreatedAt: time.Now(),
			},
			wantErr: false,
		},
		{
			name: "empty text",
			task: Task{
				ID:        uuid.New().String(),
				Text:      "",
				Priority:  PriorityMedium,
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "invalid priority",
			task: Task{
				ID:        uuid.New().String(),
				Text:      "Buy milk",
				Priority:  "urgent",
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "invalid id",
			task: Task{
				ID:        "not-a-uuid",
				Text:      "Buy milk",
				Priority:  PriorityLow,
				CreatedAt: time.Now(),
			},
			wantErr: true,
		},
		{
			name: "subtask with empty text",
			task: Task{
				ID:        uuid.New().String(),
				Text:      "Plan trip",
				Priority:  PriorityHigh,
				CreatedAt: time.Now(),
				Subtasks: []SubTask{
					{ID: uuid.New().String(), Text: ""},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.task)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"low", PriorityLow},
		{"Low", PriorityLow},
		{"  HIGH  ", PriorityHigh},
		{"medium", PriorityMedium},
		{"urgent", PriorityMedium},
		{"", PriorityMedium},
	}
	for _, tt := range tests {
		if got := ParsePriority(tt.in); got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewTask(t *testing.T) {
	task := NewTask("  Plan trip  ", "", []string{"Book flight", "  ", "Book hotel"})

	if task.ID == "" {
		t.Error("NewTask should assign an ID")
	}
	if task.Text != "Plan trip" {
		t.Errorf("Text = %q, want %q", task.Text, "Plan trip")
	}
	if task.Priority != PriorityMedium {
		t.Errorf("default priority = %q, want %q", task.Priority, PriorityMedium)
	}
	if task.Completed {
		t.Error("new task should not be completed")
	}
	if task.CompletedAt != nil {
		t.Error("new task should have no CompletedAt")
	}
	if len(task.Subtasks) != 2 {
		t.Fatalf("expected 2 subtasks (blank skipped), got %d", len(task.Subtasks))
	}
	if task.Subtasks[0].Text != "Book flight" || task.Subtasks[1].Text != "Book hotel" {
		t.Errorf("subtask order not preserved: %+v", task.Subtasks)
	}
	if task.Subtasks[0].ID == task.Subtasks[1].ID {
		t.Error("subtasks must have distinct IDs")
	}
	if err := ValidateStruct(task); err != nil {
		t.Errorf("NewTask produced invalid task: %v", err)
	}
}

func TestTask_JSONRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	task := Task{
		ID:          uuid.New().String(),
		Text:        "Ship release",
		Completed:   true,
		Priority:    PriorityHigh,
		CreatedAt:   now.Add(-time.Hour),
		CompletedAt: &now,
		Subtasks: []SubTask{
			{ID: uuid.New().String(), Text: "Tag version", Completed: true},
			{ID: uuid.New().String(), Text: "Write notes"},
		},
	}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Task
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded.ID != task.ID || decoded.Text != task.Text || decoded.Priority != task.Priority {
		t.Errorf("round trip mismatch: got %+v", decoded)
	}
	if decoded.CompletedAt == nil || !decoded.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt lost in round trip: %v", decoded.CompletedAt)
	}
	if len(decoded.Subtasks) != 2 || decoded.Subtasks[0].Text != "Tag version" {
		t.Errorf("subtasks lost in round trip: %+v", decoded.Subtasks)
	}
}

func TestTask_CompletedAtOmittedWhenAbsent(t *testing.T) {
	task := NewTask("Buy milk", PriorityLow, nil)
	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if _, present := raw["completedAt"]; present {
		t.Error("completedAt should be omitted for incomplete tasks")
	}
}
