package task

import (
	"testing"

	"zendo/models"
)

func tasksWithCompletion(states ...bool) []models.Task {
	out := make([]models.Task, 0, len(states))
	for _, done := range states {
		t := models.NewTask("task", models.PriorityMedium, nil)
		t.Completed = done
		out = append(out, t)
	}
	return out
}

func TestCollectionPercent(t *testing.T) {
	tests := []struct {
		name  string
		tasks []models.Task
		want  int
	}{
		{"empty collection", nil, 0},
		{"none completed", tasksWithCompletion(false, false), 0},
		{"all completed", tasksWithCompletion(true, true, true), 100},
		{"one of two", tasksWithCompletion(true, false), 50},
		{"one of three rounds down", tasksWithCompletion(true, false, false), 33},
		{"two of three rounds up", tasksWithCompletion(true, true, false), 67},
		{"half rounds away from zero", tasksWithCompletion(true, false, false, false, false, false, false, false), 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollectionPercent(tt.tasks); got != tt.want {
				t.Errorf("CollectionPercent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSubtaskPercent(t *testing.T) {
	noSubtasks := models.NewTask("solo", models.PriorityLow, nil)
	if got := SubtaskPercent(noSubtasks); got != 0 {
		t.Errorf("SubtaskPercent with no subtasks = %d, want 0", got)
	}

	withSubtasks := models.NewTask("trip", models.PriorityMedium, []string{"flight", "hotel"})
	if got := SubtaskPercent(withSubtasks); got != 0 {
		t.Errorf("SubtaskPercent fresh = %d, want 0", got)
	}

	withSubtasks.Subtasks[0].Completed = true
	if got := SubtaskPercent(withSubtasks); got != 50 {
		t.Errorf("SubtaskPercent half done = %d, want 50", got)
	}

	withSubtasks.Subtasks[1].Completed = true
	if got := SubtaskPercent(withSubtasks); got != 100 {
		t.Errorf("SubtaskPercent all done = %d, want 100", got)
	}
}
