package task

import (
	"path/filepath"
	"testing"

	"zendo/models"
	"zendo/store"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), "tasks.json")
	s := store.NewFileTaskStore()
	err := s.Initialize(map[string]string{
		"dataFile":       filePath,
		"dataFileFormat": "json",
	})
	if err != nil {
		t.Fatalf("initialize store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	svc, err := NewService(s)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, filePath
}

func TestService_CreatePrependsNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Create("Buy milk", "", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create("Plan trip", models.PriorityHigh, []string{"Book flight", "Book hotel"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	tasks := svc.List(FilterAll)
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[0].ID != second.ID || tasks[1].ID != first.ID {
		t.Errorf("new tasks must prepend: got order %s, %s", tasks[0].Text, tasks[1].Text)
	}
	if first.Priority != models.PriorityMedium {
		t.Errorf("default priority = %q, want Medium", first.Priority)
	}
	if len(second.Subtasks) != 2 {
		t.Errorf("got %d subtasks, want 2", len(second.Subtasks))
	}
}

func TestService_CreateRejectsEmptyText(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Create("   ", "", nil); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestService_ToggleCompleteIsItsOwnInverse(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create("Buy milk", "", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.ToggleComplete(created.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	got, _ := svc.Get(created.ID)
	if !got.Completed {
		t.Error("task should be completed after first toggle")
	}
	if got.CompletedAt == nil {
		t.Error("CompletedAt must be set when completed")
	}

	if err := svc.ToggleComplete(created.ID); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	got, _ = svc.Get(created.ID)
	if got.Completed {
		t.Error("task should be active after second toggle")
	}
	if got.CompletedAt != nil {
		t.Error("CompletedAt must be cleared when un-completed")
	}
}

func TestService_UnknownIDsAreNoOps(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create("Buy milk", "", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.ToggleComplete("missing-id"); err != nil {
		t.Errorf("ToggleComplete on unknown id must be a no-op, got %v", err)
	}
	if err := svc.Delete("missing-id"); err != nil {
		t.Errorf("Delete on unknown id must be a no-op, got %v", err)
	}
	if err := svc.ToggleSubtask(created.ID, "missing-sub"); err != nil {
		t.Errorf("ToggleSubtask on unknown subtask must be a no-op, got %v", err)
	}
	if err := svc.ToggleSubtask("missing-id", "missing-sub"); err != nil {
		t.Errorf("ToggleSubtask on unknown task must be a no-op, got %v", err)
	}

	if got := svc.List(FilterAll); len(got) != 1 || got[0].Completed {
		t.Errorf("collection should be untouched by no-ops: %+v", got)
	}
}

func TestService_ToggleSubtaskDoesNotCascade(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create("Plan trip", "", []string{"Book flight", "Book hotel"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, st := range created.Subtasks {
		if err := svc.ToggleSubtask(created.ID, st.ID); err != nil {
			t.Fatalf("toggle subtask: %v", err)
		}
	}

	got, _ := svc.Get(created.ID)
	if SubtaskPercent(got) != 100 {
		t.Fatalf("subtask percent = %d, want 100", SubtaskPercent(got))
	}
	if got.Completed {
		t.Error("completing all subtasks must not auto-complete the parent")
	}
}

func TestService_DeleteRemovesTaskAndSubtasks(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create("Plan trip", "", []string{"Book flight"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	subID := created.Subtasks[0].ID

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := svc.Get(created.ID); ok {
		t.Error("deleted task still present")
	}
	// Toggling a former subtask id is a no-op, not an error.
	if err := svc.ToggleSubtask(created.ID, subID); err != nil {
		t.Errorf("toggle on deleted task's subtask must be a no-op, got %v", err)
	}
}

// Any sequence of mutations must survive a save→load round trip
// structurally unchanged: same ids, same field values, same order.
func TestService_PersistenceRoundTrip(t *testing.T) {
	svc, filePath := newTestService(t)

	if _, err := svc.Create("Buy milk", "", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	trip, err := svc.Create("Plan trip", models.PriorityHigh, []string{"Book flight", "Book hotel"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	third, err := svc.Create("Ship release", models.PriorityLow, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.ToggleComplete(third.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.ToggleSubtask(trip.ID, trip.Subtasks[1].ID); err != nil {
		t.Fatalf("toggle subtask: %v", err)
	}
	if err := svc.Delete(third.ID); err == nil {
		// Deleting an existing task, then re-create to exercise ordering.
		if _, err := svc.Create("Water plants", "", nil); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	before := svc.List(FilterAll)

	reopened := store.NewFileTaskStore()
	if err := reopened.Initialize(map[string]string{"dataFile": filePath, "dataFileFormat": "json"}); err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	svc2, err := NewService(reopened)
	if err != nil {
		t.Fatalf("reopen service: %v", err)
	}
	after := svc2.List(FilterAll)

	if len(after) != len(before) {
		t.Fatalf("round trip count: got %d, want %d", len(after), len(before))
	}
	for i := range before {
		b, a := before[i], after[i]
		if a.ID != b.ID || a.Text != b.Text || a.Completed != b.Completed || a.Priority != b.Priority {
			t.Errorf("task %d mismatch after round trip:\n got %+v\nwant %+v", i, a, b)
		}
		if (a.CompletedAt == nil) != (b.CompletedAt == nil) {
			t.Errorf("task %d CompletedAt presence mismatch", i)
		}
		if len(a.Subtasks) != len(b.Subtasks) {
			t.Errorf("task %d subtask count mismatch: %d vs %d", i, len(a.Subtasks), len(b.Subtasks))
			continue
		}
		for j := range b.Subtasks {
			if a.Subtasks[j] != b.Subtasks[j] {
				t.Errorf("task %d subtask %d mismatch: %+v vs %+v", i, j, a.Subtasks[j], b.Subtasks[j])
			}
		}
	}
}

// The worked example from the product brief: two tasks, one completed, one
// subtask toggled.
func TestService_ProgressScenario(t *testing.T) {
	svc, _ := newTestService(t)

	milk, err := svc.Create("Buy milk", "", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := CollectionPercent(svc.List(FilterAll)); got != 0 {
		t.Errorf("percent after first create = %d, want 0", got)
	}

	trip, err := svc.Create("Plan trip", models.PriorityMedium, []string{"Book flight", "Book hotel"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	tripTask, _ := svc.Get(trip.ID)
	if got := SubtaskPercent(tripTask); got != 0 {
		t.Errorf("fresh subtask percent = %d, want 0", got)
	}

	if err := svc.ToggleComplete(milk.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := CollectionPercent(svc.List(FilterAll)); got != 50 {
		t.Errorf("percent after completing one of two = %d, want 50", got)
	}

	if err := svc.ToggleSubtask(trip.ID, trip.Subtasks[0].ID); err != nil {
		t.Fatalf("toggle subtask: %v", err)
	}
	tripTask, _ = svc.Get(trip.ID)
	if got := SubtaskPercent(tripTask); got != 50 {
		t.Errorf("subtask percent = %d, want 50", got)
	}
	if got := CollectionPercent(svc.List(FilterAll)); got != 50 {
		t.Errorf("collection percent must be unchanged by subtask toggle, got %d", got)
	}
}

func TestService_SubscribersNotifiedOnMutation(t *testing.T) {
	svc, _ := newTestService(t)

	var notifications [][]models.Task
	svc.Subscribe(func(tasks []models.Task) {
		notifications = append(notifications, tasks)
	})

	created, err := svc.Create("Buy milk", "", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.ToggleComplete(created.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	// A no-op mutation must not notify.
	if err := svc.Delete("missing"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(notifications) != 2 {
		t.Fatalf("got %d notifications, want 2", len(notifications))
	}
	if !notifications[1][0].Completed {
		t.Error("second notification should carry the toggled state")
	}
}
