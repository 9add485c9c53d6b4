package task

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"zendo/models"
	"zendo/store"
)

// Service owns the in-memory task collection and is the single writer to
// the persistence layer. Every mutation rewrites the whole collection
// through the store and then notifies subscribers; mutations on unknown
// IDs are silent no-ops by contract.
//
// All methods are safe for concurrent use; the mutex serializes mutations
// so the HTTP and MCP surfaces share one logical writer.
type Service struct {
	mu          sync.Mutex
	store       store.TaskStore
	tasks       []models.Task
	subscribers []func([]models.Task)
}

// NewService loads the persisted collection and returns a service bound to
// the given store.
func NewService(taskStore store.TaskStore) (*Service, error) {
	list, err := taskStore.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return &Service{store: taskStore, tasks: list.Tasks}, nil
}

// Subscribe registers fn to be called with a snapshot of the collection
// after every successful mutation.
func (s *Service) Subscribe(fn func([]models.Task)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Create prepends a new task to the collection. Priority defaults to
// Medium; each subtask text becomes a subtask with a fresh ID. Text must
// be non-empty.
func (s *Service) Create(text string, priority models.Priority, subtaskTexts []string) (models.Task, error) {
	if strings.TrimSpace(text) == "" {
		return models.Task{}, fmt.Errorf("task text cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.NewTask(text, priority, subtaskTexts)
	if err := models.ValidateStruct(t); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}

	// Newest first.
	updated := append([]models.Task{t}, s.tasks...)
	if err := s.persist(updated); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// ToggleComplete flips the completion state of the named task, keeping the
// CompletedAt invariant: set on false→true, cleared on true→false. Unknown
// IDs are a no-op.
func (s *Service) ToggleComplete(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := cloneTasks(s.tasks)
	found := false
	for i := range updated {
		if updated[i].ID != taskID {
			continue
		}
		updated[i].Completed = !updated[i].Completed
		if updated[i].Completed {
			now := time.Now().UTC()
			updated[i].CompletedAt = &now
		} else {
			updated[i].CompletedAt = nil
		}
		found = true
		break
	}
	if !found {
		return nil
	}
	return s.persist(updated)
}

// Delete removes the named task and, with it, all its subtasks. Unknown
// IDs are a no-op; deletion is permanent.
func (s *Service) Delete(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.Task, 0, len(s.tasks))
	found := false
	for _, t := range s.tasks {
		if t.ID == taskID {
			found = true
			continue
		}
		updated = append(updated, t)
	}
	if !found {
		return nil
	}
	return s.persist(updated)
}

// ToggleSubtask flips the completion state of one subtask. Completing every
// subtask does not complete the parent; parent completion stays
// user-driven. Unknown task or subtask IDs are a no-op.
func (s *Service) ToggleSubtask(taskID, subtaskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := cloneTasks(s.tasks)
	found := false
	for i := range updated {
		if updated[i].ID != taskID {
			continue
		}
		for j := range updated[i].Subtasks {
			if updated[i].Subtasks[j].ID == subtaskID {
				updated[i].Subtasks[j].Completed = !updated[i].Subtasks[j].Completed
				found = true
				break
			}
		}
		break
	}
	if !found {
		return nil
	}
	return s.persist(updated)
}

// List returns the tasks matching the filter, in display order.
func (s *Service) List(filter Filter) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Project(s.tasks, filter)
}

// Get returns the task with the given ID, or false when absent.
func (s *Service) Get(taskID string) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == taskID {
			return t, true
		}
	}
	return models.Task{}, false
}

// Reload replaces the in-memory collection with the persisted one. Used by
// watch mode when another process rewrites the data file.
func (s *Service) Reload() error {
	list, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("reload tasks: %w", err)
	}
	s.mu.Lock()
	s.tasks = list.Tasks
	snapshot := cloneTasks(s.tasks)
	subs := s.subscribers
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snapshot)
	}
	return nil
}

// persist writes the candidate collection through the store; only on
// success does it become the in-memory state. Caller must hold s.mu.
func (s *Service) persist(updated []models.Task) error {
	err := s.store.Save(models.TaskList{
		SchemaVersion: models.CurrentSchemaVersion,
		Tasks:         updated,
	})
	if err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	s.tasks = updated

	snapshot := cloneTasks(updated)
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
	return nil
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].Subtasks != nil {
			subs := make([]models.SubTask, len(out[i].Subtasks))
			copy(subs, out[i].Subtasks)
			out[i].Subtasks = subs
		}
	}
	return out
}
