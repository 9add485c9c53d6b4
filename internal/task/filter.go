package task

import "zendo/models"

// Filter selects which slice of the collection a view shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter returns the Filter for s, defaulting to FilterAll for
// anything unrecognized.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterActive:
		return FilterActive
	case FilterCompleted:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Project returns the order-preserving subsequence of tasks matching the
// filter. Subtasks are never filtered or reordered; their visibility is a
// presentation concern.
func Project(tasks []models.Task, filter Filter) []models.Task {
	if filter == FilterAll {
		out := make([]models.Task, len(tasks))
		copy(out, tasks)
		return out
	}
	wantCompleted := filter == FilterCompleted
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed == wantCompleted {
			out = append(out, t)
		}
	}
	return out
}
