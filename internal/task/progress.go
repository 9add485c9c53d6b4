package task

import (
	"math"

	"zendo/models"
)

// percent computes round(100*completed/total) with half rounded away from
// zero (math.Round), and 0 when total is 0. The rule matches JavaScript's
// Math.round for the non-negative ratios that occur here.
func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// CollectionPercent is the completion percentage across the whole
// collection: round(100*k/n) for k completed of n tasks, 0 for an empty
// collection.
func CollectionPercent(tasks []models.Task) int {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return percent(completed, len(tasks))
}

// SubtaskPercent is the completion percentage of a task's own subtasks,
// 0 when it has none.
func SubtaskPercent(t models.Task) int {
	completed := 0
	for _, st := range t.Subtasks {
		if st.Completed {
			completed++
		}
	}
	return percent(completed, len(t.Subtasks))
}
