package types

// BreakdownOutput is the expected structure of an AI task breakdown.
// The fields map directly onto a new models.Task.
type BreakdownOutput struct {
	RefinedTitle string   `json:"refinedTitle"`
	Priority     string   `json:"priority"` // "Low", "Medium" or "High"
	Subtasks     []string `json:"subtasks,omitempty"`
}
