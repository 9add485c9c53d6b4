package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"zendo/models"
	"zendo/types"
)

// MaxSubtasks caps how many steps a breakdown may carry.
const MaxSubtasks = 5

// Client wraps a Provider with the product's reliability rules: one
// attempt, a hard timeout, an offline short-circuit, and a deterministic
// fallback so task creation always succeeds.
type Client struct {
	provider Provider
	timeout  time.Duration
	online   func() bool
}

// NewClient builds a breakdown client. online may be nil, in which case
// connectivity is assumed.
func NewClient(provider Provider, timeout time.Duration, online func() bool) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{provider: provider, timeout: timeout, online: online}
}

// Fallback is the breakdown used whenever the model cannot be reached or
// returns garbage: the user's own words, Medium priority, no subtasks.
func Fallback(input string) types.BreakdownOutput {
	return types.BreakdownOutput{
		RefinedTitle: input,
		Priority:     string(models.PriorityMedium),
		Subtasks:     []string{},
	}
}

// Breakdown asks the provider to refine the input. Any provider failure
// degrades to the deterministic fallback; only an empty input is an error.
func (c *Client) Breakdown(ctx context.Context, input string) (types.BreakdownOutput, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.BreakdownOutput{}, fmt.Errorf("breakdown input cannot be empty")
	}

	if c.online != nil && !c.online() {
		return Fallback(input), nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.provider.BreakdownTask(ctx, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: AI breakdown failed, using your input as-is: %v\n", err)
		return Fallback(input), nil
	}
	return sanitize(out, input), nil
}

// sanitize normalizes a model response so downstream code never sees an
// empty title, an unknown priority, or more steps than the cap allows.
func sanitize(out types.BreakdownOutput, input string) types.BreakdownOutput {
	out.RefinedTitle = strings.TrimSpace(out.RefinedTitle)
	if out.RefinedTitle == "" {
		out.RefinedTitle = input
	}

	out.Priority = string(models.ParsePriority(out.Priority))

	cleaned := make([]string, 0, len(out.Subtasks))
	for _, st := range out.Subtasks {
		st = strings.TrimSpace(st)
		if st == "" {
			continue
		}
		cleaned = append(cleaned, st)
		if len(cleaned) == MaxSubtasks {
			break
		}
	}
	out.Subtasks = cleaned
	return out
}
