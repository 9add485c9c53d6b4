package llm

import (
	"context"

	"zendo/types"
)

// Provider defines the interface for asking an AI model to turn a rough
// task description into a refined, actionable breakdown.
type Provider interface {
	// BreakdownTask sends the user's raw input to the model and returns the
	// structured breakdown. Implementations make exactly one attempt; retry
	// and fallback policy live in the Client.
	BreakdownTask(ctx context.Context, input string) (types.BreakdownOutput, error)
}
