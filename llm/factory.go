package llm

import (
	"context"
	"fmt"
	"strings"

	"zendo/types"
)

// NewProvider is a factory function that returns a Provider based on the
// LLM configuration.
func NewProvider(ctx context.Context, config *types.LLMConfig) (Provider, error) {
	if config == nil {
		return nil, fmt.Errorf("LLM configuration cannot be nil")
	}

	provider := strings.ToLower(strings.TrimSpace(config.Provider))
	switch provider {
	case "gemini":
		if config.APIKey == "" {
			return nil, fmt.Errorf("gemini provider selected but API key is missing")
		}
		return NewGeminiProvider(config.APIKey, config.ModelName, config.Temperature, config.Debug), nil
	case "openai", "ollama", "claude":
		chatModel, err := NewEinoChatModel(ctx, config)
		if err != nil {
			return nil, err
		}
		return NewEinoProvider(chatModel, config.Debug), nil
	case "":
		return nil, fmt.Errorf("no LLM provider specified in configuration")
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", config.Provider)
	}
}
