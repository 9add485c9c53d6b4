package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"zendo/prompts"
	"zendo/types"
)

// DefaultOllamaURL is used when no base URL is configured for Ollama.
const DefaultOllamaURL = "http://localhost:11434"

// EinoProvider adapts any Eino chat model to the breakdown interface.
// These backends cannot enforce a response schema, so the prompt carries
// the format rules and the response is parsed tolerantly.
type EinoProvider struct {
	chatModel model.BaseChatModel
	debug     bool
}

// NewEinoChatModel builds an Eino chat model for the configured backend.
func NewEinoChatModel(ctx context.Context, cfg *types.LLMConfig) (model.BaseChatModel, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	switch provider {
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			Model:  cfg.ModelName,
			APIKey: cfg.APIKey,
		})

	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultOllamaURL
		}
		return ollama.NewChatModel(ctx, &ollama.ChatModelConfig{
			BaseURL: baseURL,
			Model:   cfg.ModelName,
		})

	case "claude":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("claude API key is required")
		}
		return claude.NewChatModel(ctx, &claude.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.ModelName,
		})

	default:
		return nil, fmt.Errorf("unsupported chat backend: %s", cfg.Provider)
	}
}

// NewEinoProvider wraps a chat model as a Provider.
func NewEinoProvider(chatModel model.BaseChatModel, debug bool) *EinoProvider {
	return &EinoProvider{chatModel: chatModel, debug: debug}
}

func (p *EinoProvider) BreakdownTask(ctx context.Context, input string) (types.BreakdownOutput, error) {
	systemPrompt, err := prompts.GetPrompt(prompts.KeyBreakdownSystem, "")
	if err != nil {
		return types.BreakdownOutput{}, err
	}
	userPrompt, err := prompts.GetPrompt(prompts.KeyBreakdownUser, "")
	if err != nil {
		return types.BreakdownOutput{}, err
	}

	resp, err := p.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(fmt.Sprintf(userPrompt, input)),
	})
	if err != nil {
		return types.BreakdownOutput{}, fmt.Errorf("chat model generate: %w", err)
	}

	if p.debug {
		fmt.Fprintf(os.Stderr, "[llm] chat response: %s\n", resp.Content)
	}

	out, ok := tryExtractBreakdownJSON(resp.Content)
	if !ok {
		return types.BreakdownOutput{}, fmt.Errorf("no breakdown JSON found in model response")
	}
	return out, nil
}

// tryExtractBreakdownJSON parses a JSON object from the given string. It
// supports the entire string being JSON or a substring between the first
// '{' and last '}', which covers models that wrap output in prose or
// Markdown fences.
func tryExtractBreakdownJSON(s string) (types.BreakdownOutput, bool) {
	var out types.BreakdownOutput
	ss := strings.TrimSpace(s)
	if strings.HasPrefix(ss, "{") && strings.HasSuffix(ss, "}") {
		if err := json.Unmarshal([]byte(ss), &out); err == nil {
			return out, true
		}
	}
	start := strings.Index(ss, "{")
	end := strings.LastIndex(ss, "}")
	if start >= 0 && end > start {
		sub := ss[start : end+1]
		if err := json.Unmarshal([]byte(sub), &out); err == nil {
			return out, true
		}
	}
	return types.BreakdownOutput{}, false
}
