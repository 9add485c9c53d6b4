package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"google.golang.org/genai"

	"zendo/prompts"
	"zendo/types"
)

// GeminiProvider talks to the Gemini API with a response schema so the
// model is forced to emit the breakdown JSON directly.
type GeminiProvider struct {
	apiKey      string
	modelName   string
	temperature float64
	debug       bool
}

// NewGeminiProvider creates a provider bound to one model.
func NewGeminiProvider(apiKey, modelName string, temperature float64, debug bool) *GeminiProvider {
	return &GeminiProvider{
		apiKey:      apiKey,
		modelName:   modelName,
		temperature: temperature,
		debug:       debug,
	}
}

// breakdownSchema constrains the response to the BreakdownOutput shape.
func breakdownSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"refinedTitle": {
				Type:        genai.TypeString,
				Description: "The task rewritten as one clear, actionable sentence.",
			},
			"priority": {
				Type: genai.TypeString,
				Enum: []string{"Low", "Medium", "High"},
			},
			"subtasks": {
				Type:     genai.TypeArray,
				Items:    &genai.Schema{Type: genai.TypeString},
				MaxItems: genai.Ptr[int64](5),
			},
		},
		Required: []string{"refinedTitle", "priority"},
	}
}

func (p *GeminiProvider) BreakdownTask(ctx context.Context, input string) (types.BreakdownOutput, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return types.BreakdownOutput{}, fmt.Errorf("create gemini client: %w", err)
	}

	systemPrompt, err := prompts.GetPrompt(prompts.KeyBreakdownSystem, "")
	if err != nil {
		return types.BreakdownOutput{}, err
	}
	userPrompt, err := prompts.GetPrompt(prompts.KeyBreakdownUser, "")
	if err != nil {
		return types.BreakdownOutput{}, err
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    breakdownSchema(),
		Temperature:       genai.Ptr(float32(p.temperature)),
	}

	resp, err := client.Models.GenerateContent(ctx, p.modelName, genai.Text(fmt.Sprintf(userPrompt, input)), cfg)
	if err != nil {
		return types.BreakdownOutput{}, fmt.Errorf("gemini generate content: %w", err)
	}

	text := resp.Text()
	if p.debug {
		fmt.Fprintf(os.Stderr, "[llm] gemini %s response: %s\n", p.modelName, text)
	}

	var out types.BreakdownOutput
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return types.BreakdownOutput{}, fmt.Errorf("parse gemini response: %w", err)
	}
	return out, nil
}
