package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// TextBackend is the generation boundary: a prompt plus a schema description
// in, raw JSON out.
type TextBackend interface {
	GenerateJSON(ctx context.Context, prompt string, schemaHint string) ([]byte, error)
}

type GeminiBackend struct {
	client *genai.Client
	model  string
}

func NewGeminiBackend(apiKey, model string) (*GeminiBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiBackend{client: client, model: model}, nil
}

func (b *GeminiBackend) GenerateJSON(ctx context.Context, prompt string, schemaHint string) ([]byte, error) {
	full := fmt.Sprintf(`You are an educational content generator.
Output strictly valid JSON. No markdown fences.

Task: %s

Required JSON Structure:
%s
`, prompt, schemaHint)

	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(full), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini call failed: %w", err)
	}

	txt := cleanJSONResponse(resp.Text())
	if txt == "" {
		return nil, fmt.Errorf("gemini returned an empty response")
	}

	return []byte(txt), nil
}

// cleanJSONResponse removes markdown code fences from a model reply.
func cleanJSONResponse(resp string) string {
	resp = strings.TrimSpace(resp)
	resp = strings.TrimPrefix(resp, "```json")
	resp = strings.TrimPrefix(resp, "```")
	resp = strings.TrimSuffix(resp, "```")
	return strings.TrimSpace(resp)
}
