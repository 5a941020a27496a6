// Package llm adapts the Gemini SDK to the single completion call the
// translation service performs.
package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Gemini issues completion requests against a fixed Gemini model.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini adapter authenticated with apiKey. Returns an
// unconfigured adapter (nil, nil) when apiKey is empty so callers can keep
// serving the rest of the API.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Complete sends prompt as a single-turn request and returns the reply text.
// The model is pinned to JSON output with a low temperature so translations
// stay deterministic and machine-parseable.
func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.1),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("llm: generate content: %w", err)
	}
	return resp.Text(), nil
}
