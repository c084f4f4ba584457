package narration

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/kuraken88/pdf2mp4/internal/logger"
)

const polishPrompt = `You are preparing a narration script for a text-to-speech engine.
Rewrite the page text below as a natural spoken script in the same language (%s).

Requirements:
- Keep all factual content; do not add commentary or introductions
- Spell out abbreviations, numbers and symbols the way a narrator would say them
- Drop page furniture such as headers, footers and page numbers
- Plain text only: no markdown, no lists, no headings

Page text:
---
%s
---`

type implPolisher struct {
	apiKey string
	model  string
	logger logger.Logger
}

// NewPolisher creates a Gemini-backed Polisher
func NewPolisher(apiKey, model string, log logger.Logger) Polisher {
	return &implPolisher{
		apiKey: apiKey,
		model:  model,
		logger: log,
	}
}

// Polish sends the built text to Gemini and returns the rewritten script.
func (p *implPolisher) Polish(ctx context.Context, text, lang string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	prompt := fmt.Sprintf(polishPrompt, lang, text)
	result, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var script string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				script += part.Text
			}
		}
		script = strings.TrimSpace(script)
		if script != "" {
			return script, nil
		}
	}

	return "", fmt.Errorf("empty response from Gemini")
}
