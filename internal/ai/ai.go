// Package ai generates experience descriptions and cover letters, either with
// a hosted LLM or with built-in templates when no provider is configured.
package ai

import (
	"context"
	"errors"
	"fmt"

	"resumeapi/internal/config"
)

var ErrEmptyResponse = errors.New("no content in model response")

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGenerator builds the generator for the configured provider. It returns a
// nil Generator for provider "none".
func NewGenerator(ctx context.Context, c config.AIConfig) (Generator, error) {
	switch c.Provider {
	case "", "none":
		return nil, nil
	case "openai":
		return NewOpenAI(c.BaseURL, c.APIKey, c.Model), nil
	case "gemini":
		g, err := NewGemini(ctx, c.APIKey, c.Model)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, fmt.Errorf("unsupported AI provider %q", c.Provider)
}
