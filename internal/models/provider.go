// Package models provides generation-service adapters. Every adapter
// consumes the conversation window in the wire shape and returns plain
// reply text.
package models

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrEmptyResponse marks a call that succeeded on the wire but carried no
// extractable text. Callers treat it as a soft failure.
var ErrEmptyResponse = errors.New("response contains no text")

// Generator produces a reply from the full conversation window.
type Generator interface {
	Name() string
	Generate(ctx context.Context, contents []*genai.Content) (string, error)
}

// ProviderConfig selects and configures a generation backend.
type ProviderConfig struct {
	Provider string // "gemini" or "openai"
	APIKey   string
	BaseURL  string // OpenAI-compatible endpoints only
	Model    string
	// SystemHead maps the reserved directive at index 0 to the system
	// message on chat-completions backends.
	SystemHead bool
}

// NewGenerator returns the configured backend adapter.
func NewGenerator(ctx context.Context, cfg ProviderConfig) (Generator, error) {
	switch cfg.Provider {
	case "gemini", "":
		return NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
	case "openai":
		return NewOpenAIGenerator(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.SystemHead)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}
