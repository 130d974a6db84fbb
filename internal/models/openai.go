package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"google.golang.org/genai"
)

// OpenAIGenerator drives any OpenAI-compatible chat-completions backend
// (OpenAI itself, x.ai, OpenRouter) with the window mapped to messages.
type OpenAIGenerator struct {
	client     *openai.Client
	model      string
	systemHead bool
}

// NewOpenAIGenerator creates the client. An empty baseURL targets the
// OpenAI API; compatible backends pass their own endpoint.
func NewOpenAIGenerator(apiKey, baseURL, model string, systemHead bool) (*OpenAIGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)

	return &OpenAIGenerator{
		client:     &client,
		model:      model,
		systemHead: systemHead,
	}, nil
}

// Name identifies the backend.
func (g *OpenAIGenerator) Name() string {
	return "openai"
}

// Generate maps the window to chat messages and returns the first choice.
func (g *OpenAIGenerator) Generate(ctx context.Context, contents []*genai.Content) (string, error) {
	if g == nil || g.client == nil {
		return "", fmt.Errorf("openai generator not configured")
	}
	if len(contents) == 0 {
		return "", fmt.Errorf("contents cannot be empty")
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    g.model,
		Messages: contentsToMessages(contents, g.systemHead),
	})
	if err != nil {
		return "", fmt.Errorf("failed to call chat completions API: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", ErrEmptyResponse)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("openai: %w", ErrEmptyResponse)
	}
	return text, nil
}

// contentsToMessages converts wire contents to chat messages: user stays
// user, model becomes assistant, and with systemHead set the reserved
// head entry becomes the system message.
func contentsToMessages(contents []*genai.Content, systemHead bool) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(contents))
	for i, content := range contents {
		if content == nil {
			continue
		}
		text := joinParts(content)
		switch {
		case i == 0 && systemHead:
			messages = append(messages, openai.SystemMessage(text))
		case content.Role == "model":
			messages = append(messages, openai.AssistantMessage(text))
		default:
			messages = append(messages, openai.UserMessage(text))
		}
	}
	return messages
}

func joinParts(content *genai.Content) string {
	var sb strings.Builder
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

var _ Generator = (*OpenAIGenerator)(nil)
