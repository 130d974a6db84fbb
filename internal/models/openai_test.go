package models

import (
	"testing"

	"google.golang.org/genai"
)

func windowContents() []*genai.Content {
	return []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: "persona directive"}}},
		{Role: "user", Parts: []*genai.Part{{Text: "hi"}}},
		{Role: "model", Parts: []*genai.Part{{Text: "hello "}, {Text: "there"}}},
	}
}

func TestContentsToMessagesMapsRoles(t *testing.T) {
	messages := contentsToMessages(windowContents(), false)
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if messages[0].OfUser == nil || messages[1].OfUser == nil {
		t.Fatalf("user contents not mapped to user messages: %+v", messages)
	}
	if messages[2].OfAssistant == nil {
		t.Fatalf("model content not mapped to assistant message: %+v", messages[2])
	}
}

func TestContentsToMessagesSystemHead(t *testing.T) {
	messages := contentsToMessages(windowContents(), true)
	if messages[0].OfSystem == nil {
		t.Fatalf("directive head not mapped to system message: %+v", messages[0])
	}
	if messages[1].OfUser == nil {
		t.Fatalf("second content should stay a user message: %+v", messages[1])
	}
}

func TestJoinPartsConcatenates(t *testing.T) {
	content := &genai.Content{Parts: []*genai.Part{{Text: "hello "}, nil, {Text: "there"}}}
	if got := joinParts(content); got != "hello there" {
		t.Fatalf("unexpected join: %q", got)
	}
}

func TestExtractTextScansCandidates(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: ""}}}},
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "  found it  "}}}},
		},
	}
	if got := extractText(resp); got != "found it" {
		t.Fatalf("unexpected extraction: %q", got)
	}
	if extractText(nil) != "" {
		t.Fatalf("expected empty text for nil response")
	}
	if extractText(&genai.GenerateContentResponse{}) != "" {
		t.Fatalf("expected empty text for empty response")
	}
}

func TestNewGeneratorRejectsUnknownProvider(t *testing.T) {
	if _, err := NewGenerator(t.Context(), ProviderConfig{Provider: "mystery", APIKey: "k", Model: "m"}); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestNewOpenAIGeneratorValidatesInput(t *testing.T) {
	if _, err := NewOpenAIGenerator("", "", "model", false); err == nil {
		t.Fatalf("expected error for missing API key")
	}
	if _, err := NewOpenAIGenerator("key", "", "", false); err == nil {
		t.Fatalf("expected error for missing model")
	}
}
