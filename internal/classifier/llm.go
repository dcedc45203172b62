package classifier

import (
	"context"
	"fmt"
	"strings"

	"file-organizer-ai/internal/llm"
)

// ChatClient is the part of the LLM client the classifier needs.
type ChatClient interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

const systemPrompt = `You sort uploaded files into folders.
Reply with exactly one category name from this list and nothing else:
%s`

// LLMClassifier asks a chat model to pick a category for a filename. The
// trimmed reply is returned as-is; it is not checked against the category list.
type LLMClassifier struct {
	client     ChatClient
	categories []string
}

// NewLLMClassifier creates an LLMClassifier offering the given categories.
func NewLLMClassifier(client ChatClient, categories []string) *LLMClassifier {
	return &LLMClassifier{
		client:     client,
		categories: categories,
	}
}

// Classify implements service.Classifier.
func (c *LLMClassifier) Classify(ctx context.Context, filename string) (string, error) {
	messages := []llm.Message{
		{Role: "system", Content: fmt.Sprintf(systemPrompt, strings.Join(c.categories, "\n"))},
		{Role: "user", Content: filename},
	}

	reply, err := c.client.ChatWithMessages(ctx, messages, llm.ChatParams{MaxTokens: 16})
	if err != nil {
		return "", fmt.Errorf("failed to classify %q: %w", filename, err)
	}

	// Models like to wrap single words in quotes or add a trailing period.
	label := strings.Trim(strings.TrimSpace(reply), "\"'`.")
	if label == "" {
		return "", fmt.Errorf("empty classification for %q", filename)
	}
	return label, nil
}
