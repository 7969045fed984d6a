package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Config holds the configuration for the OpenAI-backed translator.
type Config struct {
	APIKey string
	APIURL string // optional override for OpenAI-compatible endpoints
	Model  string
}

// OpenAITranslator translates text through an OpenAI-compatible chat API.
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

// NewOpenAITranslator creates a translator backed by go-openai.
func NewOpenAITranslator(cfg Config) (*OpenAITranslator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.APIURL != "" {
		clientConfig.BaseURL = cfg.APIURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAITranslator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

// Translate translates a single subtitle text between the given languages.
func (t *OpenAITranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(
					"Translate the following subtitle text from %s to %s. Preserve line breaks. Respond with only the translation, nothing else.\n\n%s",
					sourceLang, targetLang, text),
			},
		},
		MaxTokens:   500,
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", &Error{Text: text, Cause: err}
	}

	if len(resp.Choices) == 0 {
		return "", &Error{Text: text, Cause: fmt.Errorf("no translation returned")}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
