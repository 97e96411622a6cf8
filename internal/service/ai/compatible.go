package ai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// CompatibleProvider implements Provider for OpenAI-compatible APIs.
// This supports services like OpenRouter, Azure OpenAI, Ollama, etc.
type CompatibleProvider struct {
	client openai.Client
	model  string
}

// NewCompatibleProvider creates a new OpenAI-compatible provider.
func NewCompatibleProvider(apiKey, baseURL, model string) (*CompatibleProvider, error) {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &CompatibleProvider{
		client: client,
		model:  model,
	}, nil
}

// Name returns the provider name.
func (p *CompatibleProvider) Name() string {
	return ProviderCompatible
}

// Complete generates a response without streaming.
func (p *CompatibleProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	// Reasoning output is not wanted for short summaries and translations.
	opts := []option.RequestOption{
		option.WithJSONSet("reasoning", map[string]interface{}{
			"enabled": false,
		}),
	}

	resp, err := p.client.Chat.Completions.New(ctx, chatParams(p.model, systemPrompt, content), opts...)
	if err != nil {
		return "", err
	}
	return firstChoice(resp)
}

var _ Provider = (*CompatibleProvider)(nil)
var _ Provider = (*OpenAIProvider)(nil)
