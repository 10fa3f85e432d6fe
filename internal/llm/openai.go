package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenAIModel     = "gpt-4o-mini"
	defaultCerebrasBaseURL = "https://api.cerebras.ai/v1"
	defaultCerebrasModel   = "llama-3.3-70b"
	defaultOpenRouterURL   = "https://openrouter.ai/api/v1"
	defaultOpenRouterModel = "google/gemini-2.0-flash-exp"
)

var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// OpenAIProvider talks to OpenAI or any OpenAI-compatible chat completions
// endpoint (Cerebras, OpenRouter, local gateways) selected through BaseURL.
type OpenAIProvider struct {
	client      *openai.Client
	name        string
	model       string
	temperature float64
}

// OpenAIOptions configures an OpenAIProvider.
type OpenAIOptions struct {
	Name        string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

func NewOpenAIProvider(opts OpenAIOptions) (*OpenAIProvider, error) {
	if opts.Name == "" {
		opts.Name = "openai"
	}
	if opts.APIKey == "" {
		return nil, fmt.Errorf("%s API key is required", opts.Name)
	}

	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(cfg),
		name:        opts.Name,
		model:       resolveModel(opts.Model, openaiModels, defaultOpenAIModel),
		temperature: opts.Temperature,
	}, nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: float32(p.temperature),
	})
	if err != nil {
		return "", &ProviderError{Provider: p.name, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: p.name, Err: fmt.Errorf("no choices in response: %w", ErrEmptyCompletion)}
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", &ProviderError{Provider: p.name, Err: ErrEmptyCompletion}
	}
	return text, nil
}

func (p *OpenAIProvider) Name() string { return p.name }
