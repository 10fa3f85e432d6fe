package llm

import (
	"context"
	"fmt"

	"smart_learning_path/internal/config"

	"go.uber.org/zap"
)

// NewProvider builds the configured backend and wraps it:
// caller → instrumentation → timeout → backend.
func NewProvider(ctx context.Context, cfg config.LLMConfig, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(AnthropicOptions{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
		})
	case "openai":
		base, err = NewOpenAIProvider(OpenAIOptions{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
		})
	case "cerebras":
		base, err = NewOpenAIProvider(OpenAIOptions{
			Name:        "cerebras",
			APIKey:      cfg.APIKey,
			BaseURL:     orDefault(cfg.BaseURL, defaultCerebrasBaseURL),
			Model:       orDefault(cfg.Model, defaultCerebrasModel),
			Temperature: cfg.Temperature,
		})
	case "openrouter":
		base, err = NewOpenAIProvider(OpenAIOptions{
			Name:        "openrouter",
			APIKey:      cfg.APIKey,
			BaseURL:     orDefault(cfg.BaseURL, defaultOpenRouterURL),
			Model:       orDefault(cfg.Model, defaultOpenRouterModel),
			Temperature: cfg.Temperature,
		})
	case "gemini":
		base, err = NewGeminiProvider(ctx, GeminiOptions{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
		})
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithInstrumentation(WithTimeout(base, cfg.Timeout), log), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
