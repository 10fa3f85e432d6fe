package llm

import "context"

// Provider is the single contract every completion backend satisfies:
// one prompt in, one block of text out, within the given token budget.
type Provider interface {
	// Complete issues exactly one upstream call. Failures are returned as
	// *ProviderError; no retry is attempted.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)

	// Name identifies the backend in logs and metrics.
	Name() string
}

// resolveModel maps a friendly model name to a provider model ID.
// Unknown names pass through so direct model IDs keep working.
func resolveModel(name string, models map[string]string, fallback string) string {
	if name == "" {
		return fallback
	}
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
