package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(AnthropicOptions{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return p
}

func anthropicMessage(blocks ...map[string]any) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     blocks,
		"model":       "claude-sonnet-4-20250514",
		"stop_reason": "end_turn",
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	var body map[string]any
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(
			map[string]any{"type": "text", "text": `{"questions":`},
			map[string]any{"type": "text", "text": `[]}`},
		))
	})

	text, err := p.Complete(context.Background(), "make a quiz", 2000)
	require.NoError(t, err)
	assert.Equal(t, `{"questions":[]}`, text)
	assert.Equal(t, float64(2000), body["max_tokens"])
	assert.Equal(t, defaultAnthropicModel, body["model"])
}

func TestAnthropicProvider_NoTextBlock(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage())
	})

	_, err := p.Complete(context.Background(), "x", 100)
	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "anthropic", pe.Provider)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestAnthropicProvider_ErrorIsNotRetried(t *testing.T) {
	calls := 0
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "overloaded_error", "message": "Overloaded"},
		})
	})

	_, err := p.Complete(context.Background(), "x", 100)
	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, calls)
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, defaultAnthropicModel, resolveModel("", anthropicModels, defaultAnthropicModel))
	assert.Equal(t, "claude-haiku-4-5-20251001", resolveModel("claude-haiku", anthropicModels, defaultAnthropicModel))
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels, defaultGeminiModel))
	assert.Equal(t, "my-custom-model", resolveModel("my-custom-model", openaiModels, defaultOpenAIModel))
}
