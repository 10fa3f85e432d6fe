package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "v1", cfg.Server.APIVersion)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, 4000, cfg.LLM.MaxTokens)
	assert.Equal(t, 2000, cfg.LLM.QuizMaxTokens)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Empty(t, cfg.Redis.URL)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9000"
llm:
  provider: openai
  max_tokens: 3000
store:
  driver: sqlite
cache:
  ttl: 10m
`)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("MAX_TOKENS", "5000")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-openai", cfg.LLM.APIKey)
	assert.Equal(t, 5000, cfg.LLM.MaxTokens)
	assert.Equal(t, StoreSQLite, cfg.Store.Driver)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"unknown driver":  "store:\n  driver: cassandra\n",
		"zero max tokens": "llm:\n  max_tokens: 0\n",
		"negative quiz":   "llm:\n  quiz_max_tokens: -1\n",
		"zero timeout":    "llm:\n  timeout: 0s\n",
		"zero cache ttl":  "cache:\n  ttl: 0s\n",
		"negative ttl":    "cache:\n  ttl: -5m\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "server: [unterminated\n"))
	assert.Error(t, err)
}

func TestProviderKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("CEREBRAS_API_KEY", "c-key")

	assert.Equal(t, "g-key", providerKeyFromEnv("gemini"))
	assert.Equal(t, "c-key", providerKeyFromEnv("cerebras"))
	assert.Empty(t, providerKeyFromEnv("mock"))
}
