package configwatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"smart_learning_path/internal/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatchConfigReloads(t *testing.T) {
	debounce = 50 * time.Millisecond
	t.Cleanup(func() { debounce = time.Second })

	dir := t.TempDir()
	file := filepath.Join(dir, configFile)
	require.NoError(t, os.WriteFile(file, []byte("llm:\n  max_tokens: 1000\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	reloaded := make(chan *config.Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, dir, zap.NewNop(), func(cfg *config.Config) { reloaded <- cfg })
	}()

	// 等待监听建立
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(file, []byte("llm:\n  max_tokens: 1500\n"), 0o644))

	select {
	case cfg := <-reloaded:
		require.Equal(t, 1500, cfg.LLM.MaxTokens)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	err := WatchConfig(context.Background(), filepath.Join(t.TempDir(), "missing"), zap.NewNop(), func(*config.Config) {})
	require.Error(t, err)
}
