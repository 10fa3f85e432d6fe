package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis is an in-process CacheBackend.
type fakeRedis struct {
	mu     sync.Mutex
	data   map[string][]byte
	ttls   map[string]time.Duration
	sets   int
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, exp time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.sets++
	f.data[key] = value.([]byte)
	f.ttls[key] = exp
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) setCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

func TestCacheService(t *testing.T) {
	ctx := context.Background()
	backend := newFakeRedis()
	c := NewCacheService(backend, nil)
	assert.True(t, c.Enabled())
	assert.Equal(t, "enabled", c.Status())

	_, status := c.Get(ctx, "k")
	assert.Equal(t, CacheMiss, status)

	c.Set(ctx, "k", []byte("v"), time.Minute)
	assert.Equal(t, time.Minute, backend.ttls["k"])

	v, status := c.Get(ctx, "k")
	assert.Equal(t, CacheHit, status)
	assert.Equal(t, []byte("v"), v)
}

func TestCacheServiceDisabled(t *testing.T) {
	ctx := context.Background()
	c := NewCacheService(nil, nil)
	assert.False(t, c.Enabled())
	assert.Equal(t, "disabled", c.Status())

	c.Set(ctx, "k", []byte("v"), time.Minute)
	v, status := c.Get(ctx, "k")
	assert.Nil(t, v)
	assert.Equal(t, CacheUnavailable, status)
}

func TestCacheServiceSwallowsBackendErrors(t *testing.T) {
	ctx := context.Background()
	backend := newFakeRedis()
	backend.getErr = errors.New("connection refused")
	backend.setErr = errors.New("connection refused")
	c := NewCacheService(backend, nil)

	require.NotPanics(t, func() { c.Set(ctx, "k", []byte("v"), time.Minute) })

	_, status := c.Get(ctx, "k")
	assert.Equal(t, CacheUnavailable, status)
}
