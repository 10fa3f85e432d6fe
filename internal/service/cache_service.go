package service

import (
	"context"
	"errors"
	"time"

	"smart_learning_path/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheStatus is the outcome of a cache lookup.
type CacheStatus string

const (
	CacheHit         CacheStatus = "hit"
	CacheMiss        CacheStatus = "miss"
	CacheUnavailable CacheStatus = "unavailable"
)

// CacheBackend is the subset of *redis.Client the cache needs.
type CacheBackend interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CacheService is a best-effort key/value cache. Every failure is logged
// and swallowed; callers only see CacheStatus.
type CacheService struct {
	backend CacheBackend
	log     *zap.Logger
}

// NewCacheService returns a cache over backend. A nil backend disables caching.
func NewCacheService(backend CacheBackend, log *zap.Logger) *CacheService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CacheService{backend: backend, log: log}
}

func (s *CacheService) Enabled() bool {
	return s != nil && s.backend != nil
}

// Status reports "enabled" or "disabled" for the health endpoint.
func (s *CacheService) Status() string {
	if s.Enabled() {
		return "enabled"
	}
	return "disabled"
}

func (s *CacheService) Get(ctx context.Context, key string) ([]byte, CacheStatus) {
	if !s.Enabled() {
		return nil, CacheUnavailable
	}

	val, err := s.backend.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		monitoring.CacheLookupCounter.WithLabelValues(string(CacheMiss)).Inc()
		return nil, CacheMiss
	case err != nil:
		s.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		monitoring.CacheLookupCounter.WithLabelValues(string(CacheUnavailable)).Inc()
		return nil, CacheUnavailable
	}

	monitoring.CacheLookupCounter.WithLabelValues(string(CacheHit)).Inc()
	return val, CacheHit
}

func (s *CacheService) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if !s.Enabled() {
		return
	}
	if err := s.backend.Set(ctx, key, value, ttl).Err(); err != nil {
		s.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
		return
	}
	s.log.Debug("cached value", zap.String("key", key), zap.Duration("ttl", ttl))
}
