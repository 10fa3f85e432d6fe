package database

import (
	"context"
	"errors"
	"time"

	"smart_learning_path/internal/config"
	"smart_learning_path/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var ErrRedisNotConfigured = errors.New("redis url not configured")

func InitRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, ErrRedisNotConfigured
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	opts.PoolSize = 50
	opts.MinIdleConns = 5

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	logger.Log.Info("Redis connection established", zap.String("addr", opts.Addr))
	return rdb, nil
}
