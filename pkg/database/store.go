package database

import (
	"context"
	"time"

	"smart_learning_path/internal/config"
	"smart_learning_path/internal/repository"

	"go.uber.org/zap"
)

const connectTimeout = 5 * time.Second

// OpenLearningPathStore opens the configured backend. When it cannot be
// reached the in-memory store is returned instead, so the service still
// starts. The returned func releases backend resources.
func OpenLearningPathStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.LearningPathStore, func()) {
	store, closeFn, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Warn("learning path store unavailable, falling back to in-memory store",
			zap.String("driver", cfg.Store.Driver),
			zap.Error(err),
		)
		return repository.NewMemoryLearningPathStore(log), func() {}
	}

	log.Info("learning path store ready", zap.String("mode", store.Mode()))
	return store, closeFn
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.LearningPathStore, func(), error) {
	switch {
	case cfg.Store.Driver == config.StoreMemory:
		return repository.NewMemoryLearningPathStore(log), func() {}, nil

	case cfg.Store.Driver == config.StoreMinio:
		ctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		client, err := InitMinio(ctx, &cfg.Storage)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewObjectLearningPathStore(client, cfg.Storage.MinioBucket, log), func() {}, nil

	case IsSQLDriver(cfg.Store.Driver):
		db, err := InitDB(&cfg.Store, cfg.Server.Mode == "debug")
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := CloseDB(db); err != nil {
				log.Warn("closing database", zap.Error(err))
			}
		}
		return repository.NewGormLearningPathStore(db, log), closeFn, nil
	}

	return repository.NewMemoryLearningPathStore(log), func() {}, nil
}

// Migrate prepares the configured backend (table or bucket) and returns.
func Migrate(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	switch {
	case IsSQLDriver(cfg.Store.Driver):
		db, err := InitDB(&cfg.Store, cfg.Server.Mode == "debug")
		if err != nil {
			return err
		}
		return CloseDB(db)
	case cfg.Store.Driver == config.StoreMinio:
		ctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		_, err := InitMinio(ctx, &cfg.Storage)
		return err
	}

	log.Info("nothing to migrate for store driver", zap.String("driver", cfg.Store.Driver))
	return nil
}
