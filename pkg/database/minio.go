package database

import (
	"context"
	"errors"

	"smart_learning_path/internal/config"
	"smart_learning_path/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// InitMinio connects to the object store and makes sure the bucket exists.
func InitMinio(ctx context.Context, cfg *config.StorageConfig) (*minio.Client, error) {
	if cfg.MinioEndpoint == "" {
		return nil, errors.New("storage.minio_endpoint is required for the minio store")
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		logger.Log.Info("Created bucket", zap.String("bucket", cfg.MinioBucket))
	}

	logger.Log.Info("MinIO connection established", zap.String("endpoint", cfg.MinioEndpoint))
	return client, nil
}
