package repository

import (
	"bytes"
	"context"
	"io"
	"strings"

	"smart_learning_path/internal/model"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const objectKeyPrefix = "learning-paths/"

// ObjectLearningPathStore keeps each learning path as one JSON object in a
// MinIO / S3 bucket.
type ObjectLearningPathStore struct {
	Client *minio.Client
	Bucket string
	log    *zap.Logger
}

func NewObjectLearningPathStore(client *minio.Client, bucket string, log *zap.Logger) *ObjectLearningPathStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &ObjectLearningPathStore{Client: client, Bucket: bucket, log: log}
}

func objectKey(id string) string {
	return objectKeyPrefix + id + ".json"
}

func idFromKey(key string) string {
	return strings.TrimSuffix(strings.TrimPrefix(key, objectKeyPrefix), ".json")
}

// validID keeps arbitrary path segments out of object keys.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

func (s *ObjectLearningPathStore) Create(ctx context.Context, p *model.LearningPath) (string, error) {
	id := newID()
	doc, err := encodeDocument(id, p)
	if err != nil {
		return "", &StoreError{Op: "create", Err: err}
	}

	_, err = s.Client.PutObject(ctx, s.Bucket, objectKey(id), bytes.NewReader(doc), int64(len(doc)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", &StoreError{Op: "create", Err: err}
	}
	return id, nil
}

func (s *ObjectLearningPathStore) read(ctx context.Context, id string) ([]byte, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, objectKey(id), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

func (s *ObjectLearningPathStore) Get(ctx context.Context, id string) (*model.LearningPath, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}

	data, err := s.read(ctx, id)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "get", Err: err}
	}

	p, err := decodeDocument(id, data)
	if err != nil {
		return nil, &StoreError{Op: "get", Err: err}
	}
	return p, nil
}

func (s *ObjectLearningPathStore) List(ctx context.Context, limit int) ([]model.LearningPath, error) {
	out := []model.LearningPath{}
	if limit <= 0 {
		return out, nil
	}

	// Cancelling stops the listing goroutine once we have enough.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	objects := s.Client.ListObjects(ctx, s.Bucket, minio.ListObjectsOptions{
		Prefix:    objectKeyPrefix,
		Recursive: true,
	})
	for info := range objects {
		if info.Err != nil {
			return nil, &StoreError{Op: "list", Err: info.Err}
		}
		id := idFromKey(info.Key)

		data, err := s.read(ctx, id)
		if err != nil {
			if isNoSuchKey(err) {
				continue
			}
			return nil, &StoreError{Op: "list", Err: err}
		}
		p, err := decodeDocument(id, data)
		if err != nil {
			s.log.Warn("skipping invalid learning path object", zap.String("key", info.Key), zap.Error(err))
			continue
		}

		out = append(out, *p)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *ObjectLearningPathStore) Delete(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}

	key := objectKey(id)
	if _, err := s.Client.StatObject(ctx, s.Bucket, key, minio.StatObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return false, nil
		}
		return false, &StoreError{Op: "delete", Err: err}
	}

	if err := s.Client.RemoveObject(ctx, s.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return false, &StoreError{Op: "delete", Err: err}
	}
	return true, nil
}

func (s *ObjectLearningPathStore) Mode() string { return "minio" }
