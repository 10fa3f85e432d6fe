package repository

import (
	"context"
	"sync"

	"smart_learning_path/internal/model"

	"go.uber.org/zap"
)

// MemoryLearningPathStore is the in-process fallback. Contents do not survive
// a restart.
type MemoryLearningPathStore struct {
	mu    sync.RWMutex
	docs  map[string][]byte
	order []string
	log   *zap.Logger
}

func NewMemoryLearningPathStore(log *zap.Logger) *MemoryLearningPathStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &MemoryLearningPathStore{
		docs: make(map[string][]byte),
		log:  log,
	}
}

func (s *MemoryLearningPathStore) Create(_ context.Context, p *model.LearningPath) (string, error) {
	id := newID()
	doc, err := encodeDocument(id, p)
	if err != nil {
		return "", &StoreError{Op: "create", Err: err}
	}

	s.mu.Lock()
	s.docs[id] = doc
	s.order = append(s.order, id)
	s.mu.Unlock()

	return id, nil
}

func (s *MemoryLearningPathStore) Get(_ context.Context, id string) (*model.LearningPath, error) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	p, err := decodeDocument(id, doc)
	if err != nil {
		return nil, &StoreError{Op: "get", Err: err}
	}
	return p, nil
}

func (s *MemoryLearningPathStore) List(_ context.Context, limit int) ([]model.LearningPath, error) {
	out := []model.LearningPath{}
	if limit <= 0 {
		return out, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if len(out) >= limit {
			break
		}
		p, err := decodeDocument(id, s.docs[id])
		if err != nil {
			s.log.Warn("skipping invalid learning path document", zap.String("id", id), zap.Error(err))
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *MemoryLearningPathStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return false, nil
	}
	delete(s.docs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (s *MemoryLearningPathStore) Mode() string { return "memory" }
