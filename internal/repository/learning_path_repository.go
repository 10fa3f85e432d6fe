package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"smart_learning_path/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("learning path not found")
	ErrInvalidRecord = errors.New("invalid learning path record")
)

// StoreError wraps a failure from a reachable backend.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("learning path store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// LearningPathStore persists generated learning paths.
type LearningPathStore interface {
	// Create stores p under a newly generated id and returns it. p is not modified.
	Create(ctx context.Context, p *model.LearningPath) (string, error)
	// Get returns ErrNotFound when id is unknown.
	Get(ctx context.Context, id string) (*model.LearningPath, error)
	// List returns at most limit paths in insertion order.
	List(ctx context.Context, limit int) ([]model.LearningPath, error)
	// Delete reports whether something was removed.
	Delete(ctx context.Context, id string) (bool, error)
	// Mode names the backend, e.g. "sqlite" or "memory".
	Mode() string
}

var validate = validator.New()

// newID returns a time-ordered identifier, so lexical order is insertion order.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// encodeDocument validates p and serializes it under id.
func encodeDocument(id string, p *model.LearningPath) ([]byte, error) {
	if p == nil {
		return nil, ErrInvalidRecord
	}
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	doc := *p
	doc.ID = id
	return json.Marshal(doc)
}

// decodeDocument is the read side of the schema boundary: anything that does
// not deserialize and validate into the current shape is ErrInvalidRecord.
func decodeDocument(id string, data []byte) (*model.LearningPath, error) {
	var p model.LearningPath
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	p.ID = id
	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return &p, nil
}
