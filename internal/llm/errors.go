package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyCompletion is wrapped by ProviderError when the upstream envelope
// carries no usable text.
var ErrEmptyCompletion = errors.New("empty completion")

// ProviderError indicates the upstream model call failed, timed out or
// returned an unusable envelope.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// MalformedResponseError indicates the model output is not parseable as JSON.
// Raw keeps the original text for diagnostics.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse model response as JSON: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// SchemaMismatchError indicates parsed JSON lacks the shape required to build
// a typed result.
type SchemaMismatchError struct {
	Schema string
	Err    error
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("model response does not match %s: %v", e.Schema, e.Err)
}

func (e *SchemaMismatchError) Unwrap() error { return e.Err }
