// Package inmemorystore provides ephemeral, thread-safe, in-memory
// implementations of the contextstore.Store and resultstore.Store
// interfaces. It is suitable for the CLI app, development, and testing;
// any scenario where values do not need to outlive the process.
//
// Both stores use sync.Map: the key space is relatively stable while
// values change frequently, and independent keys allow fine-grained
// concurrent access without a global lock.
package inmemorystore

import (
	"context"
	"sync"

	"github.com/vk/oplinkgo/internal/contextstore"
	"github.com/vk/oplinkgo/internal/resultstore"
	"github.com/zclconf/go-cty/cty"
)

// Store is an in-memory implementation of contextstore.Store.
type Store struct {
	values sync.Map // Key: context key string, Value: cty.Value
}

// New creates a new, empty in-memory context store.
func New() contextstore.Store {
	return &Store{}
}

// Get returns the value currently stored under key.
func (s *Store) Get(ctx context.Context, key string) (cty.Value, bool, error) {
	v, ok := s.values.Load(key)
	if !ok {
		return cty.NilVal, false, nil
	}
	return v.(cty.Value), true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value cty.Value) error {
	s.values.Store(key, value)
	return nil
}

// Results is an in-memory implementation of resultstore.Store.
type Results struct {
	results sync.Map // Key: call id string, Value: cty.Value
}

// NewResults creates a new, empty in-memory result store.
func NewResults() resultstore.Store {
	return &Results{}
}

// SetResult records the latest result of a call.
func (r *Results) SetResult(ctx context.Context, callID string, result cty.Value) error {
	r.results.Store(callID, result)
	return nil
}

// GetResult retrieves the recorded result of a call.
func (r *Results) GetResult(ctx context.Context, callID string) (cty.Value, bool, error) {
	v, ok := r.results.Load(callID)
	if !ok {
		return cty.NilVal, false, nil
	}
	return v.(cty.Value), true, nil
}
