// Package contextstore defines the interface for the shared key-value
// context store that operation calls read from and write to.
//
// The store is shared mutable state outside the engine's control: values
// may be written by operation implementations or by the embedding host at
// any time. The resolver therefore re-reads the store on every resolution
// and never caches a value across calls.
package contextstore

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Store is the key-value lookup and write capability consumed by the
// resolver and exposed to operation implementations.
//
// Implementations must be safe for concurrent use: an implementation may
// write a key while a later call's resolution is reading it.
type Store interface {
	// Get returns the value currently stored under key. The second return
	// value reports whether the key was present; a missing key is not an
	// error, it simply resolves to an unknown value downstream.
	Get(ctx context.Context, key string) (cty.Value, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value cty.Value) error
}
