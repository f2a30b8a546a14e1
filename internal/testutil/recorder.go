package testutil

import (
	"context"
	"sync"

	"github.com/vk/oplinkgo/internal/op"
	"github.com/vk/oplinkgo/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Recorder is a test operation module that records the resolved parameters
// of every invocation. It registers under the given id with the given
// schema and returns Result from each run.
type Recorder struct {
	ID     string
	Params []op.ParameterSpec
	Result cty.Value

	mu    sync.Mutex
	seen  []op.ResolvedParams
	count int
}

// Register registers the recorder's definition with the registry.
func (rec *Recorder) Register(r *registry.Registry) error {
	return r.Register(&op.Definition{
		ID:          rec.ID,
		Description: "Test operation that records its resolved parameters.",
		Params:      rec.Params,
		Run: func(ctx context.Context, caps *op.Capabilities, call *op.Call, params op.ResolvedParams) (cty.Value, error) {
			rec.mu.Lock()
			defer rec.mu.Unlock()
			rec.seen = append(rec.seen, params)
			rec.count++
			return rec.Result, nil
		},
	})
}

// Invocations returns how many times the operation ran.
func (rec *Recorder) Invocations() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.count
}

// Seen returns the recorded parameter maps in invocation order.
func (rec *Recorder) Seen() []op.ResolvedParams {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]op.ResolvedParams, len(rec.seen))
	copy(out, rec.seen)
	return out
}

// Last returns the most recently recorded parameter map, or nil.
func (rec *Recorder) Last() op.ResolvedParams {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.seen) == 0 {
		return nil
	}
	return rec.seen[len(rec.seen)-1]
}
