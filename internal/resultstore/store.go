// Package resultstore defines the interface for recording the most recent
// result of each executed operation call.
//
// The engine writes a call's result here after every successful run. The
// resolver consults the store when a parameter is linked to another call's
// result: if the target call has not produced a result yet, resolution
// fails rather than silently passing a null through.
package resultstore

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Store maps call ids to the last result each call produced.
//
// Only the latest result is retained per call id; re-running a call
// overwrites its previous entry. Implementations must be safe for
// concurrent use.
type Store interface {
	// SetResult records the result of a successful call, replacing any
	// earlier result for the same call id.
	SetResult(ctx context.Context, callID string, result cty.Value) error

	// GetResult returns the recorded result for a call id. The second
	// return value reports whether any result has been recorded.
	GetResult(ctx context.Context, callID string) (cty.Value, bool, error)
}
