package op

import (
	"context"

	"github.com/vk/oplinkgo/internal/contextstore"
)

// Capabilities bundles the host services an operation implementation may
// reach for. It is passed explicitly into Run rather than pulled from
// ambient context, keeping the engine host-agnostic. The engine itself
// never inspects its contents; it only hands it through.
type Capabilities struct {
	// Contexts is the shared key-value store. Implementations use it to
	// deposit values that later calls pick up through context-key links.
	Contexts contextstore.Store

	// Notify surfaces a message to the user. The CLI app backs it with
	// stdout; an embedding host may route it to a dialog or a log. May be
	// nil when the host offers no notification surface.
	Notify func(ctx context.Context, message string) error
}
