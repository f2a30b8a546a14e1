// Package socketio_notify provides the built-in operation that delivers a
// resolved message to a remote socket.io endpoint. It is the remote
// counterpart of show_message for hosts that surface notifications on a
// separate channel.
package socketio_notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/vk/oplinkgo/internal/ctxlog"
	"github.com/vk/oplinkgo/internal/op"
	"github.com/vk/oplinkgo/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// run is the implementation of the 'socketio_notify' operation. It
// connects, emits the message, and reports delivery.
func run(ctx context.Context, caps *op.Capabilities, call *op.Call, params op.ResolvedParams) (cty.Value, error) {
	rawURL := params.String("url")
	namespace := params.String("namespace")
	event := params.String("event")
	text := params.String("text")

	logger := ctxlog.FromContext(ctx).With("op", "socketio_notify", "url", rawURL, "event", event)
	logger.Debug("Handler started")
	defer logger.Debug("Handler finished")

	var isConnected atomic.Bool

	timeout, err := time.ParseDuration(params.String("timeout"))
	if err != nil {
		logger.Warn("Failed to parse timeout, using default 10s", "inputTimeout", params.String("timeout"), "error", err)
		timeout = 10 * time.Second
	}

	done := make(chan error, 1)
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to parse URL: %w", err)
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)

	if params.Bool("insecure_skip_verify") {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Info("Successfully connected", "namespace", namespace, "sid", io.Id())
		io.Emit(event, text)
		done <- nil
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		done <- errs[0].(error)
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		if isConnected.Load() {
			return cty.NilVal, fmt.Errorf("timed out after connecting while emitting event %q", event)
		}
		return cty.NilVal, fmt.Errorf("timed out while waiting for initial connection")
	case err := <-done:
		if err != nil {
			return cty.NilVal, err
		}
		return cty.ObjectVal(map[string]cty.Value{
			"delivered": cty.True,
			"event":     cty.StringVal(event),
		}), nil
	}
}

// Register registers the operation definition with the registry.
func (m *Module) Register(r *registry.Registry) error {
	return r.Register(&op.Definition{
		ID:          "socketio_notify",
		Description: "Emits a message to a remote socket.io endpoint.",
		Params: []op.ParameterSpec{
			{Name: "url", Type: cty.String, Description: "Endpoint URL including path.", Required: true},
			{Name: "text", Type: cty.String, Description: "Message text, literal or linked.", Required: true},
			{Name: "namespace", Type: cty.String, Description: "Socket.io namespace.", Required: false, Default: strDefault("/")},
			{Name: "event", Type: cty.String, Description: "Event name to emit.", Required: false, Default: strDefault("notify")},
			{Name: "timeout", Type: cty.String, Description: "Connection/emit timeout.", Required: false, Default: strDefault("10s")},
			{Name: "insecure_skip_verify", Type: cty.Bool, Description: "Skip TLS certificate verification.", Required: false},
		},
		Run: run,
	})
}

func strDefault(s string) *cty.Value {
	v := cty.StringVal(s)
	return &v
}
