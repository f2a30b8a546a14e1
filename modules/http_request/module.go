// Package http_request provides the built-in operation that performs an
// HTTP request and deposits the response into the context store for
// downstream linked calls.
package http_request

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vk/oplinkgo/internal/ctxlog"
	"github.com/vk/oplinkgo/internal/op"
	"github.com/vk/oplinkgo/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package. A nil
// Client selects a default with a conservative timeout; tests inject their
// own.
type Module struct {
	Client *http.Client
}

// Register registers the operation definition with the registry.
func (m *Module) Register(r *registry.Registry) error {
	client := m.Client
	if client == nil {
		client = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return r.Register(&op.Definition{
		ID:          "http_request",
		Description: "Performs an HTTP request and stores the response under a context key.",
		Params: []op.ParameterSpec{
			{Name: "url", Type: cty.String, Description: "Request URL.", Required: true},
			{Name: "method", Type: cty.String, Description: "HTTP method.", Required: false, Default: defaultMethod()},
			{Name: "store_as", Type: cty.String, Description: "Context key for the response object.", Required: false},
		},
		Run: func(ctx context.Context, caps *op.Capabilities, call *op.Call, params op.ResolvedParams) (cty.Value, error) {
			return run(ctx, client, caps, params)
		},
	})
}

func defaultMethod() *cty.Value {
	v := cty.StringVal(http.MethodGet)
	return &v
}

// run executes the request and returns an object value with the status
// code and body. When store_as is set, the same object is written to the
// context store.
func run(ctx context.Context, client *http.Client, caps *op.Capabilities, params op.ResolvedParams) (cty.Value, error) {
	url := params.String("url")
	method := params.String("method")

	logger := ctxlog.FromContext(ctx).With("op", "http_request", "method", method, "url", url)
	logger.Info("Making HTTP request")

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	logger.Info("Received HTTP response", "status", resp.Status)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to read response body: %w", err)
	}

	result := cty.ObjectVal(map[string]cty.Value{
		"status_code": cty.NumberIntVal(int64(resp.StatusCode)),
		"body":        cty.StringVal(string(bodyBytes)),
	})

	if storeAs := params.String("store_as"); storeAs != "" {
		if err := caps.Contexts.Set(ctx, storeAs, result); err != nil {
			return cty.NilVal, err
		}
	}

	return result, nil
}
