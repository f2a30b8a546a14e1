package http_request_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/oplinkgo/internal/inmemorystore"
	"github.com/vk/oplinkgo/internal/op"
	"github.com/vk/oplinkgo/internal/registry"
	"github.com/vk/oplinkgo/modules/http_request"
	"github.com/zclconf/go-cty/cty"
)

func TestHttpRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	}))
	defer server.Close()

	ctx := context.Background()
	reg := registry.New()
	require.NoError(t, (&http_request.Module{Client: server.Client()}).Register(reg))

	def, ok := reg.Get("http_request")
	require.True(t, ok)

	contexts := inmemorystore.New()
	caps := &op.Capabilities{Contexts: contexts}

	result, err := def.Run(ctx, caps, &op.Call{ID: "c1", OpID: "http_request"}, op.ResolvedParams{
		"url":      cty.StringVal(server.URL),
		"method":   cty.StringVal(http.MethodGet),
		"store_as": cty.StringVal("response"),
	})
	require.NoError(t, err)

	m := result.AsValueMap()
	assert.Equal(t, cty.NumberIntVal(http.StatusOK), m["status_code"])
	assert.Equal(t, cty.StringVal("pong"), m["body"])

	stored, found, err := contexts.Get(ctx, "response")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, result, stored)
}

func TestHttpRequest_SchemaDefaults(t *testing.T) {
	reg := registry.New()
	require.NoError(t, (&http_request.Module{}).Register(reg))

	def, ok := reg.Get("http_request")
	require.True(t, ok)

	method, ok := def.Param("method")
	require.True(t, ok)
	require.NotNil(t, method.Default)
	assert.Equal(t, cty.StringVal(http.MethodGet), *method.Default)

	// Omitting everything but the url validates cleanly.
	msg := reg.ValidateCall(&op.Call{
		ID:     "c1",
		OpID:   "http_request",
		Params: []op.Param{{Name: "url", Value: cty.StringVal("http://example.test")}},
	})
	assert.Empty(t, msg)
}

func TestHttpRequest_ConnectionError(t *testing.T) {
	ctx := context.Background()
	reg := registry.New()
	require.NoError(t, (&http_request.Module{}).Register(reg))

	def, _ := reg.Get("http_request")

	_, err := def.Run(ctx, &op.Capabilities{Contexts: inmemorystore.New()}, &op.Call{ID: "c1", OpID: "http_request"}, op.ResolvedParams{
		"url":    cty.StringVal("http://127.0.0.1:1"),
		"method": cty.StringVal(http.MethodGet),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute request")
}
