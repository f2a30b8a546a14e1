package set_context_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/oplinkgo/internal/inmemorystore"
	"github.com/vk/oplinkgo/internal/op"
	"github.com/vk/oplinkgo/internal/registry"
	"github.com/vk/oplinkgo/modules/set_context"
	"github.com/zclconf/go-cty/cty"
)

func TestSetContext(t *testing.T) {
	ctx := context.Background()
	reg := registry.New()
	require.NoError(t, (&set_context.Module{}).Register(reg))

	def, ok := reg.Get("set_context")
	require.True(t, ok)

	contexts := inmemorystore.New()
	caps := &op.Capabilities{Contexts: contexts}

	result, err := def.Run(ctx, caps, &op.Call{ID: "c1", OpID: "set_context"}, op.ResolvedParams{
		"key":   cty.StringVal("message"),
		"value": cty.StringVal("Hello"),
	})
	require.NoError(t, err)
	assert.Equal(t, cty.StringVal("Hello"), result)

	stored, found, err := contexts.Get(ctx, "message")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, cty.StringVal("Hello"), stored)
}

func TestSetContext_Schema(t *testing.T) {
	reg := registry.New()
	require.NoError(t, (&set_context.Module{}).Register(reg))

	msg := reg.ValidateCall(&op.Call{ID: "c1", OpID: "set_context"})
	assert.Contains(t, msg, "missing required parameter")
}
