package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/oplinkgo/internal/op"
	"github.com/zclconf/go-cty/cty"
)

func noopRun(ctx context.Context, caps *op.Capabilities, call *op.Call, params op.ResolvedParams) (cty.Value, error) {
	return cty.NilVal, nil
}

func TestNew(t *testing.T) {
	r := New()
	require.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
}

func TestRegister(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		r := New()
		err := r.Register(&op.Definition{
			ID:  "greet",
			Run: noopRun,
			Params: []op.ParameterSpec{
				{Name: "name", Type: cty.String, Required: true},
			},
		})
		require.NoError(t, err)

		def, ok := r.Get("greet")
		require.True(t, ok)
		assert.Equal(t, "greet", def.ID)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("duplicate id leaves prior entry intact", func(t *testing.T) {
		r := New()
		first := &op.Definition{ID: "greet", Description: "first", Run: noopRun}
		second := &op.Definition{ID: "greet", Description: "second", Run: noopRun}

		require.NoError(t, r.Register(first))
		err := r.Register(second)
		require.ErrorIs(t, err, op.ErrDuplicateDefinition)

		def, ok := r.Get("greet")
		require.True(t, ok)
		assert.Equal(t, "first", def.Description)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("missing id", func(t *testing.T) {
		r := New()
		err := r.Register(&op.Definition{Run: noopRun})
		assert.ErrorIs(t, err, op.ErrMalformedSchema)
	})

	t.Run("missing implementation", func(t *testing.T) {
		r := New()
		err := r.Register(&op.Definition{ID: "broken"})
		assert.ErrorIs(t, err, op.ErrMalformedSchema)
	})

	t.Run("parameter without a name", func(t *testing.T) {
		r := New()
		err := r.Register(&op.Definition{
			ID:     "broken",
			Run:    noopRun,
			Params: []op.ParameterSpec{{Type: cty.String}},
		})
		assert.ErrorIs(t, err, op.ErrMalformedSchema)
	})

	t.Run("parameter without a type", func(t *testing.T) {
		r := New()
		err := r.Register(&op.Definition{
			ID:     "broken",
			Run:    noopRun,
			Params: []op.ParameterSpec{{Name: "x"}},
		})
		assert.ErrorIs(t, err, op.ErrMalformedSchema)
	})

	t.Run("parameter with non-primitive type", func(t *testing.T) {
		r := New()
		err := r.Register(&op.Definition{
			ID:     "broken",
			Run:    noopRun,
			Params: []op.ParameterSpec{{Name: "x", Type: cty.List(cty.String)}},
		})
		assert.ErrorIs(t, err, op.ErrMalformedSchema)
	})

	t.Run("duplicate parameter names", func(t *testing.T) {
		r := New()
		err := r.Register(&op.Definition{
			ID:  "broken",
			Run: noopRun,
			Params: []op.ParameterSpec{
				{Name: "x", Type: cty.String},
				{Name: "x", Type: cty.Number},
			},
		})
		assert.ErrorIs(t, err, op.ErrMalformedSchema)
	})

	t.Run("failed registration does not register", func(t *testing.T) {
		r := New()
		err := r.Register(&op.Definition{
			ID:     "broken",
			Run:    noopRun,
			Params: []op.ParameterSpec{{Name: "x"}},
		})
		require.Error(t, err)
		_, ok := r.Get("broken")
		assert.False(t, ok)
	})
}

func TestGet(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&op.Definition{ID: "greet", Run: noopRun}))

	_, ok := r.Get("greet")
	assert.True(t, ok)

	_, ok = r.Get("dne")
	assert.False(t, ok)
}
