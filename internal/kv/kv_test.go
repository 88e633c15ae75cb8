package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/careercoin/internal/kv"
)

func TestMemory_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	m := kv.NewMemory()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, m.Set(ctx, "balance", "100"))

	got, err := m.Get(ctx, "balance")
	require.NoError(t, err)
	assert.Equal(t, "100", got)

	require.NoError(t, m.Set(ctx, "balance", "20"))

	got, err = m.Get(ctx, "balance")
	require.NoError(t, err)
	assert.Equal(t, "20", got)

	require.NoError(t, m.Delete(ctx, "balance"))

	_, err = m.Get(ctx, "balance")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestNamespace_PrefixesKeys(t *testing.T) {
	ctx := context.Background()
	m := kv.NewMemory()
	ns := kv.WithPrefix(m, "careerCoin")

	require.NoError(t, ns.Set(ctx, "Balance", "42"))

	raw, err := m.Get(ctx, "careerCoinBalance")
	require.NoError(t, err)
	assert.Equal(t, "42", raw)

	got, err := ns.Get(ctx, "Balance")
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	require.NoError(t, ns.Delete(ctx, "Balance"))

	_, err = m.Get(ctx, "careerCoinBalance")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}
