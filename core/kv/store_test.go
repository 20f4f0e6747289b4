package kv

import (
	"context"
	"testing"

	"bloom/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	store, err := NewStore(db)
	require.NoError(t, err)
	return store
}

func TestStore_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, found, err := store.Get(ctx, "cycle.config")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "cycle.config", `{"cycle_length_days":28}`))

	value, found, err := store.Get(ctx, "cycle.config")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"cycle_length_days":28}`, value)

	// Later writes overwrite earlier ones.
	require.NoError(t, store.Set(ctx, "cycle.config", `{"cycle_length_days":30}`))
	value, _, err = store.Get(ctx, "cycle.config")
	require.NoError(t, err)
	assert.Equal(t, `{"cycle_length_days":30}`, value)

	require.NoError(t, store.Remove(ctx, "cycle.config"))
	_, found, err = store.Get(ctx, "cycle.config")
	require.NoError(t, err)
	assert.False(t, found)

	// Removing an absent key is a no-op.
	require.NoError(t, store.Remove(ctx, "cycle.config"))
}
