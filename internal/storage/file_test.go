package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackendRoundTrip(t *testing.T) {
	kv, err := NewFile(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	// identity fragments contain characters that are hostile as filenames
	key := "ss_user+test@example.com_customers"

	_, err = kv.Get(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, key, []byte(`[{"id":"1"}]`)))

	data, err := kv.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))

	exists, err := kv.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, kv.Delete(ctx, key))
	exists, err = kv.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting an absent key is a no-op
	require.NoError(t, kv.Delete(ctx, key))
}

func TestFileBackendOverwrite(t *testing.T) {
	kv, err := NewFile(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("first")))
	require.NoError(t, kv.Set(ctx, "k", []byte("second")))

	data, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
