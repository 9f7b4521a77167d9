package storage

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "service_id")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "service_id", "3"))
	value, err := store.Get(ctx, "service_id")
	require.NoError(t, err)
	assert.Equal(t, "3", value)

	require.NoError(t, store.Set(ctx, "service_id", "5"))
	value, err = store.Get(ctx, "service_id")
	require.NoError(t, err)
	assert.Equal(t, "5", value, "last write wins")
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	_, err := store.Get(ctx, "admin_wh")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "admin_wh", "911234567890"))
	value, err := store.Get(ctx, "admin_wh")
	require.NoError(t, err)
	assert.Equal(t, "911234567890", value)

	// Keys are namespaced so unrelated Redis state cannot collide.
	assert.True(t, mr.Exists("page:state:admin_wh"))
}

func TestRedisStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	mr.Close()

	err := store.Set(ctx, "service_id", "1")
	assert.Error(t, err)

	_, err = store.Get(ctx, "service_id")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
