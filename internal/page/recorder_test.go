package page

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbannest/homeserve-platform/internal/storage"
)

// failStore simulates storage disabled by the host environment.
type failStore struct{}

func (failStore) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("storage offline")
}

func (failStore) Set(ctx context.Context, key, value string) error {
	return errors.New("storage offline")
}

func TestRecordLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	recorder := NewRecorder(store, nil)

	recorder.Record(ctx, 4)
	value, err := store.Get(ctx, KeySelectedService)
	require.NoError(t, err)
	assert.Equal(t, "4", value)

	recorder.Record(ctx, 7)
	value, err = store.Get(ctx, KeySelectedService)
	require.NoError(t, err)
	assert.Equal(t, "7", value, "second click must overwrite, not accumulate")
}

func TestRecordSwallowsWriteFailure(t *testing.T) {
	recorder := NewRecorder(failStore{}, nil)

	// Must not panic or surface the failure.
	recorder.Record(context.Background(), 1)
}
