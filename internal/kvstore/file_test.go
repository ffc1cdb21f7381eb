package kvstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvsilva/adapta/internal/kvstore"
)

func newFileStore(t *testing.T) (*kvstore.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	store, err := kvstore.NewFileStore(path)
	require.NoError(t, err, "Failed to create file store")
	return store, path
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, _ := newFileStore(t)
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	err := store.Set(ctx, "student:1", record{Name: "Ana", Count: 3})
	require.NoError(t, err)

	raw, err := store.Get(ctx, "student:1")
	require.NoError(t, err)

	var got record
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, record{Name: "Ana", Count: 3}, got)

	// Overwriting the same key replaces the value
	require.NoError(t, store.Set(ctx, "student:1", record{Name: "Ana", Count: 4}))
	raw, err = store.Get(ctx, "student:1")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 4, got.Count)
}

func TestFileStoreMissingKey(t *testing.T) {
	store, _ := newFileStore(t)

	_, err := store.Get(context.Background(), "student:missing")
	assert.True(t, errors.Is(err, kvstore.ErrKeyNotFound))

	// Deleting a missing key is a no-op
	assert.NoError(t, store.Delete(context.Background(), "student:missing"))
}

func TestFileStoreGetByPrefix(t *testing.T) {
	store, _ := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "adaptation:s1:a", map[string]string{"id": "a"}))
	require.NoError(t, store.Set(ctx, "adaptation:s1:b", map[string]string{"id": "b"}))
	require.NoError(t, store.Set(ctx, "adaptation:s2:c", map[string]string{"id": "c"}))
	require.NoError(t, store.Set(ctx, "report:s1:d", map[string]string{"id": "d"}))

	values, err := store.GetByPrefix(ctx, "adaptation:s1:")
	require.NoError(t, err)
	assert.Len(t, values, 2, "Prefix scan must not leak other students' records")

	values, err = store.GetByPrefix(ctx, "adaptation:")
	require.NoError(t, err)
	assert.Len(t, values, 3)

	values, err = store.GetByPrefix(ctx, "nothing:")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestFileStorePrefixIsLiteral(t *testing.T) {
	store, _ := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "report:s1:r1", map[string]string{"id": "r1"}))
	require.NoError(t, store.Set(ctx, "report:s2:r2", map[string]string{"id": "r2"}))

	// "%" and "_" are ordinary characters in a key prefix, never wildcards
	values, err := store.GetByPrefix(ctx, "report:%:")
	require.NoError(t, err)
	assert.Empty(t, values, "Wildcard-looking prefix must not match other keys")

	values, err = store.GetByPrefix(ctx, "report:s_:")
	require.NoError(t, err)
	assert.Empty(t, values)

	require.NoError(t, store.Set(ctx, "report:%:r3", map[string]string{"id": "r3"}))
	values, err = store.GetByPrefix(ctx, "report:%:")
	require.NoError(t, err)
	assert.Len(t, values, 1)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	store, path := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user:1", map[string]string{"name": "Maria"}))
	require.NoError(t, store.Close())

	reopened, err := kvstore.NewFileStore(path)
	require.NoError(t, err, "Failed to reopen file store")

	raw, err := reopened.Get(ctx, "user:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Maria"}`, string(raw))
}

func TestFileStoreReset(t *testing.T) {
	store, _ := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "student:1", map[string]string{"id": "1"}))
	require.NoError(t, store.Set(ctx, "report:s1:r1", map[string]string{"id": "r1"}))

	require.NoError(t, store.Reset(ctx))

	_, err := store.Get(ctx, "student:1")
	assert.True(t, errors.Is(err, kvstore.ErrKeyNotFound))

	values, err := store.GetByPrefix(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, values)
}
