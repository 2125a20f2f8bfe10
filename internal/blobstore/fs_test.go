package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFSStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(ctx, "visitors")
	require.ErrorIs(t, err, ErrNotExist)

	doc := []byte(`[{"id":"v-1","name":"Anna Svensson"}]`)
	require.NoError(t, store.Save(ctx, "visitors", doc))

	got, err := store.Load(ctx, "visitors")
	require.NoError(t, err)
	require.Equal(t, doc, got)
}

func TestFSStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	store, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "logs", []byte(`[1]`)))
	require.NoError(t, store.Save(ctx, "logs", []byte(`[2,1]`)))

	got, err := store.Load(ctx, "logs")
	require.NoError(t, err)
	require.Equal(t, []byte(`[2,1]`), got)
}

func TestFSStore_RejectsTraversalKeys(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewFSStore(root)
	require.NoError(t, err)

	for _, key := range []string{"", "  ", "../escape", "a/b", `a\b`} {
		require.Error(t, store.Save(ctx, key, []byte(`[]`)), "key %q", key)
		_, err := store.Load(ctx, key)
		require.Error(t, err, "key %q", key)
	}
}

func TestFSStore_LeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewFSStore(root)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "saved_hosts", []byte(`[]`)))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "saved_hosts.json", entries[0].Name())
	require.Equal(t, filepath.Join(root, "saved_hosts.json"), filepath.Join(root, entries[0].Name()))
}
