package dataset

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestStore_CachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	fsys := fstest.MapFS{"streams.yaml": {Data: []byte("- name: a\n")}}
	store := NewStore(Overlay(fsys), false)

	records, err := store.Get(ctx, Streams)
	require.NoError(t, err)
	require.Len(t, records, 1)

	fsys["streams.yaml"] = &fstest.MapFile{Data: []byte("- name: a\n- name: b\n")}

	records, err = store.Get(ctx, Streams)
	require.NoError(t, err)
	require.Len(t, records, 1, "served from cache")

	store.Invalidate(ctx, Streams)
	records, err = store.Get(ctx, Streams)
	require.NoError(t, err)
	require.Len(t, records, 2)

	stats := store.Stats()
	require.Equal(t, int64(1), stats.Hits)
	require.Equal(t, int64(2), stats.Misses)
}

func TestStore_SkipCache(t *testing.T) {
	ctx := context.Background()
	fsys := fstest.MapFS{"streams.yaml": {Data: []byte("- name: a\n")}}
	store := NewStore(fsys, true)

	_, err := store.Get(ctx, Streams)
	require.NoError(t, err)
	fsys["streams.yaml"] = &fstest.MapFile{Data: []byte("[]")}

	records, err := store.Get(ctx, Streams)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestStore_UnknownDataset(t *testing.T) {
	_, err := NewStore(DefaultFS(), false).Get(context.Background(), "users")
	require.ErrorIs(t, err, ErrUnknownDataset)
}

func TestStore_Catalog(t *testing.T) {
	ctx := context.Background()
	store := NewStore(DefaultFS(), false)

	cat, err := store.Catalog(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, cat.Count(APIKeys))

	_, err = store.Catalog(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(len(Names)), store.Stats().Hits)
}
