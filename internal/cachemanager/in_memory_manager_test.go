package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type datasetName string

type row struct {
	ID   int
	Name string
}

func TestInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[datasetName, []row]("datasets", DefaultExpiration, DefaultCleanupInterval)
	want := []row{{ID: 1, Name: "clickstream"}}
	cache.Set(context.Background(), "streams", want, 0)

	got, ok := cache.Get(context.Background(), "streams")
	require.True(t, ok)
	require.Equal(t, want, got)
	require.Equal(t, Stats{Hits: 1}, cache.Stats())
}

func TestInMemoryCacheManager_Miss(t *testing.T) {
	cache := NewInMemoryCacheManager[datasetName, string]("datasets", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "streams")
	require.False(t, ok)
	require.Empty(t, got)
	require.Equal(t, Stats{Misses: 1}, cache.Stats())
}

func TestInMemoryCacheManager_WrongTypeIsMiss(t *testing.T) {
	cache := NewInMemoryCacheManager[datasetName, string]("datasets", DefaultExpiration, DefaultCleanupInterval)
	cache.cache.Set("streams", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "streams")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_Expiry(t *testing.T) {
	cache := NewInMemoryCacheManager[datasetName, string]("datasets", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "streams", "x", time.Millisecond)

	time.Sleep(5 * time.Millisecond)

	_, ok := cache.Get(context.Background(), "streams")
	require.False(t, ok)
}

func TestInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCacheManager[datasetName, string]("datasets", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(ctx, "streams", "a", 0)
	cache.Set(ctx, "buckets", "b", 0)
	cache.Set(ctx, "models", "c", 0)

	cache.Delete(ctx, "streams")
	require.Equal(t, 2, cache.Len())

	cache.Flush(ctx)
	require.Zero(t, cache.Len())
}
