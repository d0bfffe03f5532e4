package cachemanager

import (
	"context"
	"time"
)

// LoadFunc produces the value for a key on a cache miss.
type LoadFunc[K ~string, V any] func(ctx context.Context, key K) (V, error)

// ReadThroughCache serves values from a CacheManager and calls load on a miss.
// Failed loads are not cached.
type ReadThroughCache[K ~string, V any] struct {
	cache     CacheManager[K, V]
	load      LoadFunc[K, V]
	ttl       time.Duration
	skipCache bool
}

// NewReadThroughCache wires a cache to its loader. With skipCache set every
// Get goes straight to load.
func NewReadThroughCache[K ~string, V any](cache CacheManager[K, V], load LoadFunc[K, V], ttl time.Duration, skipCache bool) *ReadThroughCache[K, V] {
	return &ReadThroughCache[K, V]{
		cache:     cache,
		load:      load,
		ttl:       ttl,
		skipCache: skipCache,
	}
}

// Get returns the cached value for key, loading it on a miss.
func (r *ReadThroughCache[K, V]) Get(ctx context.Context, key K) (V, error) {
	if r.skipCache {
		return r.load(ctx, key)
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	value, err := r.load(ctx, key)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, r.ttl)
	return value, nil
}

// Invalidate drops keys so the next Get reloads them. With no keys the whole
// cache is flushed.
func (r *ReadThroughCache[K, V]) Invalidate(ctx context.Context, keys ...K) {
	if len(keys) == 0 {
		r.cache.Flush(ctx)
		return
	}
	r.cache.Delete(ctx, keys...)
}
