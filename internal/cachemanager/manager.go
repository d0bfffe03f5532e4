// Package cachemanager provides a typed in-memory cache and a read-through
// loader on top of it.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is a typed key/value cache with per-entry TTL.
type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K)
	Flush(ctx context.Context)
	Len() int
}

// Stats counts cache lookups.
type Stats struct {
	Hits   int64
	Misses int64
}
