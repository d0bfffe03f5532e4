package dataset

import (
	"context"
	"io/fs"

	"github.com/strata-labs/strata/internal/cachemanager"
	"github.com/strata-labs/strata/internal/ui/shared/table"
)

// Store serves datasets from fsys through a read-through cache.
type Store struct {
	fsys  fs.FS
	cache *cachemanager.InMemoryCacheManager[Name, []table.Record]
	rtc   *cachemanager.ReadThroughCache[Name, []table.Record]
}

// NewStore creates a store over fsys. With skipCache set every read goes to
// the file system.
func NewStore(fsys fs.FS, skipCache bool) *Store {
	cache := cachemanager.NewInMemoryCacheManager[Name, []table.Record](
		"datasets", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	s := &Store{fsys: fsys, cache: cache}
	s.rtc = cachemanager.NewReadThroughCache[Name, []table.Record](cache, s.load, 0, skipCache)
	return s
}

func (s *Store) load(ctx context.Context, name Name) ([]table.Record, error) {
	if _, err := ParseName(string(name)); err != nil {
		return nil, err
	}
	return LoadDataset(ctx, s.fsys, name)
}

// Get returns one dataset.
func (s *Store) Get(ctx context.Context, name Name) ([]table.Record, error) {
	return s.rtc.Get(ctx, name)
}

// Catalog returns every dataset, loading missing ones concurrently.
func (s *Store) Catalog(ctx context.Context) (*Catalog, error) {
	return loadAll(ctx, s.Get)
}

// Invalidate drops cached datasets. With no names everything is dropped.
func (s *Store) Invalidate(ctx context.Context, names ...Name) {
	s.rtc.Invalidate(ctx, names...)
}

// Stats exposes cache hit and miss counts.
func (s *Store) Stats() cachemanager.Stats {
	return s.cache.Stats()
}
