package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/strata-labs/strata/internal/log"
	"github.com/strata-labs/strata/internal/tracing"
	"github.com/strata-labs/strata/internal/ui/shared/table"
)

// LoadDataset reads and decodes one dataset file from fsys. Both .yaml and
// .yml extensions are accepted.
func LoadDataset(ctx context.Context, fsys fs.FS, name Name) (records []table.Record, err error) {
	ctx, span := tracing.Start(ctx, tracing.SpanDatasetLoad, attribute.String(tracing.AttrDataset, string(name)))
	defer func() { tracing.End(span, err) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, path, err := readFirst(fsys, string(name)+".yaml", string(name)+".yml")
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", name, err)
	}

	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding dataset %s (%s): %w", name, path, err)
	}
	for i, r := range records {
		if r == nil {
			records[i] = table.Record{}
		}
	}

	span.SetAttributes(attribute.Int(tracing.AttrRows, len(records)), attribute.String(tracing.AttrSource, path))
	log.Debug(log.CatData, "dataset loaded", "name", name, "rows", len(records))
	return records, nil
}

// readFirst returns the first path that exists, checking every path in one
// layer before falling through to the next.
func readFirst(fsys fs.FS, paths ...string) ([]byte, string, error) {
	var firstErr error
	for _, layer := range layersOf(fsys) {
		for _, p := range paths {
			data, err := fs.ReadFile(layer, p)
			if err == nil {
				return data, p, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, "", err
			}
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return nil, "", firstErr
}

// Load reads every dataset from fsys concurrently.
func Load(ctx context.Context, fsys fs.FS) (*Catalog, error) {
	return loadAll(ctx, func(ctx context.Context, name Name) ([]table.Record, error) {
		return LoadDataset(ctx, fsys, name)
	})
}

// loadAll runs get for every known dataset in parallel. The first error
// cancels the rest.
func loadAll(ctx context.Context, get func(context.Context, Name) ([]table.Record, error)) (cat *Catalog, err error) {
	ctx, span := tracing.Start(ctx, tracing.SpanDatasetLoadAll)
	defer func() { tracing.End(span, err) }()

	var mu sync.Mutex
	sets := make(map[Name][]table.Record, len(Names))

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range Names {
		g.Go(func() error {
			records, err := get(gctx, name)
			if err != nil {
				return err
			}
			mu.Lock()
			sets[name] = records
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.ErrorErr(log.CatData, "dataset load failed", err)
		return nil, err
	}

	log.Info(log.CatData, "datasets loaded", "count", len(sets))
	return NewCatalog(sets), nil
}
