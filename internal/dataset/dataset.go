// Package dataset holds the mock data behind the marketing site and the
// dashboard. Every dataset is an ordered list of table.Record loaded from a
// YAML file, either embedded in the binary or read from a data directory.
package dataset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/strata-labs/strata/internal/ui/shared/table"
)

// Name identifies a dataset. It is also the file name without extension.
type Name string

// Known datasets.
const (
	Streams     Name = "streams"
	Buckets     Name = "buckets"
	Objects     Name = "objects"
	Models      Name = "models"
	Deployments Name = "deployments"
	APIKeys     Name = "api_keys"
	Usage       Name = "usage"
	Plans       Name = "plans"
	Features    Name = "features"
	FAQ         Name = "faq"
)

// Names lists every known dataset in display order.
var Names = []Name{Streams, Buckets, Objects, Models, Deployments, APIKeys, Usage, Plans, Features, FAQ}

// ErrUnknownDataset is returned for names outside Names.
var ErrUnknownDataset = errors.New("unknown dataset")

//go:embed data/*.yaml
var embedded embed.FS

// DefaultFS returns the embedded mock data.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded data missing: %v", err))
	}
	return sub
}

// ParseName validates a dataset name.
func ParseName(s string) (Name, error) {
	n := Name(s)
	if !slices.Contains(Names, n) {
		return "", fmt.Errorf("%w: %q", ErrUnknownDataset, s)
	}
	return n, nil
}

// Catalog is a loaded snapshot of every dataset.
type Catalog struct {
	sets map[Name][]table.Record
}

// NewCatalog builds a catalog from already loaded records.
func NewCatalog(sets map[Name][]table.Record) *Catalog {
	c := &Catalog{sets: make(map[Name][]table.Record, len(sets))}
	for name, records := range sets {
		c.sets[name] = records
	}
	return c
}

// Dataset returns the records of name.
func (c *Catalog) Dataset(name Name) ([]table.Record, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	records, ok := c.sets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	return records, nil
}

// Records returns the records of name, or nil when absent.
func (c *Catalog) Records(name Name) []table.Record {
	records, _ := c.Dataset(name)
	return records
}

// With returns a copy of the catalog with name replaced by records.
func (c *Catalog) With(name Name, records []table.Record) *Catalog {
	next := NewCatalog(nil)
	if c != nil {
		for k, v := range c.sets {
			next.sets[k] = v
		}
	}
	next.sets[name] = records
	return next
}

// Count returns the number of records in name.
func (c *Catalog) Count(name Name) int {
	return len(c.Records(name))
}
