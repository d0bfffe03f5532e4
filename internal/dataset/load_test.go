package dataset

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/strata-labs/strata/internal/ui/shared/table"
)

func TestLoad_EmbeddedData(t *testing.T) {
	cat, err := Load(context.Background(), DefaultFS())
	require.NoError(t, err)

	for _, name := range Names {
		require.NotZero(t, cat.Count(name), "dataset %s should not be empty", name)
	}
	require.Equal(t, 8, cat.Count(Streams))
	require.Equal(t, 14, cat.Count(Usage))

	first := cat.Records(Streams)[0]
	rps, ok := table.Resolve(first, "throughput.rps")
	require.True(t, ok)
	require.Equal(t, 1840, rps)
}

func TestLoad_EveryDatasetHasColumns(t *testing.T) {
	for _, name := range Names {
		require.NotEmpty(t, Columns(name), "dataset %s needs default columns", name)
		require.NoError(t, table.ValidateConfig(table.TableConfig{Columns: Columns(name)}))
	}
	require.Nil(t, Columns("nope"))
}

func TestLoadDataset_AcceptsYml(t *testing.T) {
	fsys := fstest.MapFS{"streams.yml": {Data: []byte("- name: a\n- name: b\n")}}

	records, err := LoadDataset(context.Background(), fsys, Streams)
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestLoadDataset_NullEntryBecomesEmptyRecord(t *testing.T) {
	fsys := fstest.MapFS{"streams.yaml": {Data: []byte("- name: a\n- ~\n")}}

	records, err := LoadDataset(context.Background(), fsys, Streams)
	require.NoError(t, err)
	require.Equal(t, table.Record{}, records[1])
}

func TestLoadDataset_Errors(t *testing.T) {
	_, err := LoadDataset(context.Background(), fstest.MapFS{}, Streams)
	require.ErrorContains(t, err, "reading dataset streams")

	bad := fstest.MapFS{"streams.yaml": {Data: []byte("name: [unterminated")}}
	_, err = LoadDataset(context.Background(), bad, Streams)
	require.ErrorContains(t, err, "decoding dataset streams")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = LoadDataset(ctx, DefaultFS(), Streams)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(context.Background(), fstest.MapFS{"streams.yaml": {Data: []byte("[]")}})
	require.Error(t, err)
}

func TestOverlay_PrefersDirectory(t *testing.T) {
	dir := fstest.MapFS{"streams.yaml": {Data: []byte("- name: only-one\n")}}

	cat, err := Load(context.Background(), Overlay(dir))
	require.NoError(t, err)

	require.Equal(t, 1, cat.Count(Streams))
	require.Equal(t, 5, cat.Count(Buckets), "missing files fall back to embedded data")
}

func TestOverlay_YmlInDirectoryBeatsEmbeddedYaml(t *testing.T) {
	dir := fstest.MapFS{"buckets.yml": {Data: []byte("- name: x\n")}}

	records, err := LoadDataset(context.Background(), Overlay(dir), Buckets)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestParseName(t *testing.T) {
	n, err := ParseName("api_keys")
	require.NoError(t, err)
	require.Equal(t, APIKeys, n)

	_, err = ParseName("users")
	require.ErrorIs(t, err, ErrUnknownDataset)
}

func TestCatalog_DatasetAndWith(t *testing.T) {
	cat := NewCatalog(map[Name][]table.Record{Streams: {{"name": "a"}}})

	_, err := cat.Dataset(Buckets)
	require.ErrorIs(t, err, ErrUnknownDataset)

	next := cat.With(Buckets, []table.Record{{"name": "b"}})
	require.Equal(t, 1, next.Count(Buckets))
	require.Zero(t, cat.Count(Buckets), "With must not mutate the receiver")

	var nilCat *Catalog
	_, err = nilCat.Dataset(Streams)
	require.ErrorIs(t, err, ErrUnknownDataset)
}
