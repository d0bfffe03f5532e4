package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider_DisabledIsNoop(t *testing.T) {
	p, err := NewProvider(DefaultConfig())
	require.NoError(t, err)
	require.False(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "x")
	require.False(t, span.SpanContext().IsValid())
	span.End()
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_FileRequiresPath(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, Exporter: ExporterFile})
	require.ErrorContains(t, err, "file_path")
}

func TestNewProvider_UnknownExporter(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, Exporter: "zipkin"})
	require.ErrorContains(t, err, "unsupported exporter")
}

func TestNewProvider_FileExporterWritesJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces", "traces.jsonl")
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	p, err := NewProvider(Config{Enabled: true, Exporter: ExporterFile, FilePath: path, SampleRate: 1})
	require.NoError(t, err)

	ctx, parent := Start(context.Background(), SpanDatasetLoadAll)
	_, child := Start(ctx, SpanDatasetLoad, attribute.String(AttrDataset, "streams"), attribute.Int(AttrRows, 12))
	End(child, nil)
	End(parent, errors.New("partial"))
	require.NoError(t, p.Shutdown(context.Background()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []SpanRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec SpanRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.Len(t, records, 2)

	byName := map[string]SpanRecord{}
	for _, r := range records {
		byName[r.Name] = r
	}
	load := byName[SpanDatasetLoad]
	require.Equal(t, "OK", load.Status)
	require.Equal(t, "streams", load.Attributes[AttrDataset])
	require.Equal(t, byName[SpanDatasetLoadAll].SpanID, load.ParentID)
	require.Equal(t, "ERROR", byName[SpanDatasetLoadAll].Status)
	require.Equal(t, "partial", byName[SpanDatasetLoadAll].Message)
}

func TestEnd_RecordsErrorEvent(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := tp.Tracer("test").Start(context.Background(), SpanTableRender)
	End(span, errors.New("bad column"))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	require.Len(t, ended[0].Events(), 1)
	require.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestFileExporter_ShutdownTwice(t *testing.T) {
	exp, err := NewFileExporter(filepath.Join(t.TempDir(), "t.jsonl"))
	require.NoError(t, err)
	require.NoError(t, exp.Shutdown(context.Background()))
	require.NoError(t, exp.Shutdown(context.Background()))
	require.Error(t, exp.ExportSpans(context.Background(), nil))
}
