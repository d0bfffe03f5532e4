package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span names.
const (
	SpanDatasetLoad    = "dataset.load"
	SpanDatasetLoadAll = "dataset.load_all"
	SpanTableRender    = "table.render"
)

// Attribute keys.
const (
	AttrDataset = "strata.dataset"
	AttrRows    = "strata.rows"
	AttrColumns = "strata.columns"
	AttrSource  = "strata.source"
	AttrLoading = "strata.loading"
)

// Start opens a span on the global tracer provider.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(ServiceName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// End records err on span, if any, and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
