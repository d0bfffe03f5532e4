package dataset

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cast"

	"github.com/strata-labs/strata/internal/ui/shared/table"
	"github.com/strata-labs/strata/internal/ui/styles"
)

// Count renders integers in compact form (12.4K). Absent values render "-".
func Count(v any, _ table.Record, _ int) string {
	if v == nil {
		return "-"
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return table.FormatValue(v)
	}
	return styles.FormatCount(n)
}

// Percent renders a 0..1 ratio as a percentage with one decimal.
func Percent(v any, _ table.Record, _ int) string {
	if v == nil {
		return "-"
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return table.FormatValue(v)
	}
	return fmt.Sprintf("%.1f%%", f*100)
}

// Millis renders a duration in milliseconds.
func Millis(v any, _ table.Record, _ int) string {
	if v == nil {
		return "-"
	}
	return table.FormatValue(v) + "ms"
}

// Gigabytes renders a size in GB with one decimal.
func Gigabytes(v any, _ table.Record, _ int) string {
	if v == nil {
		return "-"
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return table.FormatValue(v)
	}
	return fmt.Sprintf("%.1f GB", f)
}

// Columns returns the default column layout for a dataset. Unknown names
// return nil.
func Columns(name Name) []table.ColumnConfig {
	switch name {
	case Streams:
		return []table.ColumnConfig{
			{Key: "name", Header: "Stream", MinWidth: 14},
			{Key: "source", Header: "Source", Width: 12, HideBelow: 70},
			{Key: "status", Header: "Status", Width: 10},
			{Key: "throughput.rps", Header: "Events/s", Width: 9, Align: lipgloss.Right, Render: Count},
			{Key: "throughput.lag_ms", Header: "Lag", Width: 8, Align: lipgloss.Right, Render: Millis},
			{Key: "owner.name", Header: "Owner", MinWidth: 8, HideBelow: 90},
		}
	case Buckets:
		return []table.ColumnConfig{
			{Key: "name", Header: "Bucket", MinWidth: 14},
			{Key: "region", Header: "Region", Width: 10},
			{Key: "objects", Header: "Objects", Width: 8, Align: lipgloss.Right, Render: Count},
			{Key: "size_gb", Header: "Size", Width: 10, Align: lipgloss.Right, Render: Gigabytes},
			{Key: "visibility", Header: "Access", Width: 8, HideBelow: 70},
			{Key: "created", Header: "Created", Width: 10, HideBelow: 80},
		}
	case Objects:
		return []table.ColumnConfig{
			{Key: "key", Header: "Object", MinWidth: 16},
			{Key: "type", Header: "Type", Width: 7},
			{Key: "size_gb", Header: "Size", Width: 9, Align: lipgloss.Right, Render: Gigabytes},
			{Key: "storage_class", Header: "Class", Width: 5, HideBelow: 60},
			{Key: "modified", Header: "Modified", Width: 10, HideBelow: 70},
		}
	case Models:
		return []table.ColumnConfig{
			{Key: "name", Header: "Model", MinWidth: 14},
			{Key: "version", Header: "Version", Width: 11},
			{Key: "framework", Header: "Framework", Width: 9, HideBelow: 70},
			{Key: "status", Header: "Status", Width: 10},
			{Key: "metrics.accuracy", Header: "Accuracy", Width: 8, Align: lipgloss.Right, Render: Percent},
			{Key: "updated", Header: "Updated", Width: 10, HideBelow: 85},
		}
	case Deployments:
		return []table.ColumnConfig{
			{Key: "model", Header: "Model", MinWidth: 14},
			{Key: "endpoint", Header: "Endpoint", MinWidth: 12, HideBelow: 70},
			{Key: "replicas", Header: "Replicas", Width: 8, Align: lipgloss.Right},
			{Key: "status", Header: "Status", Width: 10},
			{Key: "latency.p95_ms", Header: "p95", Width: 7, Align: lipgloss.Right, Render: Millis},
		}
	case APIKeys:
		return []table.ColumnConfig{
			{Key: "name", Header: "Name", MinWidth: 12},
			{Key: "scope", Header: "Scope", Width: 6},
			{Key: "secret", Header: "Secret", Width: 16, HideBelow: 70},
			{Key: "created", Header: "Created", Width: 10, HideBelow: 80},
			{Key: "last_used", Header: "Last used", Width: 10},
			{Key: "status", Header: "Status", Width: 9},
		}
	case Usage:
		return []table.ColumnConfig{
			{Key: "date", Header: "Date", Width: 10},
			{Key: "events", Header: "Events", Width: 8, Align: lipgloss.Right, Render: Count},
			{Key: "storage_gb", Header: "Storage", Width: 10, Align: lipgloss.Right, Render: Gigabytes},
			{Key: "tokens", Header: "Tokens", Width: 8, Align: lipgloss.Right, Render: Count},
		}
	case Plans:
		return []table.ColumnConfig{
			{Key: "name", Header: "Plan", Width: 10},
			{Key: "price.label", Header: "Price", Width: 10},
			{Key: "events", Header: "Events", MinWidth: 10},
			{Key: "storage", Header: "Storage", Width: 8},
			{Key: "support", Header: "Support", MinWidth: 10, HideBelow: 70},
		}
	case Features:
		return []table.ColumnConfig{
			{Key: "title", Header: "Feature", Width: 18},
			{Key: "body", Header: "Description", MinWidth: 20},
		}
	case FAQ:
		return []table.ColumnConfig{
			{Key: "question", Header: "Question", MinWidth: 20},
		}
	default:
		return nil
	}
}

// SearchKeys lists the fields Filter matches against for a dataset.
func SearchKeys(name Name) []string {
	switch name {
	case Streams:
		return []string{"name", "source", "status", "region", "owner.name"}
	case Buckets:
		return []string{"name", "region", "visibility"}
	case Objects:
		return []string{"key", "type"}
	case Models:
		return []string{"name", "framework", "status"}
	case Deployments:
		return []string{"model", "endpoint", "status"}
	case APIKeys:
		return []string{"name", "scope", "status"}
	default:
		var keys []string
		for _, c := range Columns(name) {
			keys = append(keys, c.Key)
		}
		return keys
	}
}
