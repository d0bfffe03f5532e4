// Package table renders ordered records as a column-projected grid.
//
// The component is split in two layers. Project is a pure function that turns
// columns + records into a Grid of cell strings and decides between the three
// display states (loading placeholders, empty message, data rows). Model takes
// a Grid and lays it out for the terminal: widths, alignment, truncation,
// header, selection and an optional bordered pane.
//
// Quick Start:
//
//	cfg := table.TableConfig{
//	    Columns: []table.ColumnConfig{
//	        {Key: "name", Header: "Name", MinWidth: 12},
//	        {Key: "metrics.rps", Header: "Req/s", Width: 8, Align: lipgloss.Right},
//	        {Key: "status", Header: "Status", Width: 10, Render: func(v any, _ table.Record, _ int) string {
//	            return badge.ForStatus(table.FormatValue(v))
//	        }},
//	    },
//	    EmptyMessage: "No streams match your search",
//	    ShowHeader:   true,
//	    ShowBorder:   true,
//	}
//	tbl := table.New(cfg).SetRows(records).SetSize(80, 20)
//	view := tbl.ViewWithSelection(selected)
//
// Filtering, sorting and paging are the caller's job: pass the records you
// want displayed, in the order you want them displayed.
package table

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Record is one display row: field name to primitive or nested map.
type Record = map[string]any

// RenderFunc renders one cell. value is the result of resolving the column
// key against record; it is nil when the path is absent. index is the row's
// position in the data passed to the table.
type RenderFunc func(value any, record Record, index int) string

// ColumnConfig defines a single table column.
//
// Width configuration:
//   - Width: Fixed width in cells (0 = flex)
//   - MinWidth: Minimum width for flex columns (0 = 3)
//   - MaxWidth: Maximum width for flex columns (0 = no limit)
//   - HideBelow: Hide the column when the table is narrower than this
type ColumnConfig struct {
	Key       string // Dotted path into each record, e.g. "owner.name"
	Header    string
	Width     int
	MinWidth  int
	MaxWidth  int
	HideBelow int
	Align     lipgloss.Position

	// Render overrides the default string form of the resolved value.
	// It is called for every row, including rows where the value is absent.
	Render RenderFunc
}

// TableConfig defines the complete table configuration.
type TableConfig struct {
	Columns      []ColumnConfig
	EmptyMessage string // Shown when there are no rows (default "No data available")
	ShowHeader   bool
	ShowBorder   bool
	Title        string // Top-left title for the bordered pane

	Focused            bool
	BorderColor        lipgloss.TerminalColor
	FocusedBorderColor lipgloss.TerminalColor

	// RowZoneID returns a bubblezone id for a data row so mouse clicks can be
	// mapped back to a record. Optional.
	RowZoneID func(index int, record Record) string
}

// DefaultEmptyMessage is used when TableConfig.EmptyMessage is blank.
const DefaultEmptyMessage = "No data available"

// ErrEmptyKey is returned by ValidateConfig for a column without a key.
var ErrEmptyKey = errors.New("table config: column has an empty key")

// ValidateConfig checks that every column has a key. A table without columns
// is valid and renders only its loading or empty state.
func ValidateConfig(cfg TableConfig) error {
	for i, col := range cfg.Columns {
		if col.Key == "" {
			return fmt.Errorf("%w: column %d (%q)", ErrEmptyKey, i, col.Header)
		}
	}
	return nil
}
