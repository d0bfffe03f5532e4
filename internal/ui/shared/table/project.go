package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// State is the display state chosen by Project.
type State int

const (
	// StateRows means one grid row per record.
	StateRows State = iota
	// StateEmpty means a single row with one cell holding the empty message.
	StateEmpty
	// StateLoading means PlaceholderRows rows of inert filler cells.
	StateLoading
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	default:
		return "rows"
	}
}

// PlaceholderRows is the number of skeleton rows shown while loading.
const PlaceholderRows = 5

// PlaceholderCell is the filler text of a loading cell.
const PlaceholderCell = "░░░"

// Grid is the projected, string-only form of a table body.
type Grid struct {
	State State
	Rows  [][]string
}

// Project turns records into a Grid of cell strings.
//
// Loading wins over everything else: the grid is PlaceholderRows rows of
// filler, regardless of data. With no records the grid is one row holding
// emptyText. Otherwise every record becomes one row with a cell per column,
// in input order.
func Project(columns []ColumnConfig, data []Record, loading bool, emptyText string) Grid {
	if loading {
		rows := make([][]string, PlaceholderRows)
		for i := range rows {
			row := make([]string, len(columns))
			for j := range row {
				row[j] = PlaceholderCell
			}
			rows[i] = row
		}
		return Grid{State: StateLoading, Rows: rows}
	}

	if len(data) == 0 {
		if emptyText == "" {
			emptyText = DefaultEmptyMessage
		}
		return Grid{State: StateEmpty, Rows: [][]string{{emptyText}}}
	}

	rows := make([][]string, len(data))
	for i, record := range data {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = projectCell(col, record, i)
		}
		rows[i] = row
	}
	return Grid{State: StateRows, Rows: rows}
}

func projectCell(col ColumnConfig, record Record, index int) string {
	value, _ := Resolve(record, col.Key)
	if col.Render != nil {
		return safeRender(col.Render, value, record, index)
	}
	return FormatValue(value)
}

// safeRender invokes a Render callback, turning a panic into an error cell.
func safeRender(fn RenderFunc, value any, record Record, index int) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("!ERR:%v", r)
		}
	}()
	return fn(value, record, index)
}

// PlainText renders a grid as space-aligned text without styling.
// headers may be nil to omit the header line.
func PlainText(grid Grid, headers []string) string {
	var sb strings.Builder

	if grid.State == StateEmpty {
		if len(headers) > 0 {
			sb.WriteString(strings.Join(headers, "  "))
			sb.WriteString("\n")
		}
		sb.WriteString(grid.Rows[0][0])
		sb.WriteString("\n")
		return sb.String()
	}

	ncols := len(headers)
	for _, row := range grid.Rows {
		ncols = max(ncols, len(row))
	}
	widths := make([]int, ncols)
	for i, h := range headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range grid.Rows {
		for i, cell := range row {
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}

	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			pad := widths[i] - ansi.StringWidth(cell)
			parts[i] = cell + strings.Repeat(" ", max(pad, 0))
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteString("\n")
	}

	if len(headers) > 0 {
		writeLine(headers)
	}
	for _, row := range grid.Rows {
		writeLine(row)
	}
	return sb.String()
}
