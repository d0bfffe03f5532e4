package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/strata-labs/strata/internal/ui/shared/panes"
	"github.com/strata-labs/strata/internal/ui/styles"
)

// Model holds table rendering state.
// Use View() for rendering without selection, or ViewWithSelection() for highlighting.
type Model struct {
	config  TableConfig
	rows    []Record
	loading bool
	width   int
	height  int
}

// New creates a table with the given configuration.
// Panics if a column has an empty key. Zero columns is allowed.
func New(cfg TableConfig) Model {
	if err := ValidateConfig(cfg); err != nil {
		panic(err)
	}
	if cfg.EmptyMessage == "" {
		cfg.EmptyMessage = DefaultEmptyMessage
	}
	return Model{config: cfg}
}

// SetRows updates the row data and returns a new Model (immutable pattern).
func (m Model) SetRows(rows []Record) Model {
	m.rows = rows
	return m
}

// SetLoading toggles the placeholder state.
func (m Model) SetLoading(loading bool) Model {
	m.loading = loading
	return m
}

// SetConfig updates the table configuration.
// Use this to update dynamic config values like Focused state.
func (m Model) SetConfig(cfg TableConfig) Model {
	if cfg.EmptyMessage == "" {
		cfg.EmptyMessage = DefaultEmptyMessage
	}
	m.config = cfg
	return m
}

// SetSize sets the available dimensions and returns a new Model (immutable pattern).
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Config returns the current configuration.
func (m Model) Config() TableConfig {
	return m.config
}

// Loading reports whether the table is showing placeholders.
func (m Model) Loading() bool {
	return m.loading
}

// RowCount returns the number of data rows.
func (m Model) RowCount() int {
	return len(m.rows)
}

// Row returns the record at index, or nil when out of range.
func (m Model) Row(index int) Record {
	if index < 0 || index >= len(m.rows) {
		return nil
	}
	return m.rows[index]
}

// Grid projects the current rows through the configured columns.
func (m Model) Grid() Grid {
	return Project(m.config.Columns, m.rows, m.loading, m.config.EmptyMessage)
}

// View renders the table without selection highlighting.
func (m Model) View() string {
	return m.renderTable(-1)
}

// ViewWithSelection renders the table with the specified row highlighted.
// Out-of-bounds selection index is treated as no selection.
func (m Model) ViewWithSelection(selectedIndex int) string {
	return m.renderTable(selectedIndex)
}

func (m Model) renderTable(selectedIndex int) string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	innerWidth := m.width
	innerHeight := m.height
	if m.config.ShowBorder {
		innerWidth -= 2
		innerHeight -= 2
	}
	if innerWidth <= 0 || innerHeight <= 0 {
		return ""
	}

	visible, index := filterVisibleColumns(m.config.Columns, m.width)
	widths := calculateColumnWidths(visible, innerWidth)
	grid := m.Grid()

	var content string
	if grid.State == StateEmpty {
		content = m.renderEmpty(grid.Rows[0][0], visible, widths, innerWidth, innerHeight)
	} else {
		content = m.renderBody(grid, visible, index, widths, innerWidth, innerHeight, selectedIndex)
	}

	if m.config.ShowBorder {
		return panes.BorderedPane(panes.BorderConfig{
			Content:            content,
			Width:              m.width,
			Height:             m.height,
			TopLeft:            m.config.Title,
			BorderColor:        m.config.BorderColor,
			Focused:            m.config.Focused,
			FocusedBorderColor: m.config.FocusedBorderColor,
		})
	}
	return content
}

func (m Model) renderEmpty(msg string, visible []ColumnConfig, widths []int, innerWidth, innerHeight int) string {
	if !m.config.ShowHeader || innerHeight < 2 {
		return renderEmptyState(msg, innerWidth, innerHeight)
	}
	header := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(renderHeader(visible, widths))
	return header + "\n" + renderEmptyState(msg, innerWidth, innerHeight-1)
}

func (m Model) renderBody(grid Grid, visible []ColumnConfig, index, widths []int, innerWidth, innerHeight, selectedIndex int) string {
	var lines []string

	contentHeight := innerHeight
	if m.config.ShowHeader {
		header := renderHeader(visible, widths)
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(header))
		contentHeight--
	}

	if grid.State == StateLoading {
		for range min(len(grid.Rows), contentHeight) {
			lines = append(lines, renderPlaceholderRow(widths))
		}
	} else {
		start := scrollStart(len(grid.Rows), contentHeight, selectedIndex)
		end := min(len(grid.Rows), start+contentHeight)
		for i := start; i < end; i++ {
			line := renderRow(grid.Rows[i], visible, index, widths, i == selectedIndex, innerWidth)
			if m.config.RowZoneID != nil {
				line = zone.Mark(m.config.RowZoneID(i, m.rows[i]), line)
			}
			lines = append(lines, line)
		}
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// scrollStart returns the first row to draw so the selected row stays visible.
func scrollStart(total, height, selected int) int {
	if height <= 0 || selected < height || selected >= total {
		return 0
	}
	return selected - height + 1
}
