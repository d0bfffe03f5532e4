package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/strata-labs/strata/internal/ui/styles"
)

const (
	defaultMinWidth = 3
	columnGap       = 1
)

// filterVisibleColumns drops columns whose HideBelow threshold exceeds the
// table width. The first column is always kept so a narrow table still
// shows something.
func filterVisibleColumns(cols []ColumnConfig, width int) ([]ColumnConfig, []int) {
	var visible []ColumnConfig
	var index []int
	for i, col := range cols {
		if col.HideBelow > 0 && width < col.HideBelow {
			continue
		}
		visible = append(visible, col)
		index = append(index, i)
	}
	if len(visible) == 0 && len(cols) > 0 {
		return cols[:1], []int{0}
	}
	return visible, index
}

// calculateColumnWidths assigns fixed widths first, then shares what is left
// between flex columns, clamped to MinWidth and MaxWidth. Space released by a
// MaxWidth clamp goes to the flex columns after it.
func calculateColumnWidths(cols []ColumnConfig, totalWidth int) []int {
	widths := make([]int, len(cols))
	if len(cols) == 0 {
		return widths
	}

	available := totalWidth - columnGap*(len(cols)-1)
	flex := 0
	for i, col := range cols {
		if col.Width > 0 {
			widths[i] = col.Width
			available -= col.Width
		} else {
			flex++
		}
	}

	for i, col := range cols {
		if col.Width > 0 {
			continue
		}
		share := available / flex
		minW := col.MinWidth
		if minW <= 0 {
			minW = defaultMinWidth
		}
		share = max(share, minW)
		if col.MaxWidth > 0 {
			share = min(share, col.MaxWidth)
		}
		widths[i] = share
		available -= share
		flex--
	}
	return widths
}

// renderHeader renders the header row with column alignment applied.
func renderHeader(cols []ColumnConfig, widths []int) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = renderCell(col.Header, widths[i], col.Align)
	}
	return strings.Join(parts, " ")
}

// renderRow joins the visible cells of one grid row.
// index maps visible columns back to grid cell positions.
func renderRow(cells []string, cols []ColumnConfig, index, widths []int, selected bool, fullWidth int) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		var cell string
		if index[i] < len(cells) {
			cell = cells[index[i]]
		}
		parts[i] = renderCell(cell, widths[i], col.Align)
	}
	line := strings.Join(parts, " ")

	if !selected {
		return line
	}
	if pad := fullWidth - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return lipgloss.NewStyle().Background(styles.SelectionBackgroundColor).Render(line)
}

// renderPlaceholderRow fills every visible column with muted blocks.
func renderPlaceholderRow(widths []int) string {
	style := lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
	parts := make([]string, len(widths))
	for i, w := range widths {
		block := strings.Repeat(string([]rune(PlaceholderCell)[0]), max(w-1, 1))
		parts[i] = alignText(style.Render(block), w, lipgloss.Left)
	}
	return strings.Join(parts, " ")
}

// renderCell truncates content to width and pads it according to align.
func renderCell(content string, width int, align lipgloss.Position) string {
	if lipgloss.Width(content) > width {
		content = styles.TruncateString(content, width)
	}
	return alignText(content, width, align)
}

// renderEmptyState renders the message centred in the available space.
func renderEmptyState(msg string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	if lipgloss.Width(msg) > width {
		msg = styles.TruncateString(msg, width)
	}
	styled := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(msg)
	leftPad := max((width-lipgloss.Width(msg))/2, 0)

	topPad := max((height-1)/2, 0)
	lines := make([]string, 0, height)
	for range topPad {
		lines = append(lines, "")
	}
	lines = append(lines, strings.Repeat(" ", leftPad)+styled)
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// alignText aligns text within the given width according to position.
func alignText(text string, width int, align lipgloss.Position) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}

	padding := width - textWidth

	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", padding) + text
	case lipgloss.Center:
		leftPad := padding / 2
		rightPad := padding - leftPad
		return strings.Repeat(" ", leftPad) + text + strings.Repeat(" ", rightPad)
	default:
		return text + strings.Repeat(" ", padding)
	}
}
