package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	sectionTopLeft     = "╭"
	sectionTopRight    = "╮"
	sectionBottomLeft  = "╰"
	sectionBottomRight = "╯"
	sectionHorizontal  = "─"
	sectionVertical    = "│"
)

// RenderFormSection renders content lines inside a rounded box whose top border
// carries the title. Used by modal input fields.
func RenderFormSection(content []string, title string, width int, focused bool) string {
	var color lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		color = BorderHighlightFocusColor
	}
	border := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(color)

	inner := max(width-2, 1)

	var top string
	if title == "" {
		top = border.Render(sectionTopLeft + strings.Repeat(sectionHorizontal, inner) + sectionTopRight)
	} else {
		title = TruncateString(title, max(inner-3, 1))
		dashes := max(inner-lipgloss.Width(title)-3, 0)
		top = border.Render(sectionTopLeft+sectionHorizontal+" ") +
			titleStyle.Render(title) +
			border.Render(" "+strings.Repeat(sectionHorizontal, dashes)+sectionTopRight)
	}

	lines := make([]string, 0, len(content))
	for _, row := range content {
		pad := max(inner-lipgloss.Width(row), 0)
		lines = append(lines, border.Render(sectionVertical)+row+strings.Repeat(" ", pad)+border.Render(sectionVertical))
	}

	bottom := border.Render(sectionBottomLeft + strings.Repeat(sectionHorizontal, inner) + sectionBottomRight)
	return top + "\n" + strings.Join(lines, "\n") + "\n" + bottom
}
