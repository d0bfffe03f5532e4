// Package panes contains reusable bordered pane UI components.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/strata-labs/strata/internal/ui/styles"
)

const (
	cornerTopLeft     = "╭"
	cornerTopRight    = "╮"
	cornerBottomLeft  = "╰"
	cornerBottomRight = "╯"
	lineHorizontal    = "─"
	lineVertical      = "│"
)

// BorderConfig configures a bordered pane.
type BorderConfig struct {
	Content string
	Width   int // Total width including borders
	Height  int // Total height including borders

	// Titles embedded in the top and bottom borders (all optional).
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	Focused            bool
	TitleColor         lipgloss.TerminalColor
	BorderColor        lipgloss.TerminalColor // Unfocused border (default BorderDefaultColor)
	FocusedBorderColor lipgloss.TerminalColor // Focused border (default BorderColor)
}

// BorderedPane renders content inside a rounded border with embedded titles.
// Content is clipped and padded to exactly fill the inner area.
func BorderedPane(cfg BorderConfig) string {
	border := lipgloss.NewStyle().Foreground(resolveBorderColor(cfg))
	titleColor := cfg.TitleColor
	if titleColor == nil {
		titleColor = styles.TextSecondaryColor
	}
	title := lipgloss.NewStyle().Foreground(titleColor)

	innerWidth := max(cfg.Width-2, 1)
	innerHeight := max(cfg.Height-2, 1)

	top := buildEdge(cornerTopLeft, cornerTopRight, cfg.TopLeft, cfg.TopRight, innerWidth, border, title)
	bottom := buildEdge(cornerBottomLeft, cornerBottomRight, cfg.BottomLeft, cfg.BottomRight, innerWidth, border, title)

	contentLines := strings.Split(cfg.Content, "\n")
	var sb strings.Builder
	sb.WriteString(top)
	sb.WriteString("\n")
	for i := range innerHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		if lipgloss.Width(line) > innerWidth {
			line = styles.TruncateString(line, innerWidth)
		}
		pad := max(innerWidth-lipgloss.Width(line), 0)
		sb.WriteString(border.Render(lineVertical))
		sb.WriteString(line)
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(border.Render(lineVertical))
		sb.WriteString("\n")
	}
	sb.WriteString(bottom)
	return sb.String()
}

// resolveBorderColor picks the border colour for the focus state.
// Unset colours fall back to BorderDefaultColor; an unset focused colour
// inherits the unfocused one.
func resolveBorderColor(cfg BorderConfig) lipgloss.TerminalColor {
	base := cfg.BorderColor
	if base == nil {
		base = styles.BorderDefaultColor
	}
	if cfg.Focused && cfg.FocusedBorderColor != nil {
		return cfg.FocusedBorderColor
	}
	return base
}

// buildEdge renders one horizontal border: ╭─ Left ──────── Right ─╮
// The right title is dropped first when space runs out, then the left title
// is truncated.
func buildEdge(leftCorner, rightCorner, leftTitle, rightTitle string, inner int, border, title lipgloss.Style) string {
	if leftTitle == "" && rightTitle == "" {
		return border.Render(leftCorner + strings.Repeat(lineHorizontal, inner) + rightCorner)
	}

	lw, rw := lipgloss.Width(leftTitle), lipgloss.Width(rightTitle)
	need := 0
	if leftTitle != "" {
		need += lw + 3 // "─ " + title + " "
	}
	if rightTitle != "" {
		need += rw + 3 // " " + title + " ─"
	}
	if need+1 > inner && rightTitle != "" {
		rightTitle, rw = "", 0
		need = lw + 3
	}
	if leftTitle != "" && need+1 > inner {
		leftTitle = styles.TruncateString(leftTitle, max(inner-4, 0))
		lw = lipgloss.Width(leftTitle)
		need = lw + 3
		if leftTitle == "" {
			return border.Render(leftCorner + strings.Repeat(lineHorizontal, inner) + rightCorner)
		}
	}

	var sb strings.Builder
	sb.WriteString(border.Render(leftCorner))
	used := 0
	if leftTitle != "" {
		sb.WriteString(border.Render(lineHorizontal + " "))
		sb.WriteString(title.Render(leftTitle))
		sb.WriteString(border.Render(" "))
		used += lw + 3
	}
	fill := inner - used
	if rightTitle != "" {
		fill -= rw + 3
	}
	sb.WriteString(border.Render(strings.Repeat(lineHorizontal, max(fill, 0))))
	if rightTitle != "" {
		sb.WriteString(border.Render(" "))
		sb.WriteString(title.Render(rightTitle))
		sb.WriteString(border.Render(" " + lineHorizontal))
	}
	sb.WriteString(border.Render(rightCorner))
	return sb.String()
}
