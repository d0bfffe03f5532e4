// Package card renders stat and feature cards.
package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/strata-labs/strata/internal/ui/styles"
)

// Trend is the direction of a stat delta.
type Trend int

const (
	TrendFlat Trend = iota
	TrendUp
	TrendDown
)

// Stat is a headline number with an optional delta.
type Stat struct {
	Label string
	Value string
	Delta string
	Trend Trend
}

// Feature is a marketing feature blurb.
type Feature struct {
	Title string
	Body  string
}

func frame(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(max(width-2, 1)).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor)
}

// RenderStat renders s in a bordered box of the given outer width.
func RenderStat(s Stat, width int) string {
	label := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(s.Label)
	value := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).Render(s.Value)

	lines := []string{label, value}
	if s.Delta != "" {
		lines = append(lines, renderDelta(s.Delta, s.Trend))
	}
	return frame(width).Render(strings.Join(lines, "\n"))
}

func renderDelta(delta string, trend Trend) string {
	switch trend {
	case TrendUp:
		return lipgloss.NewStyle().Foreground(styles.StatusSuccessColor).Render("▲ " + delta)
	case TrendDown:
		return lipgloss.NewStyle().Foreground(styles.StatusErrorColor).Render("▼ " + delta)
	default:
		return lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("● " + delta)
	}
}

// RenderFeature renders f with its body word-wrapped to the inner width.
func RenderFeature(f Feature, width int) string {
	inner := max(width-4, 1)
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.AccentColor).Render(f.Title)
	body := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Render(wordwrap.String(f.Body, inner))
	return frame(width).Render(title + "\n\n" + body)
}

// Row lays cards out horizontally with a one-column gap.
func Row(cards ...string) string {
	parts := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
