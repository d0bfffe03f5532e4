// Package topbar renders the dashboard header line.
package topbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/strata-labs/strata/internal/ui/styles"
)

const separator = " / "

// Breadcrumb turns a path into display segments. Segments found in labels use
// the mapped label, others are title-cased with dashes replaced by spaces.
func Breadcrumb(path string, labels map[string]string) []string {
	var crumbs []string
	for seg := range strings.SplitSeq(strings.Trim(path, "/"), "/") {
		if seg == "" {
			continue
		}
		if label, ok := labels[seg]; ok {
			crumbs = append(crumbs, label)
			continue
		}
		words := strings.Fields(strings.ReplaceAll(seg, "-", " "))
		for i, w := range words {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
		crumbs = append(crumbs, strings.Join(words, " "))
	}
	return crumbs
}

// Config describes one topbar render.
type Config struct {
	Title   string
	Path    string
	Labels  map[string]string
	Account string
	Width   int
}

// View renders title and breadcrumb on the left, account on the right, and a
// rule underneath.
func View(cfg Config) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).Render(cfg.Title)

	left := title
	if crumbs := Breadcrumb(cfg.Path, cfg.Labels); len(crumbs) > 0 {
		trail := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(strings.Join(crumbs, separator))
		left = title + "  " + trail
	}

	right := ""
	if cfg.Account != "" {
		right = lipgloss.NewStyle().Foreground(styles.AccentColor).Render("◉ " + cfg.Account)
	}

	width := max(cfg.Width, 1)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	var line string
	if gap < 1 {
		line = styles.TruncateString(left, width)
	} else {
		line = left + strings.Repeat(" ", gap) + right
	}

	rule := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Repeat("─", width))
	return line + "\n" + rule
}
