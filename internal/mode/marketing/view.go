package marketing

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cast"

	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/keys"
	"github.com/strata-labs/strata/internal/ui/shared/card"
	"github.com/strata-labs/strata/internal/ui/shared/table"
	"github.com/strata-labs/strata/internal/ui/styles"
)

const (
	heroTitle   = "Strata"
	heroTagline = "One platform for streams, storage and models."
	ctaLabel    = "Open the dashboard →"
)

// renderBody draws the rule, scrolled section and footer below the tab bar.
func (m Model) renderBody() string {
	rule := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Repeat("─", m.width))
	footer := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(m.help.View(keys.MarketingHelp{}))
	return rule + "\n" + m.viewport.View() + "\n\n" + footer
}

func (m Model) renderSection(id string) string {
	switch id {
	case TabPricing:
		return m.renderPricing()
	case TabFAQ:
		return m.renderFAQ()
	default:
		return m.renderOverview()
	}
}

func (m Model) renderHero() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.AccentColor).Render(heroTitle)
	tagline := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Render(heroTagline)
	cta := zone.Mark(m.ctaZone, styles.PrimaryButtonFocusedStyle.Render(ctaLabel))

	hero := lipgloss.JoinVertical(lipgloss.Center, title, "", tagline, "", cta)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hero)
}

func (m Model) renderOverview() string {
	sections := []string{"", m.renderHero(), ""}

	if m.catalog == nil {
		sections = append(sections, muted("Loading features..."))
		return strings.Join(sections, "\n")
	}

	features := m.catalog.Records(dataset.Features)
	perRow := 2
	if m.width < 60 {
		perRow = 1
	}
	cardWidth := (m.width - (perRow - 1)) / perRow

	var row []string
	for i, rec := range features {
		row = append(row, card.RenderFeature(featureOf(rec), cardWidth))
		if len(row) == perRow || i == len(features)-1 {
			sections = append(sections, card.Row(row...))
			row = nil
		}
	}
	return strings.Join(sections, "\n")
}

func featureOf(rec table.Record) card.Feature {
	title, _ := table.Resolve(rec, "title")
	body, _ := table.Resolve(rec, "body")
	return card.Feature{Title: table.FormatValue(title), Body: table.FormatValue(body)}
}

// highlightedPlan returns the index of the first plan flagged highlight, or -1.
func highlightedPlan(plans []table.Record) int {
	for i, p := range plans {
		if v, ok := table.Resolve(p, "highlight"); ok && cast.ToBool(v) {
			return i
		}
	}
	return -1
}

func (m Model) renderPricing() string {
	rows := 0
	selected := -1
	if m.catalog != nil {
		plans := m.catalog.Records(dataset.Plans)
		rows = len(plans)
		selected = highlightedPlan(plans)
	}
	// Header plus rows plus border, or the placeholder rows while loading.
	height := max(rows, table.PlaceholderRows) + 3
	t := m.pricing.SetSize(m.width, height)

	note := muted("All plans include unlimited API keys and a 14-day free trial. Press enter to start.")
	return "\n" + t.ViewWithSelection(selected) + "\n\n" + note
}

func (m Model) renderFAQ() string {
	if m.catalog == nil {
		return "\n" + muted("Loading questions...")
	}

	var sb strings.Builder
	sb.WriteString("# Frequently asked questions\n\n")
	for _, rec := range m.catalog.Records(dataset.FAQ) {
		q, _ := table.Resolve(rec, "question")
		a, _ := table.Resolve(rec, "answer")
		sb.WriteString("## " + table.FormatValue(q) + "\n\n")
		sb.WriteString(strings.TrimSpace(table.FormatValue(a)) + "\n\n")
	}

	if m.md == nil {
		return sb.String()
	}
	return "\n" + m.md.MustRender(sb.String())
}

func muted(s string) string {
	return lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(s)
}
