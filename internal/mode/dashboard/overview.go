package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/flags"
	"github.com/strata-labs/strata/internal/keys"
	"github.com/strata-labs/strata/internal/mode"
	"github.com/strata-labs/strata/internal/ui/shared/card"
	"github.com/strata-labs/strata/internal/ui/shared/chart"
	"github.com/strata-labs/strata/internal/ui/shared/sidebar"
	"github.com/strata-labs/strata/internal/ui/shared/table"
	"github.com/strata-labs/strata/internal/ui/styles"
)

const (
	recentStreams = 5
	chartHeight   = 10
	statHeight    = 5
)

type overviewPage struct {
	services mode.Services
	catalog  *dataset.Catalog
	recent   tableView
	width    int
	height   int
}

func newOverviewPage(services mode.Services) overviewPage {
	return overviewPage{
		services: services,
		recent:   newTableView(dataset.Streams, "Recent streams", emptyText(services)),
	}
}

func (p overviewPage) chartsEnabled() bool {
	return p.services.Flags.Enabled(flags.FlagCharts)
}

func (p overviewPage) SetCatalog(cat *dataset.Catalog) Page {
	p.catalog = cat
	if cat == nil {
		p.recent = p.recent.setLoading(true)
		return p
	}
	streams := cat.Records(dataset.Streams)
	p.recent = p.recent.setRecords(streams[:min(len(streams), recentStreams)]).setLoading(false)
	return p
}

func (p overviewPage) SetSize(width, height int) Page {
	p.width = width
	p.height = height
	p.recent = p.recent.setSize(width, p.tableHeight())
	return p
}

func (p overviewPage) tableHeight() int {
	used := statHeight + 1
	if p.chartsEnabled() {
		used += chartHeight + 3
	}
	return max(p.height-used, 4)
}

func (p overviewPage) SetFocused(focused bool) Page {
	p.recent = p.recent.setFocused(focused)
	return p
}

func (p overviewPage) Capturing() bool { return false }

func (p overviewPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.recent.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, keys.Dashboard.Down):
			p.recent = p.recent.move(1)
		case key.Matches(msg, keys.Dashboard.Up):
			p.recent = p.recent.move(-1)
		case msg.Type == tea.KeyEnter:
			return p, navigateTo(PathStreams)
		}
	case tea.MouseMsg:
		var hit bool
		if p.recent, hit = p.recent.click(msg); hit {
			return p, navigateTo(PathStreams)
		}
	}
	return p, nil
}

func navigateTo(path string) tea.Cmd {
	return func() tea.Msg { return sidebar.NavigateMsg{Path: path} }
}

func (p overviewPage) View() string {
	sections := []string{p.renderStats()}
	if p.chartsEnabled() {
		sections = append(sections, p.renderChart())
	}
	sections = append(sections, p.recent.view())
	return strings.Join(sections, "\n")
}

func (p overviewPage) renderStats() string {
	stats := p.stats()
	width := (p.width - (len(stats) - 1)) / len(stats)
	cards := make([]string, len(stats))
	for i, s := range stats {
		cards[i] = card.RenderStat(s, width)
	}
	return card.Row(cards...) + "\n"
}

func (p overviewPage) stats() []card.Stat {
	if p.catalog == nil {
		placeholder := table.PlaceholderCell
		return []card.Stat{
			{Label: "Streams", Value: placeholder},
			{Label: "Events today", Value: placeholder},
			{Label: "Storage", Value: placeholder},
			{Label: "Active keys", Value: placeholder},
		}
	}

	streams := p.catalog.Records(dataset.Streams)
	degraded := len(streams) - countWhere(streams, "status", "healthy")
	streamStat := card.Stat{Label: "Streams", Value: fmt.Sprint(len(streams)), Delta: "all healthy"}
	if degraded > 0 {
		streamStat.Delta = fmt.Sprintf("%d need attention", degraded)
		streamStat.Trend = card.TrendDown
	}

	usage := p.catalog.Records(dataset.Usage)
	events := chart.FromRecords(usage, "date", "events")
	storage := chart.FromRecords(usage, "date", "storage_gb")

	active := countWhere(p.catalog.Records(dataset.APIKeys), "status", "active")

	return []card.Stat{
		streamStat,
		latestStat("Events today", events, func(v float64) string { return styles.FormatCount(int64(v)) }),
		latestStat("Storage", storage, func(v float64) string { return dataset.Gigabytes(v, nil, 0) }),
		{Label: "Active keys", Value: fmt.Sprint(active), Delta: fmt.Sprintf("%d total", p.catalog.Count(dataset.APIKeys))},
	}
}

func countWhere(records []table.Record, path, want string) int {
	n := 0
	for _, r := range records {
		if v, _ := table.Resolve(r, path); table.FormatValue(v) == want {
			n++
		}
	}
	return n
}

// latestStat summarizes the last point of a series with its change from the
// previous point.
func latestStat(label string, points []chart.Point, format func(float64) string) card.Stat {
	if len(points) == 0 {
		return card.Stat{Label: label, Value: "-"}
	}
	last := points[len(points)-1].Value
	s := card.Stat{Label: label, Value: format(last)}
	if len(points) < 2 || points[len(points)-2].Value == 0 {
		return s
	}
	prev := points[len(points)-2].Value
	change := (last - prev) / prev * 100
	s.Delta = fmt.Sprintf("%+.1f%% vs yesterday", change)
	switch {
	case change > 0:
		s.Trend = card.TrendUp
	case change < 0:
		s.Trend = card.TrendDown
	}
	return s
}

func (p overviewPage) renderChart() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).Render("Events per day")
	if p.catalog == nil {
		return title + "\n" + lipgloss.Place(p.width, chartHeight, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("Loading usage..."))
	}

	usage := p.catalog.Records(dataset.Usage)
	line := chart.Line(chart.FromRecords(usage, "date", "events"), p.width, chartHeight)

	label := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("Tokens ")
	spark := chart.Sparkline(chart.Values(chart.FromRecords(usage, "date", "tokens")), max(p.width-lipgloss.Width(label), 1))
	return title + "\n" + line + "\n" + label + spark
}
