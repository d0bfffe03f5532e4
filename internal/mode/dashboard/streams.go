package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/keys"
	"github.com/strata-labs/strata/internal/log"
	"github.com/strata-labs/strata/internal/mode"
	"github.com/strata-labs/strata/internal/ui/shared/table"
	"github.com/strata-labs/strata/internal/ui/styles"
)

// refreshDoneMsg ends a simulated refresh. records is nil when nothing was
// reloaded.
type refreshDoneMsg struct {
	seq     int
	records []table.Record
	err     error
}

type streamsPage struct {
	services mode.Services
	all      []table.Record
	list     tableView
	search   textinput.Model
	spinner  spinner.Model

	searching  bool
	loading    bool
	refreshSeq int
	hint       string

	width  int
	height int
}

func newStreamsPage(services mode.Services) streamsPage {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter by name, source, status, region or owner"
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(styles.SpinnerColor)

	return streamsPage{
		services: services,
		list:     newTableView(dataset.Streams, "Streams", emptyText(services)),
		search:   ti,
		spinner:  sp,
	}
}

func (p streamsPage) SetCatalog(cat *dataset.Catalog) Page {
	if cat == nil {
		p.list = p.list.setLoading(true)
		return p
	}
	p.all = cat.Records(dataset.Streams)
	return p.applyFilter()
}

func (p streamsPage) SetSize(width, height int) Page {
	p.width = width
	p.height = height
	p.search.Width = max(width-4, 10)
	p.list = p.list.setSize(width, max(height-2, 4))
	return p
}

func (p streamsPage) SetFocused(focused bool) Page {
	p.list = p.list.setFocused(focused)
	return p
}

func (p streamsPage) Capturing() bool { return p.searching }

// Query returns the current filter text.
func (p streamsPage) Query() string { return p.search.Value() }

// applyFilter narrows all by the search query. A query with no matches
// suggests the closest stream name.
func (p streamsPage) applyFilter() streamsPage {
	query := p.search.Value()
	filtered := dataset.Filter(p.all, query, dataset.SearchKeys(dataset.Streams)...)
	p.hint = ""

	empty := emptyText(p.services)
	if query != "" && len(filtered) == 0 {
		empty = fmt.Sprintf("No streams match %q", query)
		if s, ok := dataset.Suggest(query, dataset.Values(p.all, "name")); ok {
			p.hint = fmt.Sprintf("Did you mean %q?", s)
		}
	}
	p.list = p.list.setEmptyMessage(empty)
	p.list = p.list.setRecords(filtered).setLoading(p.loading)
	return p
}

func (p streamsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshDoneMsg:
		if msg.seq != p.refreshSeq {
			return p, nil
		}
		p.loading = false
		p.list = p.list.setLoading(false)
		if msg.err != nil {
			log.ErrorErr(log.CatData, "refresh streams", msg.err)
			return p, setError("Refresh failed: " + msg.err.Error())
		}
		if msg.records == nil {
			return p.applyFilter(), setStatus("Streams refreshed")
		}
		p.all = msg.records
		return p.applyFilter(), tea.Batch(updateCatalog(dataset.Streams, msg.records), setStatus("Streams refreshed"))

	case spinner.TickMsg:
		if !p.loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if p.searching {
			return p.updateSearch(msg)
		}
		return p.handleKey(msg)

	case tea.MouseMsg:
		p.list, _ = p.list.click(msg)
		return p, nil
	}

	if p.searching {
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p streamsPage) updateSearch(msg tea.KeyMsg) (Page, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		p.searching = false
		p.search.Blur()
		return p, nil
	}
	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	return p.applyFilter(), cmd
}

func (p streamsPage) handleKey(msg tea.KeyMsg) (Page, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Dashboard.Search):
		p.searching = true
		return p, p.search.Focus()
	case key.Matches(msg, keys.Dashboard.Refresh):
		return p.startRefresh()
	case key.Matches(msg, keys.Dashboard.Down):
		p.list = p.list.move(1)
	case key.Matches(msg, keys.Dashboard.Up):
		p.list = p.list.move(-1)
	}
	return p, nil
}

// startRefresh shows the loading state for the configured delay, then
// reloads streams from the store.
func (p streamsPage) startRefresh() (Page, tea.Cmd) {
	if p.loading {
		return p, nil
	}
	p.loading = true
	p.refreshSeq++
	p.list = p.list.setLoading(true)

	seq := p.refreshSeq
	store := p.services.Store
	delay := loadingDelay(p.services)
	log.Debug(log.CatData, "refresh streams", "delay", delay)

	done := tea.Tick(delay, func(time.Time) tea.Msg {
		if store == nil {
			return refreshDoneMsg{seq: seq}
		}
		ctx := context.Background()
		store.Invalidate(ctx, dataset.Streams)
		records, err := store.Get(ctx, dataset.Streams)
		return refreshDoneMsg{seq: seq, records: records, err: err}
	})
	return p, tea.Batch(p.spinner.Tick, done)
}

func (p streamsPage) View() string {
	muted := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	var bar string
	switch {
	case p.searching || p.search.Value() != "":
		bar = p.search.View()
	default:
		bar = muted.Render("Press / to search, r to refresh")
	}

	var info string
	switch {
	case p.loading:
		info = p.spinner.View() + " " + muted.Render("Refreshing streams...")
	case p.hint != "":
		info = lipgloss.NewStyle().Foreground(styles.StatusWarningColor).Render(p.hint)
	default:
		info = muted.Render(fmt.Sprintf("%d of %d streams", len(p.list.records), len(p.all)))
	}

	return bar + "\n" + info + "\n" + p.list.view()
}

func emptyText(services mode.Services) string {
	if services.Config != nil && services.Config.UI.EmptyText != "" {
		return services.Config.UI.EmptyText
	}
	return table.DefaultEmptyMessage
}

func loadingDelay(services mode.Services) time.Duration {
	if services.Config == nil {
		return 1500 * time.Millisecond
	}
	return services.Config.Loading.Delay
}
