package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/keys"
	"github.com/strata-labs/strata/internal/mode"
	"github.com/strata-labs/strata/internal/ui/modal"
	"github.com/strata-labs/strata/internal/ui/shared/table"
	"github.com/strata-labs/strata/internal/ui/shared/tabs"
	"github.com/strata-labs/strata/internal/ui/styles"
)

// Models page tab ids.
const (
	TabRegistry    = "registry"
	TabDeployments = "deployments"
)

const tagInspectModel = "inspect-model"

type modelsPage struct {
	services    mode.Services
	tabs        tabs.Model
	all         []table.Record
	deployed    []table.Record
	registry    tableView
	deployments tableView
	search      textinput.Model
	searching   bool
}

func newModelsPage(services mode.Services) modelsPage {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter by name, framework or status"
	ti.CharLimit = 64

	return modelsPage{
		services: services,
		tabs: tabs.New([]tabs.Tab{
			{ID: TabRegistry, Label: "Registry"},
			{ID: TabDeployments, Label: "Deployments"},
		}, TabRegistry),
		registry:    newTableView(dataset.Models, "Models", emptyText(services)),
		deployments: newTableView(dataset.Deployments, "Deployments", emptyText(services)),
		search:      ti,
	}
}

func (p modelsPage) SetCatalog(cat *dataset.Catalog) Page {
	if cat == nil {
		p.registry = p.registry.setLoading(true)
		p.deployments = p.deployments.setLoading(true)
		return p
	}
	p.all = cat.Records(dataset.Models)
	p.deployed = cat.Records(dataset.Deployments)
	p.deployments = p.deployments.setRecords(p.deployed).setLoading(false)
	return p.applyFilter()
}

func (p modelsPage) SetSize(width, height int) Page {
	h := max(height-1, 4)
	p.search.Width = max(width-4, 10)
	p.registry = p.registry.setSize(width, max(h-1, 4))
	p.deployments = p.deployments.setSize(width, h)
	return p
}

func (p modelsPage) SetFocused(focused bool) Page {
	p.registry = p.registry.setFocused(focused)
	p.deployments = p.deployments.setFocused(focused)
	return p
}

func (p modelsPage) Capturing() bool { return p.searching }

// Query returns the registry filter text.
func (p modelsPage) Query() string { return p.search.Value() }

func (p modelsPage) applyFilter() modelsPage {
	query := p.search.Value()
	filtered := dataset.Filter(p.all, query, dataset.SearchKeys(dataset.Models)...)

	empty := emptyText(p.services)
	if query != "" && len(filtered) == 0 {
		empty = fmt.Sprintf("No models match %q", query)
	}
	p.registry = p.registry.setEmptyMessage(empty).setRecords(filtered).setLoading(false)
	return p
}

// active returns a pointer to the table of the visible tab.
func (p *modelsPage) active() *tableView {
	if p.tabs.Active() == TabDeployments {
		return &p.deployments
	}
	return &p.registry
}

func (p modelsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.searching {
			return p.updateSearch(msg)
		}
		switch {
		case key.Matches(msg, keys.Dashboard.Search):
			if p.tabs.Active() != TabRegistry {
				return p, nil
			}
			p.searching = true
			return p, p.search.Focus()
		case key.Matches(msg, keys.Dashboard.Open):
			return p, p.inspect()
		case key.Matches(msg, keys.Dashboard.NextTab):
			p.tabs = p.tabs.Next()
		case key.Matches(msg, keys.Dashboard.PrevTab):
			p.tabs = p.tabs.Prev()
		case key.Matches(msg, keys.Dashboard.Down):
			t := p.active()
			*t = t.move(1)
		case key.Matches(msg, keys.Dashboard.Up):
			t := p.active()
			*t = t.move(-1)
		}

	case tea.MouseMsg:
		if next, hit := p.tabs.HandleMouse(msg); hit {
			p.tabs = next
			return p, nil
		}
		t := p.active()
		*t, _ = t.click(msg)
	}

	if p.searching {
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p modelsPage) updateSearch(msg tea.KeyMsg) (Page, tea.Cmd) {
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

// inspect opens a read-only dialog for the selected registry model.
func (p modelsPage) inspect() tea.Cmd {
	if p.tabs.Active() != TabRegistry {
		return nil
	}
	rec, ok := p.registry.selected()
	if !ok {
		return nil
	}
	return openModal(modal.Config{
		Tag:          tagInspectModel,
		Title:        table.FormatValue(rec["name"]),
		Message:      p.describe(rec),
		ConfirmLabel: "Close",
		MinWidth:     44,
	})
}

// describe lists one model's details, one "label  value" pair per line.
func (p modelsPage) describe(rec table.Record) string {
	name := table.FormatValue(rec["name"])
	field := func(path string) any {
		v, _ := table.Resolve(rec, path)
		return v
	}

	endpoints := dataset.Values(dataset.Where(p.deployed, "model", name), "endpoint")
	deployed := "none"
	if len(endpoints) > 0 {
		deployed = strings.Join(endpoints, ", ")
	}

	rows := [][2]string{
		{"Version", table.FormatValue(field("version"))},
		{"Framework", table.FormatValue(field("framework"))},
		{"Status", table.FormatValue(field("status"))},
		{"Accuracy", dataset.Percent(field("metrics.accuracy"), rec, 0)},
		{"AUC", dataset.Percent(field("metrics.auc"), rec, 0)},
		{"Updated", table.FormatValue(field("updated"))},
		{"Endpoints", deployed},
	}

	label := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Width(11)
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = label.Render(r[0]) + r[1]
	}
	return strings.Join(lines, "\n")
}

func (p modelsPage) View() string {
	return p.tabs.View(func(active string) string {
		if active == TabDeployments {
			return p.deployments.view()
		}
		var bar string
		if p.searching || p.search.Value() != "" {
			bar = p.search.View()
		} else {
			bar = lipgloss.NewStyle().Foreground(styles.TextMutedColor).
				Render(fmt.Sprintf("%d models. Press / to search, enter to inspect", len(p.all)))
		}
		return bar + "\n" + p.registry.view()
	})
}
