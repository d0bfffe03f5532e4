// Package marketing implements the landing page mode: an overview with
// feature cards, a pricing table and an FAQ.
package marketing

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/keys"
	"github.com/strata-labs/strata/internal/log"
	"github.com/strata-labs/strata/internal/mode"
	"github.com/strata-labs/strata/internal/ui/shared/markdown"
	"github.com/strata-labs/strata/internal/ui/shared/table"
	"github.com/strata-labs/strata/internal/ui/shared/tabs"
)

// Tab ids.
const (
	TabOverview = "overview"
	TabPricing  = "pricing"
	TabFAQ      = "faq"
)

// chrome is the number of lines used by the tab bar, rule and footer.
const chrome = 4

// Model is the marketing mode controller.
type Model struct {
	services mode.Services
	catalog  *dataset.Catalog

	tabs     tabs.Model
	viewport viewport.Model
	pricing  table.Model
	md       *markdown.Renderer
	help     help.Model
	ctaZone  string

	width  int
	height int
}

// New creates the marketing controller. catalog may be nil until the first
// CatalogMsg arrives; content renders in its loading state meanwhile.
func New(services mode.Services, catalog *dataset.Catalog) Model {
	m := Model{
		services: services,
		tabs: tabs.New([]tabs.Tab{
			{ID: TabOverview, Label: "Overview"},
			{ID: TabPricing, Label: "Pricing"},
			{ID: TabFAQ, Label: "FAQ"},
		}, TabOverview),
		viewport: viewport.New(0, 0),
		pricing: table.New(table.TableConfig{
			Columns:      dataset.Columns(dataset.Plans),
			ShowHeader:   true,
			ShowBorder:   true,
			Title:        "Plans",
			EmptyMessage: "Pricing is being updated",
		}),
		help:    help.New(),
		ctaZone: zone.NewPrefix() + "cta",
	}
	return m.setCatalog(catalog)
}

// Init implements mode.Controller.
func (m Model) Init() tea.Cmd {
	return nil
}

// ActiveTab returns the visible section id.
func (m Model) ActiveTab() string {
	return m.tabs.Active()
}

// Catalog returns the data currently shown.
func (m Model) Catalog() *dataset.Catalog {
	return m.catalog
}

func (m Model) setCatalog(catalog *dataset.Catalog) Model {
	m.catalog = catalog
	if catalog == nil {
		m.pricing = m.pricing.SetLoading(true)
	} else {
		m.pricing = m.pricing.SetLoading(false).SetRows(catalog.Records(dataset.Plans))
	}
	return m.refresh()
}

// SetSize implements mode.Controller.
func (m Model) SetSize(width, height int) mode.Controller {
	return m.resize(width, height)
}

func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-chrome, 1)
	m.help.Width = width

	style := ""
	if m.services.Config != nil {
		style = m.services.Config.UI.MarkdownStyle
	}
	md, err := markdown.New(max(width-4, 20), style)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown renderer", err)
		md = nil
	}
	m.md = md
	return m.refresh()
}

// refresh re-renders the active section into the viewport.
func (m Model) refresh() Model {
	if m.width <= 0 {
		return m
	}
	m.viewport.SetContent(m.renderSection(m.tabs.Active()))
	m.viewport.GotoTop()
	return m
}

// Update implements mode.Controller.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case mode.CatalogMsg:
		return m.setCatalog(msg.Catalog), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Common.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Common.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Marketing.CTA):
		return m, openDashboard
	case key.Matches(msg, keys.Marketing.NextTab):
		m.tabs = m.tabs.Next()
		return m.switched(), nil
	case key.Matches(msg, keys.Marketing.PrevTab):
		m.tabs = m.tabs.Prev()
		return m.switched(), nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (mode.Controller, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		if z := zone.Get(m.ctaZone); z != nil && z.InBounds(msg) {
			return m, openDashboard
		}
		if t, hit := m.tabs.HandleMouse(msg); hit {
			m.tabs = t
			return m.switched(), nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) switched() Model {
	log.Debug(log.CatUI, "marketing section", "tab", m.tabs.Active())
	return m.refresh()
}

func openDashboard() tea.Msg {
	return mode.SwitchModeMsg{To: mode.ModeDashboard}
}

// View implements mode.Controller.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return m.tabs.View(func(string) string {
		return m.renderBody()
	})
}
