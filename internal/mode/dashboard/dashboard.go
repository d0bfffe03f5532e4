// Package dashboard implements the admin dashboard mode: a sidebar, a top bar
// and one page per product area.
package dashboard

import (
	"maps"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/keys"
	"github.com/strata-labs/strata/internal/log"
	"github.com/strata-labs/strata/internal/mode"
	"github.com/strata-labs/strata/internal/mode/shared"
	"github.com/strata-labs/strata/internal/ui/modal"
	"github.com/strata-labs/strata/internal/ui/shared/sidebar"
	"github.com/strata-labs/strata/internal/ui/shared/topbar"
	"github.com/strata-labs/strata/internal/ui/styles"
)

// FocusPane represents which pane has focus.
type FocusPane int

const (
	// FocusSidebar means the navigation has focus.
	FocusSidebar FocusPane = iota
	// FocusPage means the page area has focus.
	FocusPage
)

const (
	tagQuit      = "quit"
	sidebarWidth = 22
	account      = "acme-analytics"
)

// Model holds the dashboard state.
type Model struct {
	services mode.Services
	catalog  *dataset.Catalog
	loadedAt time.Time

	sidebar sidebar.Model
	pages   map[string]Page
	current string
	focus   FocusPane

	modal      *modal.Model
	modalOwner string // page path that receives the modal result

	help      help.Model
	status    string
	statusErr bool

	width  int
	height int
}

// New creates the dashboard showing the page for path. catalog may be nil
// until the first CatalogMsg.
func New(services mode.Services, catalog *dataset.Catalog, path string) Model {
	m := Model{
		services: services,
		sidebar:  sidebar.New(Links, path),
		pages: map[string]Page{
			PathOverview: newOverviewPage(services),
			PathStreams:  newStreamsPage(services),
			PathBuckets:  newBucketsPage(services),
			PathModels:   newModelsPage(services),
			PathAPIKeys:  newAPIKeysPage(services),
			PathSettings: newSettingsPage(services),
		},
		current: ResolvePage(path),
		help:    help.New(),
	}
	m = m.setCatalog(catalog)
	if catalog != nil {
		m.loadedAt = now(services)
	}
	return m.setFocus(FocusSidebar)
}

// Init implements mode.Controller.
func (m Model) Init() tea.Cmd {
	return nil
}

// Current returns the path of the visible page.
func (m Model) Current() string { return m.current }

// Focus returns the focused pane.
func (m Model) Focus() FocusPane { return m.focus }

// Catalog returns the data currently shown.
func (m Model) Catalog() *dataset.Catalog { return m.catalog }

// ModalOpen reports whether a dialog is capturing input.
func (m Model) ModalOpen() bool { return m.modal != nil && m.modal.Open() }

// Status returns the footer status text and whether it is an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

// Page returns the page registered at path.
func (m Model) Page(path string) Page { return m.pages[path] }

func (m Model) setCatalog(cat *dataset.Catalog) Model {
	m.catalog = cat
	m.pages = maps.Clone(m.pages)
	for path, p := range m.pages {
		m.pages[path] = p.SetCatalog(cat)
	}
	return m
}

func (m Model) setFocus(focus FocusPane) Model {
	m.focus = focus
	m.sidebar = m.sidebar.SetFocused(focus == FocusSidebar)
	m.pages = maps.Clone(m.pages)
	for path, p := range m.pages {
		m.pages[path] = p.SetFocused(focus == FocusPage && path == m.current)
	}
	return m
}

func (m Model) navigate(path string) Model {
	target := ResolvePage(path)
	if target != m.current {
		log.Debug(log.CatUI, "navigate", "from", m.current, "to", target)
	}
	m.current = target
	m.sidebar = m.sidebar.SetCurrent(path)
	return m.setFocus(m.focus)
}

// SetSize implements mode.Controller.
func (m Model) SetSize(width, height int) mode.Controller {
	return m.resize(width, height)
}

func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height
	m.help.Width = width
	m.sidebar = m.sidebar.SetSize(sidebarWidth, max(height-1, 1))
	pw, ph := m.pageSize()
	m.pages = maps.Clone(m.pages)
	for path, p := range m.pages {
		m.pages[path] = p.SetSize(pw, ph)
	}
	if m.modal != nil {
		mdl := *m.modal
		mdl.SetSize(width, height)
		m.modal = &mdl
	}
	return m
}

// pageSize returns the area left for a page after the sidebar, top bar and
// footer.
func (m Model) pageSize() (int, int) {
	return max(m.width-sidebarWidth-2, 20), max(m.height-3, 6)
}

// Update implements mode.Controller.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case mode.CatalogMsg:
		m = m.setCatalog(msg.Catalog)
		m.loadedAt = now(m.services)
		return m, nil

	case catalogUpdateMsg:
		m = m.setCatalog(m.catalog.With(msg.name, msg.records))
		return m, nil

	case statusMsg:
		m.status = msg.text
		m.statusErr = msg.isErr
		return m, nil

	case openModalMsg:
		mdl := modal.New(msg.config)
		mdl.SetSize(m.width, m.height)
		m.modal = &mdl
		m.modalOwner = m.current
		return m, mdl.Init()

	case modal.SubmitMsg:
		owner := m.modalOwner
		m.modal = nil
		if msg.Tag == tagQuit {
			return m, tea.Quit
		}
		return m.forward(owner, msg)

	case modal.CancelMsg:
		owner := m.modalOwner
		m.modal = nil
		if msg.Tag == tagQuit {
			return m, nil
		}
		return m.forward(owner, msg)

	case sidebar.NavigateMsg:
		return m.navigate(msg.Path), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Background messages (spinner ticks, refresh results, saves) go to
	// every page; each ignores what it does not own.
	var cmds []tea.Cmd
	m.pages = maps.Clone(m.pages)
	for path, p := range m.pages {
		var cmd tea.Cmd
		m.pages[path], cmd = p.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.modal != nil {
		mdl, cmd := m.modal.Update(msg)
		m.modal = &mdl
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) forward(path string, msg tea.Msg) (Model, tea.Cmd) {
	p, ok := m.pages[path]
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.pages = maps.Clone(m.pages)
	m.pages[path], cmd = p.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, keys.Common.Quit) {
		if m.modal != nil && m.modal.Tag() == tagQuit {
			return m, tea.Quit
		}
		mdl := modal.New(modal.Config{
			Tag:            tagQuit,
			Title:          "Quit strata",
			Message:        "Are you sure you want to exit?",
			ConfirmLabel:   "Quit",
			ConfirmVariant: modal.ButtonDanger,
		})
		mdl.SetSize(m.width, m.height)
		m.modal = &mdl
		m.modalOwner = ""
		return m, mdl.Init()
	}

	// An open dialog takes every key.
	if m.modal != nil {
		mdl, cmd := m.modal.Update(msg)
		m.modal = &mdl
		return m, cmd
	}

	if page := m.pages[m.current]; m.focus == FocusPage && page.Capturing() {
		return m.forward(m.current, msg)
	}

	if key.Matches(msg, keys.Common.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.focus == FocusSidebar {
		if key.Matches(msg, keys.Dashboard.Focus) {
			return m.setFocus(FocusPage), nil
		}
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, keys.Common.Escape) || msg.Type == tea.KeyTab {
		return m.setFocus(FocusSidebar), nil
	}
	return m.forward(m.current, msg)
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.modal != nil {
		mdl, cmd := m.modal.Update(msg)
		m.modal = &mdl
		return m, cmd
	}

	var navCmd, pageCmd tea.Cmd
	m.sidebar, navCmd = m.sidebar.Update(msg)
	m, pageCmd = m.forward(m.current, msg)
	return m, tea.Batch(navCmd, pageCmd)
}

// View implements mode.Controller.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	pw, ph := m.pageSize()
	header := topbar.View(topbar.Config{
		Title:   pageLabel(m.current),
		Path:    m.current,
		Labels:  crumbLabels,
		Account: account,
		Width:   pw,
	})
	body := m.pages[m.current].View()
	if m.help.ShowAll {
		body = m.help.FullHelpView(keys.DashboardHelp{}.FullHelp())
	}
	page := lipgloss.NewStyle().Width(pw).Height(ph).MaxHeight(ph).Render(body)
	right := header + "\n" + page

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), " ", right)
	content := main + "\n" + m.renderFooter()

	if m.modal != nil {
		return m.modal.Overlay(content)
	}
	return content
}

func (m Model) renderFooter() string {
	right := "loaded " + shared.Since(m.loadedAt, clockOf(m.services))
	if m.catalog == nil {
		right = "loading data..."
	}
	if m.status != "" {
		color := styles.StatusSuccessColor
		if m.statusErr {
			color = styles.StatusErrorColor
		}
		right = lipgloss.NewStyle().Foreground(color).Render(m.status)
	}
	right = styles.TruncateString(right, m.width)

	h := m.help
	h.Width = max(m.width-lipgloss.Width(right)-1, 0)
	left := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(h.ShortHelpView(keys.DashboardHelp{}.ShortHelp()))

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + strings.Repeat(" ", gap) + right
}

func clockOf(services mode.Services) shared.Clock {
	if services.Clock == nil {
		return shared.RealClock{}
	}
	return services.Clock
}
