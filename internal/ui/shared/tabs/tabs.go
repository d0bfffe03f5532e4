// Package tabs provides a single-selection tab strip.
package tabs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/strata-labs/strata/internal/ui/styles"
)

// Tab is one entry of the strip.
type Tab struct {
	ID    string
	Label string
}

// Model tracks which tab is active. Exactly one tab is active whenever the
// strip is non-empty.
type Model struct {
	tabs       []Tab
	active     int
	zonePrefix string
}

// New creates a strip with active selected. An unknown or empty active id
// selects the first tab.
func New(tabs []Tab, active string) Model {
	m := Model{tabs: tabs, zonePrefix: zone.NewPrefix()}
	return m.Select(active)
}

// Tabs returns the configured tabs.
func (m Model) Tabs() []Tab {
	return m.tabs
}

// Active returns the id of the active tab, or "" for an empty strip.
func (m Model) Active() string {
	if len(m.tabs) == 0 {
		return ""
	}
	return m.tabs[m.active].ID
}

// Select activates id. Unknown ids leave the selection unchanged.
func (m Model) Select(id string) Model {
	for i, t := range m.tabs {
		if t.ID == id {
			m.active = i
			break
		}
	}
	return m
}

// Next activates the following tab, wrapping at the end.
func (m Model) Next() Model {
	if len(m.tabs) > 0 {
		m.active = (m.active + 1) % len(m.tabs)
	}
	return m
}

// Prev activates the preceding tab, wrapping at the start.
func (m Model) Prev() Model {
	if len(m.tabs) > 0 {
		m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
	}
	return m
}

// HandleMouse selects a clicked tab. The bool reports whether a tab was hit.
func (m Model) HandleMouse(msg tea.MouseMsg) (Model, bool) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, false
	}
	for i, t := range m.tabs {
		if z := zone.Get(m.zonePrefix + t.ID); z != nil && z.InBounds(msg) {
			m.active = i
			return m, true
		}
	}
	return m, false
}

// Bar renders the tab labels with the active one underlined.
func (m Model) Bar() string {
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.AccentColor).Underline(true).Padding(0, 1)
	idleStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Padding(0, 1)

	parts := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		style := idleStyle
		if i == m.active {
			style = activeStyle
		}
		parts[i] = zone.Mark(m.zonePrefix+t.ID, style.Render(t.Label))
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render("│"))
}

// View renders the bar followed by the content render returns for the
// active tab id.
func (m Model) View(render func(active string) string) string {
	body := ""
	if render != nil {
		body = render(m.Active())
	}
	return m.Bar() + "\n" + body
}
