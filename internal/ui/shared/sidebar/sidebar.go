// Package sidebar renders the dashboard navigation.
package sidebar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/strata-labs/strata/internal/keys"
	"github.com/strata-labs/strata/internal/ui/styles"
)

// Link is one navigation entry.
type Link struct {
	Label string
	Path  string
	Icon  string
	Exact bool // Only highlight on an exact path match
}

// NavigateMsg asks the owner to show Path.
type NavigateMsg struct {
	Path string
}

// IsActive reports whether link should be highlighted for current. A link
// matches its own path, and unless Exact is set, any path below it. The
// prefix must end at a "/" so /keys does not match /keys-archive.
func IsActive(link Link, current string) bool {
	if current == link.Path {
		return true
	}
	if link.Exact {
		return false
	}
	return strings.HasPrefix(current, strings.TrimSuffix(link.Path, "/")+"/")
}

// Model is the sidebar state.
type Model struct {
	links      []Link
	current    string
	cursor     int
	focused    bool
	width      int
	height     int
	zonePrefix string
}

// New creates a sidebar with the cursor on the link active for current.
func New(links []Link, current string) Model {
	m := Model{links: links, width: 22, zonePrefix: zone.NewPrefix()}
	return m.SetCurrent(current)
}

// SetCurrent records the shown path and moves the cursor to its link.
func (m Model) SetCurrent(path string) Model {
	m.current = path
	for i, l := range m.links {
		if IsActive(l, path) {
			m.cursor = i
			break
		}
	}
	return m
}

// SetFocused toggles keyboard focus.
func (m Model) SetFocused(focused bool) Model {
	m.focused = focused
	return m
}

// SetSize sets the render dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Current returns the shown path.
func (m Model) Current() string {
	return m.current
}

// Cursor returns the index of the link under the keyboard cursor.
func (m Model) Cursor() int {
	return m.cursor
}

// Links returns the configured links.
func (m Model) Links() []Link {
	return m.links
}

// Update moves the cursor with j/k and navigates live so the page follows
// the cursor. Mouse clicks on a link navigate regardless of focus.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused || len(m.links) == 0 {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Dashboard.Down):
			m.cursor = (m.cursor + 1) % len(m.links)
			return m, m.navigate(m.cursor)
		case key.Matches(msg, keys.Dashboard.Up):
			m.cursor = (m.cursor - 1 + len(m.links)) % len(m.links)
			return m, m.navigate(m.cursor)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for i := range m.links {
			if z := zone.Get(m.ZoneID(i)); z != nil && z.InBounds(msg) {
				m.cursor = i
				return m, m.navigate(i)
			}
		}
	}
	return m, nil
}

// ZoneID returns the bubblezone id of link i.
func (m Model) ZoneID(i int) string {
	return m.zonePrefix + m.links[i].Path
}

func (m Model) navigate(i int) tea.Cmd {
	path := m.links[i].Path
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// View renders the brand mark and the links.
func (m Model) View() string {
	brand := lipgloss.NewStyle().Bold(true).Foreground(styles.AccentColor).Padding(0, 1).Render("◆ strata")

	lines := []string{brand, ""}
	for i, l := range m.links {
		lines = append(lines, zone.Mark(m.ZoneID(i), m.renderLink(i, l)))
	}

	content := strings.Join(lines, "\n")
	style := lipgloss.NewStyle().
		Width(m.width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(styles.BorderDefaultColor)
	if m.focused {
		style = style.BorderForeground(styles.BorderHighlightFocusColor)
	}
	if m.height > 0 {
		style = style.Height(m.height)
	}
	return style.Render(content)
}

func (m Model) renderLink(i int, l Link) string {
	label := l.Label
	if l.Icon != "" {
		label = l.Icon + " " + label
	}
	label = styles.TruncateString(label, max(m.width-3, 1))

	prefix := "  "
	style := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
	if IsActive(l, m.current) {
		style = lipgloss.NewStyle().Bold(true).Foreground(styles.AccentColor)
	}
	if m.focused && i == m.cursor {
		prefix = styles.SelectionIndicatorStyle.Render("▌") + " "
	}
	return prefix + style.Render(label)
}
