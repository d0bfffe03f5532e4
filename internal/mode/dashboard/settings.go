package dashboard

import (
	"fmt"
	"maps"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/strata-labs/strata/internal/config"
	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/keys"
	"github.com/strata-labs/strata/internal/log"
	"github.com/strata-labs/strata/internal/mode"
	"github.com/strata-labs/strata/internal/ui/shared/badge"
	"github.com/strata-labs/strata/internal/ui/styles"
)

// Setting is one on/off preference.
type Setting struct {
	Key         string
	Label       string
	Description string
}

// Settings lists the preferences shown on the settings page.
var Settings = []Setting{
	{Key: "notifications", Label: "Email notifications", Description: "Weekly digest and incident emails"},
	{Key: "usage_alerts", Label: "Usage alerts", Description: "Warn when a plan allowance is 80% used"},
	{Key: "dark_charts", Label: "Dark charts", Description: "Use the dark palette for usage charts"},
}

// settingsSavedMsg reports the result of persisting settings.
type settingsSavedMsg struct {
	err error
}

type settingsPage struct {
	services   mode.Services
	values     map[string]bool
	cursor     int
	focused    bool
	width      int
	zonePrefix string
}

func newSettingsPage(services mode.Services) settingsPage {
	values := map[string]bool{}
	if services.Config != nil {
		values = maps.Clone(services.Config.Settings)
		if values == nil {
			values = map[string]bool{}
		}
	}
	return settingsPage{services: services, values: values, zonePrefix: zone.NewPrefix()}
}

// Value reports the current state of a setting.
func (p settingsPage) Value(key string) bool {
	return p.values[key]
}

func (p settingsPage) SetCatalog(*dataset.Catalog) Page { return p }

func (p settingsPage) SetSize(width, _ int) Page {
	p.width = width
	return p
}

func (p settingsPage) SetFocused(focused bool) Page {
	p.focused = focused
	return p
}

func (p settingsPage) Capturing() bool { return false }

func (p settingsPage) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatConfig, "save settings", msg.err)
			return p, setError("Could not save settings: " + msg.err.Error())
		}
		return p, setStatus("Settings saved")

	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, keys.Dashboard.Down):
			p.cursor = (p.cursor + 1) % len(Settings)
		case key.Matches(msg, keys.Dashboard.Up):
			p.cursor = (p.cursor - 1 + len(Settings)) % len(Settings)
		case key.Matches(msg, keys.Dashboard.Toggle):
			return p.toggle(p.cursor)
		}

	case tea.MouseMsg:
		if !isLeftClick(msg) {
			return p, nil
		}
		if i, ok := hitRow(p.zonePrefix, len(Settings), msg); ok {
			p.cursor = i
			return p.toggle(i)
		}
	}
	return p, nil
}

// toggle flips setting i and persists the new values when a config file is
// known.
func (p settingsPage) toggle(i int) (Page, tea.Cmd) {
	s := Settings[i]
	values := maps.Clone(p.values)
	values[s.Key] = !values[s.Key]
	p.values = values
	if p.services.Config != nil {
		p.services.Config.Settings = maps.Clone(values)
	}
	log.Debug(log.CatConfig, "setting toggled", "key", s.Key, "value", values[s.Key])

	state := "off"
	if values[s.Key] {
		state = "on"
	}
	status := setStatus(fmt.Sprintf("%s turned %s", s.Label, state))

	path := p.services.ConfigPath
	if path == "" {
		return p, status
	}
	save := func() tea.Msg {
		return settingsSavedMsg{err: config.SaveSettings(path, values)}
	}
	return p, tea.Batch(status, save)
}

func (p settingsPage) View() string {
	lines := make([]string, 0, len(Settings)*3)
	for i, s := range Settings {
		state := badge.Render(badge.Neutral, "off")
		if p.values[s.Key] {
			state = badge.Render(badge.Success, "on")
		}

		prefix := "  "
		if p.focused && i == p.cursor {
			prefix = styles.SelectionIndicatorStyle.Render("▌") + " "
		}
		label := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).Render(s.Label)
		desc := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(s.Description)

		row := prefix + label + "  " + state
		lines = append(lines, zone.Mark(rowZoneID(p.zonePrefix, i), row), "    "+desc)
		if i < len(Settings)-1 {
			lines = append(lines, "")
		}
	}

	note := "Changes apply to this session"
	if p.services.ConfigPath != "" {
		note = "Saved to " + p.services.ConfigPath
	}
	lines = append(lines, "", lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(note))

	return styles.RenderFormSection(lines, "Preferences", max(p.width, 20), p.focused)
}

func now(services mode.Services) time.Time {
	if services.Clock == nil {
		return time.Now()
	}
	return services.Clock.Now()
}
