// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// Common bindings shared by every mode.
var Common = struct {
	Quit       key.Binding
	SwitchMode key.Binding
	Help       key.Binding
	Escape     key.Binding
	Logs       key.Binding
}{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	SwitchMode: key.NewBinding(
		key.WithKeys("ctrl+@"),
		key.WithHelp("ctrl+space", "switch mode"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Logs: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "logs"),
	),
}

// Marketing bindings for the landing page.
var Marketing = struct {
	NextTab key.Binding
	PrevTab key.Binding
	CTA     key.Binding
	Up      key.Binding
	Down    key.Binding
}{
	NextTab: key.NewBinding(
		key.WithKeys("tab", "l", "right"),
		key.WithHelp("tab", "next section"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab", "h", "left"),
		key.WithHelp("shift+tab", "prev section"),
	),
	CTA: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open dashboard"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
}

// Dashboard bindings for the admin shell.
var Dashboard = struct {
	Up      key.Binding
	Down    key.Binding
	Focus   key.Binding
	Search  key.Binding
	Open    key.Binding
	Refresh key.Binding
	New     key.Binding
	Delete  key.Binding
	Copy    key.Binding
	Toggle  key.Binding
	NextTab key.Binding
	PrevTab key.Binding
}{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab", "enter"),
		key.WithHelp("tab", "focus page"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "revoke"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy id"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("]", "l"),
		key.WithHelp("]", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("[", "h"),
		key.WithHelp("[", "prev tab"),
	),
}

// Modal bindings for dialogs.
var Modal = struct {
	Submit  key.Binding
	Cancel  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding
}{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "prev field"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yes"),
	),
}

// DashboardHelp adapts the dashboard bindings to bubbles/help.
type DashboardHelp struct{}

// ShortHelp implements help.KeyMap.
func (DashboardHelp) ShortHelp() []key.Binding {
	return []key.Binding{Dashboard.Focus, Dashboard.Search, Dashboard.Refresh, Dashboard.New, Common.Help, Common.Quit}
}

// FullHelp implements help.KeyMap.
func (DashboardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{Dashboard.Up, Dashboard.Down, Dashboard.Focus, Common.Escape},
		{Dashboard.Search, Dashboard.Open, Dashboard.Refresh, Dashboard.New, Dashboard.Delete, Dashboard.Copy, Dashboard.Toggle},
		{Dashboard.NextTab, Dashboard.PrevTab},
		{Common.SwitchMode, Common.Help, Common.Quit},
	}
}

// MarketingHelp adapts the marketing bindings to bubbles/help.
type MarketingHelp struct{}

// ShortHelp implements help.KeyMap.
func (MarketingHelp) ShortHelp() []key.Binding {
	return []key.Binding{Marketing.NextTab, Marketing.CTA, Common.SwitchMode, Common.Quit}
}

// FullHelp implements help.KeyMap.
func (MarketingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{Marketing.NextTab, Marketing.PrevTab, Marketing.Up, Marketing.Down},
		{Marketing.CTA, Common.SwitchMode, Common.Quit},
	}
}
