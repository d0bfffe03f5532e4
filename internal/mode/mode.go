// Package mode defines the mode controller interface and shared services.
package mode

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/strata-labs/strata/internal/config"
	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/flags"
	"github.com/strata-labs/strata/internal/mode/shared"
)

// AppMode identifies the current application mode.
type AppMode int

const (
	ModeMarketing AppMode = iota
	ModeDashboard
)

func (m AppMode) String() string {
	if m == ModeDashboard {
		return config.ModeDashboard
	}
	return config.ModeMarketing
}

// ParseMode maps a config start_mode value to an AppMode. Anything other than
// "dashboard" is marketing.
func ParseMode(s string) AppMode {
	if s == config.ModeDashboard {
		return ModeDashboard
	}
	return ModeMarketing
}

// Controller defines the interface all modes must implement.
type Controller interface {
	// Init returns initial commands for the mode.
	Init() tea.Cmd

	// Update handles messages and returns updated model and commands.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the mode's UI.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) Controller
}

// SwitchModeMsg asks the app to activate another mode.
type SwitchModeMsg struct {
	To AppMode
}

// CatalogMsg delivers a freshly loaded catalog to every controller.
type CatalogMsg struct {
	Catalog *dataset.Catalog
}

// Services contains shared dependencies injected into mode controllers.
type Services struct {
	Config     *config.Config
	ConfigPath string // Empty disables persisting settings
	Store      *dataset.Store
	Flags      *flags.Registry
	Clock      shared.Clock
	Clipboard  shared.Clipboard
}
