// Package app contains the root application model.
package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/strata-labs/strata/internal/config"
	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/flags"
	"github.com/strata-labs/strata/internal/keys"
	"github.com/strata-labs/strata/internal/log"
	"github.com/strata-labs/strata/internal/mode"
	"github.com/strata-labs/strata/internal/mode/dashboard"
	"github.com/strata-labs/strata/internal/mode/marketing"
	"github.com/strata-labs/strata/internal/mode/shared"
	"github.com/strata-labs/strata/internal/pubsub"
	"github.com/strata-labs/strata/internal/ui/overlay"
	"github.com/strata-labs/strata/internal/ui/shared/panes"
	"github.com/strata-labs/strata/internal/ui/styles"
	"github.com/strata-labs/strata/internal/watcher"
)

// maxLogLines bounds the debug log pane.
const maxLogLines = 200

// catalogLoadedMsg carries the result of a background catalog load.
type catalogLoadedMsg struct {
	catalog *dataset.Catalog
	err     error
}

// Options configures a new application model.
type Options struct {
	Config     config.Config
	ConfigPath string
	Store      *dataset.Store
	Debug      bool
	// WatchDir enables reloading when dataset files under it change.
	WatchDir string
}

// Model is the root application state.
type Model struct {
	// Mode management
	currentMode mode.AppMode
	marketing   mode.Controller
	dashboard   mode.Controller

	// Shared services (passed to mode controllers)
	services mode.Services

	width  int
	height int

	loadErr error

	debugMode   bool
	showLogs    bool
	logLines    []string
	logCtx      context.Context
	logCancel   context.CancelFunc
	logListener *pubsub.Listener[string]

	// File watcher for reloading datasets
	watcherHandle   *watcher.Watcher
	watcherCtx      context.Context
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.Listener[[]string]
}

// New creates the application model. Data is loaded asynchronously by Init.
func New(opts Options) Model {
	cfg := opts.Config
	services := mode.Services{
		Config:     &cfg,
		ConfigPath: opts.ConfigPath,
		Store:      opts.Store,
		Flags:      flags.New(cfg.Flags),
		Clock:      shared.RealClock{},
		Clipboard:  shared.SystemClipboard{},
	}

	m := Model{
		currentMode: startMode(cfg, services.Flags),
		marketing:   marketing.New(services, nil),
		dashboard:   dashboard.New(services, nil, cfg.UI.StartPage),
		services:    services,
		debugMode:   opts.Debug,
	}

	if opts.Debug {
		m.logCtx, m.logCancel = context.WithCancel(context.Background())
		m.logListener = log.NewListener(m.logCtx)
	}

	if cfg.AutoReload && opts.WatchDir != "" {
		w, err := watcher.New(watcher.DefaultConfig(opts.WatchDir))
		if err == nil {
			if err := w.Start(); err == nil {
				m.watcherHandle = w
				m.watcherCtx, m.watcherCancel = context.WithCancel(context.Background())
				m.watcherListener = pubsub.Listen(m.watcherCtx, w.Broker())
			} else {
				_ = w.Stop()
				log.Warn(log.CatWatcher, "watcher start failed", "error", err)
			}
		} else {
			log.Warn(log.CatWatcher, "watcher init failed", "error", err)
		}
	}
	return m
}

// startMode picks the initial mode. The marketing pages can be switched off
// with a flag, in which case the app always starts on the dashboard.
func startMode(cfg config.Config, f *flags.Registry) mode.AppMode {
	if !f.Enabled(flags.FlagMarketing) {
		return mode.ModeDashboard
	}
	return mode.ParseMode(cfg.UI.StartMode)
}

// Init implements tea.Model. It starts the catalog load and any listeners.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		m.loadCatalog(),
		m.marketing.Init(),
		m.dashboard.Init(),
	}
	if m.watcherListener != nil {
		cmds = append(cmds, m.watcherListener.Next())
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Next())
	}
	return tea.Batch(cmds...)
}

func (m Model) loadCatalog() tea.Cmd {
	store := m.services.Store
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		cat, err := store.Catalog(context.Background())
		return catalogLoadedMsg{catalog: cat, err: err}
	}
}

// CurrentMode returns the active mode.
func (m Model) CurrentMode() mode.AppMode {
	return m.currentMode
}

func (m Model) active() mode.Controller {
	if m.currentMode == mode.ModeDashboard {
		return m.dashboard
	}
	return m.marketing
}

func (m Model) setActive(c mode.Controller) Model {
	if m.currentMode == mode.ModeDashboard {
		m.dashboard = c
	} else {
		m.marketing = c
	}
	return m
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.marketing = m.marketing.SetSize(msg.Width, msg.Height)
		m.dashboard = m.dashboard.SetSize(msg.Width, msg.Height)
		return m, nil

	case catalogLoadedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatData, "load catalog", msg.err)
			m.loadErr = msg.err
			return m, nil
		}
		m.loadErr = nil
		log.Info(log.CatData, "catalog loaded", "datasets", len(dataset.Names))
		return m.broadcast(mode.CatalogMsg{Catalog: msg.catalog})

	case pubsub.Event[[]string]:
		return m.handleWatcherEvent(msg)

	case pubsub.Event[string]:
		m.logLines = append(m.logLines, strings.TrimRight(msg.Payload, "\n"))
		if len(m.logLines) > maxLogLines {
			m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
		}
		return m, m.logListener.Next()

	case mode.SwitchModeMsg:
		return m.switchTo(msg.To), nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Common.SwitchMode) {
			next := mode.ModeDashboard
			if m.currentMode == mode.ModeDashboard {
				next = mode.ModeMarketing
			}
			return m.switchTo(next), nil
		}
		if m.debugMode && key.Matches(msg, keys.Common.Logs) {
			m.showLogs = !m.showLogs
			return m, nil
		}
		return m.updateActive(msg)

	case tea.MouseMsg:
		return m.updateActive(msg)
	}

	// Timers and results may belong to the inactive mode.
	return m.broadcast(msg)
}

func (m Model) updateActive(msg tea.Msg) (Model, tea.Cmd) {
	c, cmd := m.active().Update(msg)
	return m.setActive(c), cmd
}

func (m Model) broadcast(msg tea.Msg) (Model, tea.Cmd) {
	var mcmd, dcmd tea.Cmd
	m.marketing, mcmd = m.marketing.Update(msg)
	m.dashboard, dcmd = m.dashboard.Update(msg)
	return m, tea.Batch(mcmd, dcmd)
}

func (m Model) switchTo(target mode.AppMode) Model {
	if target == mode.ModeMarketing && !m.services.Flags.Enabled(flags.FlagMarketing) {
		return m
	}
	if target != m.currentMode {
		log.Info(log.CatMode, "switching mode", "from", m.currentMode, "to", target)
	}
	m.currentMode = target
	return m
}

func (m Model) handleWatcherEvent(ev pubsub.Event[[]string]) (Model, tea.Cmd) {
	next := m.watcherListener.Next()
	switch ev.Kind {
	case pubsub.KindChanged:
		names := make([]dataset.Name, 0, len(ev.Payload))
		for _, n := range ev.Payload {
			if name, err := dataset.ParseName(n); err == nil {
				names = append(names, name)
			}
		}
		if len(names) == 0 || m.services.Store == nil {
			return m, next
		}
		log.Info(log.CatWatcher, "datasets changed", "names", ev.Payload)
		m.services.Store.Invalidate(context.Background(), names...)
		return m, tea.Batch(m.loadCatalog(), next)

	case pubsub.KindFailed:
		log.Warn(log.CatWatcher, "watcher error", "files", ev.Payload)
	}
	return m, next
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.active().View()

	if m.loadErr != nil && m.width > 0 {
		banner := lipgloss.NewStyle().
			Foreground(styles.StatusErrorColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.StatusErrorColor).
			Padding(0, 1).
			Render("Could not load data: " + styles.TruncateString(m.loadErr.Error(), max(m.width-30, 10)))
		view = overlay.Place(overlay.Config{Width: m.width, Height: m.height, Position: overlay.Bottom, PadY: 1}, banner, view)
	}

	if m.showLogs && m.width > 0 {
		view = overlay.Place(overlay.Config{Width: m.width, Height: m.height}, m.renderLogs(), view)
	}

	return zone.Scan(view)
}

func (m Model) renderLogs() string {
	w := max(m.width*4/5, 20)
	h := max(m.height*2/3, 6)
	src := m.logLines
	if len(src) > h-2 {
		src = src[len(src)-(h-2):]
	}
	lines := make([]string, len(src))
	for i, l := range src {
		lines[i] = styles.TruncateString(l, w-2)
	}
	return panes.BorderedPane(panes.BorderConfig{
		Content:            strings.Join(lines, "\n"),
		Width:              w,
		Height:             h,
		TopLeft:            "Logs",
		TopRight:           "ctrl+x to close",
		Focused:            true,
		FocusedBorderColor: styles.OverlayBorderColor,
	})
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.logCancel != nil {
		m.logCancel()
	}
	if m.watcherCancel != nil {
		m.watcherCancel()
	}
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}
