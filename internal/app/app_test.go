package app

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-labs/strata/internal/config"
	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/flags"
	"github.com/strata-labs/strata/internal/mode"
	"github.com/strata-labs/strata/internal/mode/dashboard"
	"github.com/strata-labs/strata/internal/pubsub"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	zone.NewGlobal()
	os.Exit(m.Run())
}

// createTestModel creates a sized Model over the embedded datasets.
func createTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Defaults()
	cfg.UI.MarkdownStyle = "plain"
	m := New(Options{Config: cfg, Store: dataset.NewStore(dataset.DefaultFS(), false)})
	return update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func loaded(t *testing.T, m Model) Model {
	t.Helper()
	cat, err := m.services.Store.Catalog(context.Background())
	require.NoError(t, err)
	return update(m, catalogLoadedMsg{catalog: cat})
}

func plain(m Model) string {
	return ansi.Strip(m.View())
}

func TestApp_DefaultMode(t *testing.T) {
	m := createTestModel(t)
	assert.Equal(t, mode.ModeMarketing, m.CurrentMode(), "expected default mode to be marketing")
}

func TestApp_StartModeFromConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.UI.StartMode = config.ModeDashboard
	m := New(Options{Config: cfg})
	assert.Equal(t, mode.ModeDashboard, m.CurrentMode())
}

func TestApp_MarketingFlagOffForcesDashboard(t *testing.T) {
	cfg := config.Defaults()
	cfg.Flags = map[string]bool{flags.FlagMarketing: false}
	m := New(Options{Config: cfg})
	assert.Equal(t, mode.ModeDashboard, m.CurrentMode())

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlAt})
	assert.Equal(t, mode.ModeDashboard, m.CurrentMode(), "marketing must stay unreachable")
}

func TestApp_WindowSizeMsg(t *testing.T) {
	m := createTestModel(t)
	m = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, m.width, "expected width to be updated")
	assert.Equal(t, 30, m.height, "expected height to be updated")
}

func TestApp_CtrlSpaceSwitchesMode(t *testing.T) {
	m := createTestModel(t)

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlAt})
	assert.Equal(t, mode.ModeDashboard, m.CurrentMode(), "mode should switch to dashboard")

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlAt})
	assert.Equal(t, mode.ModeMarketing, m.CurrentMode(), "mode should switch back to marketing")
}

func TestApp_SwitchModeMsg(t *testing.T) {
	m := createTestModel(t)
	m = update(m, mode.SwitchModeMsg{To: mode.ModeDashboard})
	assert.Equal(t, mode.ModeDashboard, m.CurrentMode())
}

func TestApp_CTAOpensDashboard(t *testing.T) {
	m := loaded(t, createTestModel(t))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	m = update(m, cmd())

	assert.Equal(t, mode.ModeDashboard, m.CurrentMode())
}

func TestApp_CatalogBroadcastToBothModes(t *testing.T) {
	m := loaded(t, createTestModel(t))

	assert.Contains(t, plain(m), "Strata")
	assert.NotContains(t, plain(m), "Loading features...")

	m = update(m, mode.SwitchModeMsg{To: mode.ModeDashboard})
	view := plain(m)
	assert.Contains(t, view, "raw-events", "dashboard should already have the catalog")
	assert.NotNil(t, m.dashboard.(dashboard.Model).Catalog())
}

func TestApp_LoadErrorShowsBanner(t *testing.T) {
	m := createTestModel(t)
	m = update(m, catalogLoadedMsg{err: errors.New("streams.yaml: bad indent")})

	assert.Contains(t, plain(m), "Could not load data: streams.yaml: bad indent")

	m = loaded(t, m)
	assert.NotContains(t, plain(m), "Could not load data")
}

func TestApp_WatcherEventReloadsChangedDatasets(t *testing.T) {
	m := createTestModel(t)
	store := m.services.Store
	_, err := store.Catalog(context.Background())
	require.NoError(t, err)

	broker := pubsub.NewBroker[[]string]()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.watcherListener = pubsub.Listen(ctx, broker)

	before := store.Stats()
	_, err = store.Get(context.Background(), dataset.Streams)
	require.NoError(t, err)
	assert.Equal(t, before.Misses, store.Stats().Misses, "streams should be cached")

	next, cmd := m.Update(pubsub.Event[[]string]{Kind: pubsub.KindChanged, Payload: []string{"streams", "notes"}})
	m = next.(Model)
	assert.NotNil(t, cmd, "expected reload and re-listen commands")

	before = store.Stats()
	_, err = store.Get(context.Background(), dataset.Streams)
	require.NoError(t, err)
	assert.Equal(t, before.Misses+1, store.Stats().Misses, "streams should have been invalidated")
}

func TestApp_WatcherFailureKeepsListening(t *testing.T) {
	m := createTestModel(t)
	broker := pubsub.NewBroker[[]string]()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.watcherListener = pubsub.Listen(ctx, broker)

	_, cmd := m.Update(pubsub.Event[[]string]{Kind: pubsub.KindFailed, Payload: []string{"streams.yaml"}})
	assert.NotNil(t, cmd)
}

func TestApp_LogPane(t *testing.T) {
	m := createTestModel(t)
	m.debugMode = true

	m = update(m, pubsub.Event[string]{Kind: pubsub.KindLogged, Payload: "12:00:00 [INFO] [data] catalog loaded\n"})
	require.Len(t, m.logLines, 1)

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	view := plain(m)
	assert.Contains(t, view, "Logs")
	assert.Contains(t, view, "catalog loaded")

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.NotContains(t, plain(m), "ctrl+x to close")
}

func TestApp_LogPaneDisabledWithoutDebug(t *testing.T) {
	m := createTestModel(t)
	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.False(t, m.showLogs)
}

func TestApp_LogLinesBounded(t *testing.T) {
	m := createTestModel(t)
	for range maxLogLines + 10 {
		m = update(m, pubsub.Event[string]{Kind: pubsub.KindLogged, Payload: "line"})
	}
	assert.Len(t, m.logLines, maxLogLines)
}

func TestApp_CloseWithoutWatcher(t *testing.T) {
	m := createTestModel(t)
	assert.NoError(t, m.Close())
}

func TestApp_Program(t *testing.T) {
	cfg := config.Defaults()
	cfg.UI.MarkdownStyle = "plain"
	m := New(Options{Config: cfg, Store: dataset.NewStore(dataset.DefaultFS(), false)})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return strings.Contains(ansi.Strip(string(out)), "Strata")
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second))
	assert.Equal(t, mode.ModeMarketing, final.(Model).CurrentMode())
}
