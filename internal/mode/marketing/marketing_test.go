package marketing

import (
	"context"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/strata-labs/strata/internal/config"
	"github.com/strata-labs/strata/internal/dataset"
	"github.com/strata-labs/strata/internal/mode"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newTestModel(t *testing.T, loaded bool) Model {
	t.Helper()
	cfg := config.Defaults()
	cfg.UI.MarkdownStyle = "plain"

	var cat *dataset.Catalog
	if loaded {
		var err error
		cat, err = dataset.Load(context.Background(), dataset.DefaultFS())
		require.NoError(t, err)
	}
	m := New(mode.Services{Config: &cfg}, cat)
	return m.SetSize(100, 40).(Model)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func view(m Model) string {
	return ansi.Strip(zone.Scan(m.View()))
}

func TestView_LoadingUntilCatalog(t *testing.T) {
	m := newTestModel(t, false)

	out := view(m)
	require.Contains(t, out, "Overview")
	require.Contains(t, out, "Strata")
	require.Contains(t, out, "Loading features...")

	cat, err := dataset.Load(context.Background(), dataset.DefaultFS())
	require.NoError(t, err)
	m, _ = update(t, m, mode.CatalogMsg{Catalog: cat})

	out = view(m)
	require.NotContains(t, out, "Loading features...")
	require.Contains(t, out, "Streaming ingest")
}

func TestTabs_CycleSections(t *testing.T) {
	m := newTestModel(t, true)
	require.Equal(t, TabOverview, m.ActiveTab())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, TabPricing, m.ActiveTab())
	out := view(m)
	require.Contains(t, out, "Starter")
	require.Contains(t, out, "$99 / mo")
	require.Contains(t, out, "Contact us")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, TabFAQ, m.ActiveTab())
	require.Contains(t, view(m), "How is usage billed?")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, TabOverview, m.ActiveTab(), "wraps to the first section")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, TabFAQ, m.ActiveTab())
}

func TestPricing_LoadingShowsPlaceholders(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	out := view(m)
	require.Contains(t, out, "░")
	require.NotContains(t, out, "Starter")
}

func TestHighlightedPlan(t *testing.T) {
	cat, err := dataset.Load(context.Background(), dataset.DefaultFS())
	require.NoError(t, err)

	require.Equal(t, 1, highlightedPlan(cat.Records(dataset.Plans)))
	require.Equal(t, -1, highlightedPlan(nil))
}

func TestCTA_EnterOpensDashboard(t *testing.T) {
	m := newTestModel(t, true)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, mode.SwitchModeMsg{To: mode.ModeDashboard}, cmd())
}

func TestCTA_ClickOpensDashboard(t *testing.T) {
	m := newTestModel(t, true)

	var z *zone.ZoneInfo
	for range 20 {
		_ = zone.Scan(m.View())
		z = zone.Get(m.ctaZone)
		if z != nil && !z.IsZero() {
			break
		}
		time.Sleep(time.Millisecond)
	}
	require.NotNil(t, z)
	require.False(t, z.IsZero())

	_, cmd := update(t, m, tea.MouseMsg{X: z.StartX + 1, Y: z.StartY, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	require.NotNil(t, cmd)
	require.Equal(t, mode.SwitchModeMsg{To: mode.ModeDashboard}, cmd())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, true)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
