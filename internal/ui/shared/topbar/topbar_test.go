package topbar

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestBreadcrumb(t *testing.T) {
	labels := map[string]string{"api-keys": "API keys"}

	require.Equal(t, []string{"Dashboard", "API keys"}, Breadcrumb("/dashboard/api-keys", labels))
	require.Equal(t, []string{"Dashboard", "Usage Alerts"}, Breadcrumb("/dashboard/usage-alerts/", nil))
	require.Empty(t, Breadcrumb("/", nil))
	require.Empty(t, Breadcrumb("", nil))
}

func TestView(t *testing.T) {
	out := ansi.Strip(View(Config{
		Title:   "Streams",
		Path:    "/dashboard/streams",
		Account: "acme",
		Width:   60,
	}))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "Streams  Dashboard / Streams"))
	require.True(t, strings.HasSuffix(lines[0], "◉ acme"))
	require.Equal(t, 60, lipgloss.Width(lines[0]))
	require.Equal(t, strings.Repeat("─", 60), lines[1])
}

func TestView_NarrowTruncates(t *testing.T) {
	out := ansi.Strip(View(Config{Title: "Overview", Path: "/dashboard", Account: "acme", Width: 10}))
	first := strings.Split(out, "\n")[0]

	require.LessOrEqual(t, lipgloss.Width(first), 10)
	require.NotContains(t, first, "acme")
}
