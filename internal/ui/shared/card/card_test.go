package card

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

func TestRenderStat(t *testing.T) {
	out := ansi.Strip(RenderStat(Stat{Label: "Events", Value: "12.4M", Delta: "+8%", Trend: TrendUp}, 20))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 5)
	require.Contains(t, lines[1], "Events")
	require.Contains(t, lines[2], "12.4M")
	require.Contains(t, lines[3], "▲ +8%")
	for _, l := range lines {
		require.Equal(t, 20, lipgloss.Width(l))
	}
}

func TestRenderStat_NoDelta(t *testing.T) {
	out := ansi.Strip(RenderStat(Stat{Label: "Keys", Value: "3"}, 16))
	require.Len(t, strings.Split(out, "\n"), 4)
	require.NotContains(t, out, "▲")
}

func TestRenderFeature_WrapsBody(t *testing.T) {
	f := Feature{Title: "Streams", Body: "Ingest millions of events per second without tuning anything"}
	out := ansi.Strip(RenderFeature(f, 24))
	lines := strings.Split(out, "\n")

	require.Contains(t, lines[1], "Streams")
	require.Greater(t, len(lines), 5, "body wraps over several lines")
	for _, l := range lines {
		require.Equal(t, 24, lipgloss.Width(l))
	}
	require.Contains(t, out, "Ingest")
}

func TestRow(t *testing.T) {
	a := RenderStat(Stat{Label: "A", Value: "1"}, 10)
	b := RenderStat(Stat{Label: "B", Value: "2"}, 10)

	first := strings.Split(Row(a, b), "\n")[0]
	require.Equal(t, 21, lipgloss.Width(first))
}
