package panes

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestBorderedPane_FillsExactDimensions(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content: "one\ntwo",
		Width:   20,
		Height:  6,
		TopLeft: "Streams",
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	for i, l := range lines {
		require.Equal(t, 20, lipgloss.Width(l), "line %d", i)
	}
	require.Contains(t, lines[0], "Streams")
	require.Contains(t, lines[1], "one")
	require.Contains(t, lines[2], "two")
}

func TestBorderedPane_ClipsWideContent(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content: strings.Repeat("x", 50),
		Width:   12,
		Height:  3,
	})
	for _, l := range strings.Split(out, "\n") {
		require.Equal(t, 12, lipgloss.Width(l))
	}
}

func TestBorderedPane_DualTitles(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Width:       40,
		Height:      3,
		TopLeft:     "Keys",
		TopRight:    "3 rows",
		BottomRight: "n: new",
	})
	lines := strings.Split(out, "\n")
	require.Contains(t, lines[0], "Keys")
	require.Contains(t, lines[0], "3 rows")
	require.Contains(t, lines[2], "n: new")
	require.Equal(t, 40, lipgloss.Width(lines[0]))
	require.Equal(t, 40, lipgloss.Width(lines[2]))
}

func TestBorderedPane_NarrowDropsRightTitle(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Width:    14,
		Height:   3,
		TopLeft:  "Deployments",
		TopRight: "12 rows",
	})
	top := strings.Split(out, "\n")[0]
	require.NotContains(t, top, "12 rows")
	require.Equal(t, 14, lipgloss.Width(top))
}
