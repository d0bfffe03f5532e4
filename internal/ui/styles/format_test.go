package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "events", 10, "events"},
		{"exact", "events", 6, "events"},
		{"cut", "clickstream-events", 10, "clickst..."},
		{"tiny", "clickstream", 2, ".."},
		{"zero", "clickstream", 0, ""},
		{"wide runes", "日本語テキスト", 7, "日本..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateString(tt.in, tt.width)
			require.Equal(t, tt.want, got)
			require.LessOrEqual(t, lipgloss.Width(got), tt.width)
		})
	}
}

func TestFormatCount(t *testing.T) {
	require.Equal(t, "950", FormatCount(950))
	require.Equal(t, "12.4K", FormatCount(12_400))
	require.Equal(t, "3M", FormatCount(3_000_000))
	require.Equal(t, "1.2B", FormatCount(1_200_000_000))
	require.Equal(t, "-2K", FormatCount(-2_000))
}

func TestRenderFormSection_Dimensions(t *testing.T) {
	out := RenderFormSection([]string{"value"}, "Name", 20, true)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		require.Equal(t, 20, lipgloss.Width(l))
	}
	require.Contains(t, lines[0], "Name")
}

