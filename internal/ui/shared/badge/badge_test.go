package badge

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/strata-labs/strata/internal/ui/styles"
)

func TestForStatus(t *testing.T) {
	tests := map[string]Variant{
		"healthy":    Success,
		"Active":     Success,
		"degraded":   Warning,
		"training":   Warning,
		"revoked":    Error,
		"paused":     Neutral,
		"":           Neutral,
		"rebuilding": Info,
	}
	for status, want := range tests {
		require.Equal(t, want, ForStatus(status), "status %q", status)
	}
}

func TestColor_UnknownIsNeutral(t *testing.T) {
	require.Equal(t, styles.TextMutedColor, Color("purple"))
	require.Equal(t, styles.StatusErrorColor, Color(Error))
}

func TestStatus_Text(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	require.Equal(t, "● healthy", Status("healthy"))
}
