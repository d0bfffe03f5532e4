package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestCommon_SwitchModeMatchesCtrlSpace(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyCtrlAt}
	require.True(t, key.Matches(msg, Common.SwitchMode))
	require.Equal(t, "ctrl+space", Common.SwitchMode.Help().Key)
}

func TestDashboard_RefreshAndNew(t *testing.T) {
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, Dashboard.Refresh))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, Dashboard.New))
	require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, Dashboard.New))
}

func TestDashboard_OpenIsEnter(t *testing.T) {
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, Dashboard.Open))
	require.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")}, Dashboard.Open))
}

func TestModal_CancelIsEsc(t *testing.T) {
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, Modal.Cancel))
}

func TestHelp_AllBindingsHaveHelpText(t *testing.T) {
	for _, group := range append(DashboardHelp{}.FullHelp(), MarketingHelp{}.FullHelp()...) {
		for _, b := range group {
			require.NotEmpty(t, b.Help().Key)
			require.NotEmpty(t, b.Help().Desc)
		}
	}
	require.NotEmpty(t, DashboardHelp{}.ShortHelp())
	require.NotEmpty(t, MarketingHelp{}.ShortHelp())
}
