package dashboard

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Zone IDs for clickable rows are {prefix}{index}. Each table and the
// settings list get their own prefix from zone.NewPrefix.

// rowZoneID creates a zone ID for row index under prefix.
func rowZoneID(prefix string, index int) string {
	return prefix + strconv.Itoa(index)
}

// isLeftClick reports whether msg is a completed left click.
func isLeftClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft
}

// hitRow returns the first of n rows under prefix containing the mouse.
func hitRow(prefix string, n int, msg tea.MouseMsg) (int, bool) {
	for i := range n {
		if z := zone.Get(rowZoneID(prefix, i)); z != nil && z.InBounds(msg) {
			return i, true
		}
	}
	return 0, false
}
