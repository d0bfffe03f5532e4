package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// TruncateString truncates s to fit within maxWidth cells, adding an ellipsis
// when anything was cut. ANSI-styled input keeps its escape sequences.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= len(ellipsis) {
		return strings.Repeat(".", maxWidth)
	}
	if strings.Contains(s, "\x1b[") {
		return ansi.Truncate(s, maxWidth, ellipsis)
	}
	return runewidth.Truncate(s, maxWidth, ellipsis)
}

// FormatCount abbreviates large counts: 950, 12.4K, 3.1M.
func FormatCount(n int64) string {
	switch {
	case n < 0:
		return "-" + FormatCount(-n)
	case n < 1_000:
		return fmt.Sprintf("%d", n)
	case n < 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000)) + "K"
	case n < 1_000_000_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000_000)) + "M"
	default:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000_000_000)) + "B"
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
