// Package overlay draws a foreground block (a dialog) over an already
// rendered background without clearing it.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position selects where the foreground is anchored.
type Position int

const (
	Center Position = iota
	Top
	Bottom
)

// Config controls overlay placement.
type Config struct {
	Width    int // Viewport width
	Height   int // Viewport height
	Position Position
	PadY     int // Distance from the edge for Top/Bottom
}

// Place splices fg into bg line by line. Styling on both sides is preserved
// because cutting is done with ANSI-aware truncation.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	x, y := Origin(cfg, lipgloss.Width(fg), len(fgLines))

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		base := bgLines[row]

		left := ansi.Truncate(base, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		var right string
		end := x + ansi.StringWidth(line)
		if end < ansi.StringWidth(base) {
			right = ansi.TruncateLeft(base, end, "")
		}

		bgLines[row] = left + line + right
	}

	return strings.Join(bgLines, "\n")
}

// Origin returns the top-left cell of a fgWidth x fgHeight block.
func Origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Top:
		y = cfg.PadY
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	return max(x, 0), max(y, 0)
}
