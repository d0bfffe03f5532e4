package shared

import (
	"errors"
	"os"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
)

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// ErrNoClipboard is returned when no clipboard tool is available.
var ErrNoClipboard = errors.New("no clipboard command available")

// Swapped in tests.
var (
	writeAll         = clipboard.WriteAll
	clipboardMissing = func() bool { return clipboard.Unsupported }
	writeOSC52       = func(text string) { termenv.NewOutput(os.Stdout).Copy(text) }
)

// SystemClipboard copies through the platform clipboard, or through an
// OSC 52 escape sequence when running over SSH or inside a multiplexer.
type SystemClipboard struct{}

// Copy copies text to the clipboard.
func (SystemClipboard) Copy(text string) error {
	if shouldUseOSC52(os.Getenv) {
		writeOSC52(text)
		return nil
	}
	if clipboardMissing() {
		return ErrNoClipboard
	}
	return writeAll(text)
}

// shouldUseOSC52 reports whether the local clipboard is likely unreachable.
func shouldUseOSC52(getenv func(string) string) bool {
	for _, v := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"} {
		if getenv(v) != "" {
			return true
		}
	}
	return false
}

// MemoryClipboard records the last copied text.
type MemoryClipboard struct {
	Text string
	Err  error
}

// Copy stores text unless Err is set.
func (c *MemoryClipboard) Copy(text string) error {
	if c.Err != nil {
		return c.Err
	}
	c.Text = text
	return nil
}
