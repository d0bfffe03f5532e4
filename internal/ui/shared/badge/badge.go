// Package badge renders small status labels.
package badge

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/strata-labs/strata/internal/ui/styles"
)

// Variant selects a badge color.
type Variant string

const (
	Success Variant = "success"
	Warning Variant = "warning"
	Error   Variant = "error"
	Info    Variant = "info"
	Neutral Variant = "neutral"
)

// Color returns the foreground color of a variant. Unknown variants are
// rendered as Neutral.
func Color(v Variant) lipgloss.TerminalColor {
	switch v {
	case Success:
		return styles.StatusSuccessColor
	case Warning:
		return styles.StatusWarningColor
	case Error:
		return styles.StatusErrorColor
	case Info:
		return styles.StatusInfoColor
	default:
		return styles.TextMutedColor
	}
}

// Render draws text as a "● text" badge in the variant's color.
func Render(v Variant, text string) string {
	return lipgloss.NewStyle().Foreground(Color(v)).Render("● " + text)
}

// ForStatus maps the status vocabulary used across datasets to a variant.
func ForStatus(status string) Variant {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "healthy", "active", "production", "public", "on":
		return Success
	case "degraded", "expiring", "staging", "training":
		return Warning
	case "failed", "down", "revoked", "error":
		return Error
	case "paused", "archived", "private", "off", "":
		return Neutral
	default:
		return Info
	}
}

// Status renders a status string with the variant ForStatus picks.
func Status(status string) string {
	return Render(ForStatus(status), status)
}
