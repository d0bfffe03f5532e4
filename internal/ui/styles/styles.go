// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#D6D6D6"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#57606A", Dark: "#B4B4B4"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#6E6E6E"} // Hints, footers, table headers
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#9A9A9A"}
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#5A5A5A"} // Loading filler blocks

	// Accent drives focus, selection and the brand mark.
	AccentColor = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"}

	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#D0D7DE", Dark: "#4A4A4A"}
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#FF8787"}
	StatusInfoColor    = lipgloss.AdaptiveColor{Light: "#0969DA", Dark: "#54A0FF"}

	SelectionBackgroundColor = lipgloss.AdaptiveColor{Light: "#EDE9FE", Dark: "#2E2646"}
	SelectionIndicatorColor  = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#FFFFFF"}

	ButtonTextColor             = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor        = lipgloss.AdaptiveColor{Light: "#4C1D95", Dark: "#4C1D95"}
	ButtonPrimaryFocusBgColor   = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#7C3AED"}
	ButtonSecondaryBgColor      = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}
	ButtonSecondaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#636E72"}
	ButtonDangerBgColor         = lipgloss.AdaptiveColor{Light: "#922B21", Dark: "#922B21"}
	ButtonDangerFocusBgColor    = lipgloss.AdaptiveColor{Light: "#E74C3C", Dark: "#E74C3C"}

	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#8C959F", Dark: "#8C8C8C"}

	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
					Foreground(ButtonTextColor).
					Background(ButtonPrimaryFocusBgColor).
					Underline(true).
					UnderlineSpaces(true)

	SecondaryButtonStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonSecondaryBgColor)

	SecondaryButtonFocusedStyle = baseButtonStyle.
					Foreground(ButtonTextColor).
					Background(ButtonSecondaryFocusBgColor).
					Underline(true).
					UnderlineSpaces(true)

	DangerButtonStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonDangerBgColor)

	DangerButtonFocusedStyle = baseButtonStyle.
					Foreground(ButtonTextColor).
					Background(ButtonDangerFocusBgColor).
					Underline(true).
					UnderlineSpaces(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)

	SpinnerColor = AccentColor
)

// ApplyTheme overrides palette entries from configuration.
// Empty strings keep the defaults.
func ApplyTheme(muted, errorColor, success, accent string) {
	if muted != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: muted, Dark: muted}
		BorderDefaultColor = lipgloss.AdaptiveColor{Light: muted, Dark: muted}
	}
	if errorColor != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: errorColor, Dark: errorColor}
	}
	if success != "" {
		StatusSuccessColor = lipgloss.AdaptiveColor{Light: success, Dark: success}
	}
	if accent != "" {
		AccentColor = lipgloss.AdaptiveColor{Light: accent, Dark: accent}
		BorderHighlightFocusColor = AccentColor
		SpinnerColor = AccentColor
	}
}
