// Package modal provides a dialog component for confirmations and short
// input prompts, rendered over the current view.
//
// A modal can be dismissed three ways: the Esc key, the Cancel button, or a
// mouse click outside the dialog. While a modal is open its owner should
// route every key and mouse event to it and nothing else; Open reports that.
package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/strata-labs/strata/internal/keys"
	"github.com/strata-labs/strata/internal/ui/overlay"
	"github.com/strata-labs/strata/internal/ui/styles"
)

// ButtonVariant controls the styling of the confirm button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonDanger                // Destructive actions
)

// InputConfig defines a single input field.
type InputConfig struct {
	Key         string // Identifier in SubmitMsg.Values
	Label       string
	Placeholder string
	Value       string
	MaxLength   int // 0 = unlimited
}

// Config controls modal appearance and behavior.
type Config struct {
	Tag            string // Echoed in SubmitMsg/CancelMsg so owners can tell dialogs apart
	Title          string
	Message        string
	Inputs         []InputConfig // Empty means confirmation mode
	ConfirmLabel   string        // Default "Save" with inputs, "Confirm" without
	ConfirmVariant ButtonVariant
	MinWidth       int // 0 = 40
}

// SubmitMsg is sent when the user confirms.
type SubmitMsg struct {
	Tag    string
	Values map[string]string
}

// DismissReason says how a modal was cancelled.
type DismissReason int

const (
	DismissEsc DismissReason = iota
	DismissButton
	DismissBackdrop
)

func (r DismissReason) String() string {
	switch r {
	case DismissButton:
		return "button"
	case DismissBackdrop:
		return "backdrop"
	default:
		return "esc"
	}
}

// CancelMsg is sent when the user dismisses the modal.
type CancelMsg struct {
	Tag    string
	Reason DismissReason
}

// Field identifies which button is focused.
type Field int

const (
	FieldSave Field = iota
	FieldCancel
)

// Model is the modal component state.
type Model struct {
	config       Config
	inputs       []textinput.Model
	focusedInput int // -1 when a button is focused
	focusedField Field
	open         bool
	width        int
	height       int
	zonePrefix   string
}

// New creates an open modal. With inputs the first one is focused,
// otherwise the confirm button is.
func New(cfg Config) Model {
	if cfg.MinWidth <= 0 {
		cfg.MinWidth = 40
	}
	m := Model{
		config:       cfg,
		focusedInput: -1,
		open:         true,
		zonePrefix:   zone.NewPrefix(),
	}

	for i, in := range cfg.Inputs {
		ti := textinput.New()
		ti.Placeholder = in.Placeholder
		ti.Prompt = ""
		ti.Width = cfg.MinWidth - 4
		if in.MaxLength > 0 {
			ti.CharLimit = in.MaxLength
		}
		if in.Value != "" {
			ti.SetValue(in.Value)
		}
		if i == 0 {
			ti.Focus()
			m.focusedInput = 0
		}
		m.inputs = append(m.inputs, ti)
	}
	return m
}

// Init starts the cursor blink in input mode.
func (m Model) Init() tea.Cmd {
	if len(m.inputs) > 0 {
		return textinput.Blink
	}
	return nil
}

// Open reports whether the modal is showing.
func (m Model) Open() bool {
	return m.open
}

// Tag returns the configured tag.
func (m Model) Tag() string {
	return m.config.Tag
}

// Update handles messages for the modal. A closed modal ignores everything.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Modal.Cancel):
			return m.dismiss(DismissEsc)
		case msg.String() == "tab" || msg.String() == "down":
			return m.nextField(), nil
		case msg.String() == "shift+tab" || msg.String() == "up":
			return m.prevField(), nil
		case m.focusedInput < 0 && (msg.String() == "left" || msg.String() == "h"):
			m.focusedField = FieldSave
			return m, nil
		case m.focusedInput < 0 && (msg.String() == "right" || msg.String() == "l"):
			m.focusedField = FieldCancel
			return m, nil
		case m.focusedInput < 0 && len(m.inputs) == 0 && key.Matches(msg, keys.Modal.Confirm):
			return m.submit()
		case key.Matches(msg, keys.Modal.Submit):
			if m.focusedInput >= 0 {
				if m.focusedInput == len(m.inputs)-1 {
					return m.submit()
				}
				return m.nextField(), nil
			}
			if m.focusedField == FieldCancel {
				return m.dismiss(DismissButton)
			}
			return m.submit()
		}

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.focusedInput >= 0 {
		var cmd tea.Cmd
		m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if z := zone.Get(m.zoneID("save")); z != nil && z.InBounds(msg) {
		m.focusedInput = -1
		m.focusedField = FieldSave
		return m.submit()
	}
	if z := zone.Get(m.zoneID("cancel")); z != nil && z.InBounds(msg) {
		return m.dismiss(DismissButton)
	}
	for i := range m.inputs {
		if z := zone.Get(m.zoneID(inputZone(i))); z != nil && z.InBounds(msg) {
			return m.focusInput(i), nil
		}
	}

	// Only treat the click as a backdrop click once the dialog has been
	// rendered and its bounds are known.
	if z := zone.Get(m.zoneID("dialog")); z != nil && !z.IsZero() && !z.InBounds(msg) {
		return m.dismiss(DismissBackdrop)
	}
	return m, nil
}

func inputZone(i int) string {
	return "input-" + string(rune('0'+i))
}

func (m Model) zoneID(name string) string {
	return m.zonePrefix + name
}

func (m Model) submit() (Model, tea.Cmd) {
	values := make(map[string]string, len(m.inputs))
	for i, in := range m.inputs {
		v := strings.TrimSpace(in.Value())
		if v == "" {
			return m.focusInput(i), nil
		}
		values[m.config.Inputs[i].Key] = v
	}
	m.open = false
	tag := m.config.Tag
	return m, func() tea.Msg { return SubmitMsg{Tag: tag, Values: values} }
}

func (m Model) dismiss(reason DismissReason) (Model, tea.Cmd) {
	m.open = false
	tag := m.config.Tag
	return m, func() tea.Msg { return CancelMsg{Tag: tag, Reason: reason} }
}

func (m Model) focusInput(i int) Model {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focusedInput = i
	m.inputs[i].Focus()
	return m
}

// nextField cycles inputs, then Save, then Cancel.
func (m Model) nextField() Model {
	switch {
	case m.focusedInput >= 0 && m.focusedInput < len(m.inputs)-1:
		return m.focusInput(m.focusedInput + 1)
	case m.focusedInput >= 0:
		m.inputs[m.focusedInput].Blur()
		m.focusedInput = -1
		m.focusedField = FieldSave
	case m.focusedField == FieldSave:
		m.focusedField = FieldCancel
	case len(m.inputs) > 0:
		return m.focusInput(0)
	default:
		m.focusedField = FieldSave
	}
	return m
}

// prevField cycles in the opposite direction to nextField.
func (m Model) prevField() Model {
	switch {
	case m.focusedInput > 0:
		return m.focusInput(m.focusedInput - 1)
	case m.focusedInput == 0:
		m.inputs[0].Blur()
		m.focusedInput = -1
		m.focusedField = FieldCancel
	case m.focusedField == FieldCancel:
		m.focusedField = FieldSave
	case len(m.inputs) > 0:
		return m.focusInput(len(m.inputs) - 1)
	default:
		m.focusedField = FieldCancel
	}
	return m
}

// View renders the dialog box.
func (m Model) View() string {
	contentWidth := max(m.config.MinWidth, lipgloss.Width(m.config.Title))
	boxWidth := contentWidth + 2

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).PaddingLeft(1)
	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	if m.config.Message != "" {
		content.WriteString(lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Width(contentWidth).Render(m.config.Message))
		content.WriteString("\n\n")
	}
	for i, in := range m.config.Inputs {
		label := in.Label
		if label == "" {
			label = "Input"
		}
		section := styles.RenderFormSection([]string{m.inputs[i].View()}, label, contentWidth, m.focusedInput == i)
		content.WriteString(zone.Mark(m.zoneID(inputZone(i)), section))
		content.WriteString("\n\n")
	}
	content.WriteString(m.renderButtons())

	body := titleStyle.Render(m.config.Title) + "\n" + divider + "\n" +
		lipgloss.NewStyle().Padding(1, 1).Render(content.String())

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(body)
	return zone.Mark(m.zoneID("dialog"), box)
}

func (m Model) renderButtons() string {
	onButtons := m.focusedInput < 0

	saveStyle := styles.PrimaryButtonStyle
	if m.config.ConfirmVariant == ButtonDanger {
		saveStyle = styles.DangerButtonStyle
	}
	if onButtons && m.focusedField == FieldSave {
		saveStyle = styles.PrimaryButtonFocusedStyle
		if m.config.ConfirmVariant == ButtonDanger {
			saveStyle = styles.DangerButtonFocusedStyle
		}
	}

	label := m.config.ConfirmLabel
	if label == "" {
		label = "Confirm"
		if len(m.inputs) > 0 {
			label = "Save"
		}
	}

	cancelStyle := styles.SecondaryButtonStyle
	if onButtons && m.focusedField == FieldCancel {
		cancelStyle = styles.SecondaryButtonFocusedStyle
	}

	return zone.Mark(m.zoneID("save"), saveStyle.Render(label)) + "  " +
		zone.Mark(m.zoneID("cancel"), cancelStyle.Render("Cancel"))
}

// Overlay renders the modal centred on bg.
func (m Model) Overlay(bg string) string {
	if !m.open {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// SetSize records the viewport size used for centring.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// FocusedInput returns the focused input index, -1 when on buttons.
func (m Model) FocusedInput() int {
	return m.focusedInput
}

// FocusedField returns the focused button.
func (m Model) FocusedField() Field {
	return m.focusedField
}
