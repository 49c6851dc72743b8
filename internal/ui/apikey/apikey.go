// Package apikey is a controlled, masked single-line input for an API key.
//
// The owner passes the current value, a change callback and a disabled
// flag on every Update and View. The component never keeps a value of its
// own between calls: what it shows is always Props.APIKey, and every edit
// is reported through Props.OnAPIKeyChange with the complete new value.
package apikey

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/NotMugil/interview-tui/internal/common"
)

const (
	Label       = "Enter Your API Key:"
	Placeholder = "Paste your API key here"
	Hint        = "Your API key is stored locally and never sent to our servers."

	// ZoneID marks the field for mouse hit testing.
	ZoneID = "api-key-input"

	// MaskChar replaces every character of the key on screen.
	MaskChar = '•'
)

// Props is supplied by the owning model on every call.
type Props struct {
	APIKey         string
	OnAPIKeyChange func(string)
	Disabled       bool
}

// Model carries only presentation state: focus, cursor and width.
type Model struct {
	input textinput.Model
}

func New() Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = Placeholder
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = MaskChar
	ti.CharLimit = 0
	ti.Width = 60
	ti.Cursor.Style = common.CursorStyle
	ti.PlaceholderStyle = common.HelpStyle
	return Model{input: ti}
}

func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Blur() {
	m.input.Blur()
}

func (m Model) Focused() bool {
	return m.input.Focused()
}

// SetWidth sets the visible width of the field in cells.
func (m *Model) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	m.input.Width = w
}

// sync makes the field show exactly p.APIKey. A value replaced from outside
// puts the cursor at the end.
func (m *Model) sync(p Props) {
	if m.input.Value() != p.APIKey {
		m.input.SetValue(p.APIKey)
		m.input.CursorEnd()
	}
}

// Update handles msg against the owner's props. If msg edits the field,
// p.OnAPIKeyChange is called once, before Update returns, with the whole
// new value. Disabled fields ignore all input.
func (m *Model) Update(p Props, msg tea.Msg) tea.Cmd {
	m.sync(p)
	if p.Disabled {
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if after := m.input.Value(); after != before && p.OnAPIKeyChange != nil {
		p.OnAPIKeyChange(after)
	}
	return cmd
}

// Value is the text currently held by the field. After View or Update it
// equals the last Props.APIKey seen, or the edit just reported.
func (m Model) Value() string {
	return m.input.Value()
}

// FieldView renders only the masked field for p.
func (m Model) FieldView(p Props) string {
	ti := m.input
	if ti.Value() != p.APIKey {
		ti.SetValue(p.APIKey)
		ti.CursorEnd()
	}
	if p.Disabled {
		ti.Blur()
		ti.TextStyle = common.DisabledStyle
		ti.PlaceholderStyle = common.DisabledStyle
	}
	return ti.View()
}

// View renders label, field and hint for p.
func (m Model) View(p Props) string {
	label := common.LabelStyle.Render(Label)
	if p.Disabled {
		label = common.DisabledStyle.Render(Label + " (locked)")
	}

	border := common.BlurredBorderStyle
	switch {
	case p.Disabled:
		border = common.DisabledBorderStyle
	case m.input.Focused():
		border = common.FocusedBorderStyle
	}
	field := zone.Mark(ZoneID, border.Width(m.input.Width+2).Render(m.FieldView(p)))

	return lipgloss.JoinVertical(lipgloss.Left,
		label,
		field,
		common.ValueStyle.Render(Hint),
	)
}
