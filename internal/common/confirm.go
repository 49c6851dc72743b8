package common

import (
	"github.com/charmbracelet/lipgloss"
)

// ConfirmAction identifies what a confirmed dialog should do.
type ConfirmAction string

const (
	ConfirmResetKey ConfirmAction = "reset-key"
	ConfirmFinish   ConfirmAction = "finish"
)

// ConfirmState is a yes/no dialog drawn over the current view. Cursor 0 is
// "Yes", 1 is "No"; dialogs open on "No".
type ConfirmState struct {
	Active  bool
	Message string
	Action  ConfirmAction
	Cursor  int
}

func NewConfirm(message string, action ConfirmAction) ConfirmState {
	return ConfirmState{
		Active:  true,
		Message: message,
		Action:  action,
		Cursor:  1,
	}
}

// HandleKey consumes every key while the dialog is open.
func (c *ConfirmState) HandleKey(key string) (confirmed bool) {
	switch key {
	case "esc", "n":
		c.Active = false
		return false
	case "left", "h", "up", "k":
		c.Cursor = 0
	case "right", "l", "down", "j":
		c.Cursor = 1
	case "y":
		c.Active = false
		return true
	case "enter":
		c.Active = false
		return c.Cursor == 0
	}
	return false
}

func RenderConfirmOverlay(message string, cursor int, w int) string {
	if w < 30 {
		w = 30
	}
	if w > 50 {
		w = 50
	}

	msgStyle := lipgloss.NewStyle().
		Foreground(ColorText).
		Width(w - 6).
		Align(lipgloss.Center)

	button := func(label string, selected bool, bg lipgloss.Color) string {
		if !selected {
			return lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 2).Render(label)
		}
		return lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(bg).
			Bold(true).
			Padding(0, 2).
			Render(label)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		button("Yes", cursor == 0, ColorDanger),
		"  ",
		button("No", cursor == 1, ColorSuccess),
	)

	buttonsRow := lipgloss.NewStyle().
		Width(w - 6).
		Align(lipgloss.Center).
		Render(buttons)

	content := msgStyle.Render(message) + "\n\n" + buttonsRow + "\n\n" +
		HelpStyle.Render("y/n | enter: confirm | esc: cancel")

	return RenderActivePanel("Confirm", content, w)
}
