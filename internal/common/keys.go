package common

import "github.com/charmbracelet/bubbles/key"

type HelpBindable interface {
	HelpBindings() []key.Binding
}

// KeyMap holds the bindings the root model handles before any screen sees
// the key.
type KeyMap struct {
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
	Focus    key.Binding
	ResetKey key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.ResetKey, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.ResetKey},
		{k.Help, k.Back, k.Quit},
	}
}

// Quit is ctrl+c only: q is a perfectly good character in an API key.
var Keys = KeyMap{
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "toggle help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch focus"),
	),
	ResetKey: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "clear key"),
	),
}
