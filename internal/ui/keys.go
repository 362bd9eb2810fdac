package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines key bindings for the breadcrumbs model.
type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Help key.Binding
	Quit key.Binding
}

var breadcrumbsKeys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "l", "n", "enter"),
		key.WithHelp("→/l", "next step"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h", "p", "backspace"),
		key.WithHelp("←/h", "previous step"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Help, k.Quit},
	}
}
