package model

import "github.com/charmbracelet/bubbles/key"

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up", "shift+tab"),
			key.WithHelp("↑/k", "previous row"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down", "tab"),
			key.WithHelp("↓/j", "next row"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "-"),
			key.WithHelp("←/-", "decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "+", "="),
			key.WithHelp("→/+", "increase"),
		),
		BigLeft: key.NewBinding(
			key.WithKeys("shift+left", "pgdown"),
			key.WithHelp("shift+←", "decrease more"),
		),
		BigRight: key.NewBinding(
			key.WithKeys("shift+right", "pgup"),
			key.WithHelp("shift+→", "increase more"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit value"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply edit"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random color"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset to black"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy hex"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t", "D"),
			key.WithHelp("t", "toggle theme"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle debug info"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
