//go:build !tinygo

package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the key bindings of the monitor TUI.
type keyMap struct {
	Toggle key.Binding
	Rescan key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("t", "T", " ", "enter"),
			key.WithHelp("t", "toggle view"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "rescan now"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Rescan, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Rescan}, {k.Help, k.Quit}}
}
