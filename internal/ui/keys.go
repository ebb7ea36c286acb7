package ui

import (
	"go-robo/internal/command"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the bindings of the terminal front end.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Execute key.Binding
	Start   key.Binding
	Reset   key.Binding
	Ack     key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "queue up")),
		Down:    key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "queue down")),
		Left:    key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "queue left")),
		Right:   key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "queue right")),
		Execute: key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x/space", "execute")),
		Start:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "start")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Ack:     key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Command returns the move bound to msg, if any.
func (k KeyMap) Command(msg tea.KeyMsg) (command.Command, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return command.Up, true
	case key.Matches(msg, k.Down):
		return command.Down, true
	case key.Matches(msg, k.Left):
		return command.Left, true
	case key.Matches(msg, k.Right):
		return command.Right, true
	}
	return 0, false
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Execute, k.Start, k.Reset, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Execute, k.Start, k.Reset},
		{k.Ack, k.Help, k.Quit},
	}
}
