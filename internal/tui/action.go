package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is the routed form of a terminal event. The session layer only
// ever sees actions, never bubbletea messages.
type Action int

const (
	// ActionIgnored covers every event that changes no state.
	ActionIgnored Action = iota
	// ActionType appends one character to the input buffer.
	ActionType
	// ActionQuit ends the program.
	ActionQuit
	// ActionReset starts a fresh round with new words.
	ActionReset
)

type keyMap struct {
	Quit  key.Binding
	Reset key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "new words"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Reset, k.Quit}}
}

// dispatchKey routes a key event to an action. Bare characters (space
// included) type; Esc and Ctrl+C quit; Ctrl+R resets; every other key
// or chord is ignored, backspace included: the input buffer only grows.
// The typed rune accompanies ActionType and is 0 otherwise.
func dispatchKey(keys keyMap, msg tea.KeyMsg) (Action, rune) {
	switch {
	case key.Matches(msg, keys.Quit):
		return ActionQuit, 0
	case key.Matches(msg, keys.Reset):
		return ActionReset, 0
	}
	switch msg.Type {
	case tea.KeySpace:
		return ActionType, ' '
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return ActionIgnored, 0
		}
		return ActionType, msg.Runes[0]
	default:
		return ActionIgnored, 0
	}
}
