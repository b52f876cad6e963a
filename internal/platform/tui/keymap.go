package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pingpong/internal/core"
)

// KeyMap holds the fixed key bindings of the game.
// It also feeds the help line shown under the arena.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the game's key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Command translates a key message into a game command.
// Returns false for keys the game does not react to.
func (k KeyMap) Command(msg tea.KeyMsg) (core.Command, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.CommandQuit, true
	case key.Matches(msg, k.Up):
		return core.CommandUp, true
	case key.Matches(msg, k.Down):
		return core.CommandDown, true
	}
	return core.CommandNone, false
}
