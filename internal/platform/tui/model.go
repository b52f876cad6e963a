package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pingpong/internal/core"
)

// frameMsg carries a painted screen from the game loop to the model.
type frameMsg struct {
	screen *core.Screen
}

// Model is the Bubble Tea model that displays frames and forwards key
// commands to the game loop. It holds no game state of its own.
type Model struct {
	keys     KeyMap
	help     help.Model
	palette  palette
	commands chan<- core.Command
	screen   *core.Screen
	needW    int // Drawable size the arena requires
	needH    int
	width    int // Last known terminal size, 0 until the first resize
	height   int
	quitting bool
}

// NewModel creates a model sized for the given arena. Commands are delivered
// on commands without blocking; keys arriving while the buffer is full are dropped.
func NewModel(cfg core.RuntimeConfig, commands chan<- core.Command, r *lipgloss.Renderer) Model {
	w, h := cfg.ScreenSize()
	return Model{
		keys:     DefaultKeyMap(),
		help:     help.New(),
		palette:  newPalette(r),
		commands: commands,
		screen:   core.NewScreen(w, h),
		needW:    w,
		needH:    h + 1, // help line
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.screen = msg.screen
		return m, nil
	}

	return m, nil
}

// handleKey forwards mapped keys to the game loop.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.Command(msg)
	if !ok {
		return m, nil
	}

	select {
	case m.commands <- cmd:
	default:
	}

	if cmd == core.CommandQuit {
		// Stop drawing; the session quits the program once the loop returns.
		m.quitting = true
	}
	return m, nil
}

// TooSmall reports whether the last known terminal size cannot fit the arena.
func (m Model) TooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < m.needW || m.height < m.needH
}

// View renders the current frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.TooSmall() {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d\n%s",
			m.needW, m.needH, m.width, m.height, m.help.View(m.keys))
	}
	return m.palette.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}
