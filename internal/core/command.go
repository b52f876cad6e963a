package core

// Command is a discrete action the game loop reacts to.
// Frontends translate raw key events into commands; the loop never sees keys.
type Command int

const (
	CommandNone Command = iota // No command (zero value)
	CommandUp                  // Up arrow - move paddle up
	CommandDown                // Down arrow - move paddle down
	CommandQuit                // Q, Esc, Ctrl+C - end the session
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandUp:
		return "Up"
	case CommandDown:
		return "Down"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the command steers the paddle.
func (c Command) IsDirectional() bool {
	return c == CommandUp || c == CommandDown
}
