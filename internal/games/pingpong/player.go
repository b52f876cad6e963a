package pingpong

import (
	"github.com/vovakirdan/tui-pingpong/internal/core"
)

// Player is the paddle: a vertical bar in a fixed column.
type Player struct {
	position core.Point
	height   int

	// direction is the last heading steered; SetMoving(true) arms it.
	direction core.Command
	// intent is the move pending for this tick, CommandNone when there is none.
	intent core.Command
}

// NewPlayer creates a paddle whose top cell is (x, y).
func NewPlayer(x, y, height int) *Player {
	return &Player{
		position:  core.NewPoint(x, y),
		height:    height,
		direction: core.CommandDown,
		intent:    core.CommandNone,
	}
}

// Position returns the paddle's top cell.
func (p *Player) Position() core.Point {
	return p.position
}

// Height returns the paddle length in cells.
func (p *Player) Height() int {
	return p.height
}

// Direction returns the last steered heading.
func (p *Player) Direction() core.Command {
	return p.direction
}

// SetDirection records cmd as the paddle heading. A pending move follows
// the new heading. Non-directional commands are ignored.
func (p *Player) SetDirection(cmd core.Command) {
	if !cmd.IsDirectional() {
		return
	}
	p.direction = cmd
	if p.intent != core.CommandNone {
		p.intent = cmd
	}
}

// SetMoving arms (true) or discards (false) a single move in the current heading.
func (p *Player) SetMoving(moving bool) {
	if moving {
		p.intent = p.direction
		return
	}
	p.intent = core.CommandNone
}

// IsMoving reports whether a move is pending.
func (p *Player) IsMoving() bool {
	return p.intent != core.CommandNone
}

// Steer sets the heading and arms one move.
func (p *Player) Steer(cmd core.Command) {
	p.SetDirection(cmd)
	if cmd.IsDirectional() {
		p.SetMoving(true)
	}
}

// Move applies the pending move once inside an arena of the given height,
// then clears it. Moves that would cross a border are dropped silently.
func (p *Player) Move(arenaHeight int) {
	intent := p.intent
	p.intent = core.CommandNone

	switch intent {
	case core.CommandUp:
		if p.position.Y > 1 {
			p.position.Y--
		}
	case core.CommandDown:
		if p.position.Y+p.height <= arenaHeight {
			p.position.Y++
		}
	}
}
