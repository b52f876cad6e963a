package pingpong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pingpong/internal/core"
)

// DefaultBallGlyph is the ball's glyph until the proximity effect changes it.
const DefaultBallGlyph = 'o'

// proximityGlyphs are the glyphs picked from when the ball is level with the paddle.
var proximityGlyphs = []rune{'o', 'x', '+'}

// Ball bounces around the arena interior one cell per axis per tick.
type Ball struct {
	position core.Point
	velocity core.Direction
	glyph    rune
	rng      *rand.Rand
}

// NewBall places a ball at (x, y) heading in a random diagonal direction.
func NewBall(x, y int, rng *rand.Rand) *Ball {
	return &Ball{
		position: core.NewPoint(x, y),
		velocity: core.NewDirection(randomSign(rng), randomSign(rng)),
		glyph:    DefaultBallGlyph,
		rng:      rng,
	}
}

// randomSign returns -1 or +1 with equal probability.
func randomSign(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Position returns the ball's current cell.
func (b *Ball) Position() core.Point {
	return b.position
}

// Velocity returns the ball's per-tick displacement.
func (b *Ball) Velocity() core.Direction {
	return b.velocity
}

// Glyph returns the rune the ball is drawn with.
func (b *Ball) Glyph() rune {
	return b.glyph
}

// SetGlyph changes the rune the ball is drawn with.
func (b *Ball) SetGlyph(r rune) {
	b.glyph = r
}

// Move advances the ball one step inside a width x height arena.
// An axis whose next cell would leave [1, size] has its velocity inverted
// instead of moving. A bounce on x ends the step, so y holds still that tick.
func (b *Ball) Move(width, height int) {
	next := b.position.Add(b.velocity)

	if !core.InRange(next.X, 1, width) {
		b.velocity.X = -b.velocity.X
		return
	}
	b.position.X = next.X

	if !core.InRange(next.Y, 1, height) {
		b.velocity.Y = -b.velocity.Y
		return
	}
	b.position.Y = next.Y
}

// OverlapsWith picks a new glyph when the ball's row lies within the
// paddle's band [top, top+height], both ends inclusive.
// Only the glyph changes; the trajectory is never affected.
func (b *Ball) OverlapsWith(p *Player) {
	top := p.Position().Y
	if b.position.Y < top || b.position.Y > top+p.Height() {
		return
	}
	b.glyph = proximityGlyphs[b.rng.Intn(len(proximityGlyphs))]
}
