package pingpong

import (
	"github.com/vovakirdan/tui-pingpong/internal/core"
)

// Visual characters for rendering
const (
	BorderChar = '#'
	PaddleChar = '█'
)

// Frame describes everything drawn for one tick. The game hands one Frame
// per tick to its Renderer; the renderer decides how to present it.
type Frame struct {
	Tick         uint64
	ArenaW       int
	ArenaH       int
	Paddle       core.Point
	PaddleHeight int
	Ball         core.Point
	BallGlyph    rune
}

// Size returns the drawable size of the frame including the border.
func (f Frame) Size() (w, h int) {
	return f.ArenaW + 2, f.ArenaH + 2
}

// Paint draws the frame into dst: borders, background, paddle, then ball.
func (f Frame) Paint(dst *core.Screen) {
	f.drawBorders(dst)
	f.drawBackground(dst)
	f.drawPlayer(dst)
	f.drawBall(dst)
}

func (f Frame) drawBorders(dst *core.Screen) {
	w, h := f.Size()
	dst.DrawOutline(core.NewRect(0, 0, w, h), BorderChar, core.ColorGray)
}

func (f Frame) drawBackground(dst *core.Screen) {
	dst.DrawRect(core.NewRect(1, 1, f.ArenaW, f.ArenaH), ' ', core.ColorDefault)
}

func (f Frame) drawPlayer(dst *core.Screen) {
	dst.DrawVLine(f.Paddle.X, f.Paddle.Y, f.PaddleHeight, PaddleChar, core.ColorBrightCyan)
}

func (f Frame) drawBall(dst *core.Screen) {
	dst.SetCell(f.Ball.X, f.Ball.Y, f.BallGlyph, core.ColorBrightYellow)
}
