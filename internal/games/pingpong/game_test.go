package pingpong

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pingpong/internal/core"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

// scriptedEvent is a command arriving at an offset from the session start.
type scriptedEvent struct {
	at  time.Duration
	cmd core.Command
}

// scriptedInput replays events against a fake clock. Polling advances the
// clock to the next event, or by the full wait when none is due.
type scriptedInput struct {
	clock  *fakeClock
	start  time.Time
	events []scriptedEvent
	waits  []time.Duration
}

func newScriptedInput(clock *fakeClock, events ...scriptedEvent) *scriptedInput {
	return &scriptedInput{clock: clock, start: clock.now, events: events}
}

func (in *scriptedInput) PollCommand(maxWait time.Duration) (core.Command, bool) {
	in.waits = append(in.waits, maxWait)
	deadline := in.clock.now.Add(maxWait)

	if len(in.events) > 0 {
		next := in.events[0]
		due := in.start.Add(next.at)
		if !due.After(deadline) {
			if due.After(in.clock.now) {
				in.clock.now = due
			}
			in.events = in.events[1:]
			return next.cmd, true
		}
	}

	in.clock.now = deadline
	return core.CommandNone, false
}

// frameRecorder collects rendered frames.
type frameRecorder struct {
	frames []Frame
}

func (r *frameRecorder) Render(f Frame) {
	r.frames = append(r.frames, f)
}

func newTestGame(events ...scriptedEvent) (*Game, *scriptedInput, *frameRecorder) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	input := newScriptedInput(clock, events...)
	rec := &frameRecorder{}
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g := New(cfg, input, rec, WithClock(clock))
	return g, input, rec
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		speed    int
		expected time.Duration
	}{
		{1, 675 * time.Millisecond},
		{10, 450 * time.Millisecond},
		{19, 225 * time.Millisecond},
		{20, 200 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := TickInterval(tc.speed); got != tc.expected {
			t.Errorf("TickInterval(%d) = %v, expected %v", tc.speed, got, tc.expected)
		}
	}
}

func TestTickIntervalSpeedBounds(t *testing.T) {
	if got := TickInterval(core.MaxSpeed); got != MinInterval*time.Millisecond {
		t.Errorf("TickInterval(MaxSpeed) = %v, expected %dms", got, MinInterval)
	}
	if got := TickInterval(core.MinSpeed); got >= MaxInterval*time.Millisecond {
		t.Errorf("TickInterval(MinSpeed) = %v, expected below %dms", got, MaxInterval)
	}
}

func TestNewGameLayout(t *testing.T) {
	g, _, _ := newTestGame()

	if g.Player().Position() != core.NewPoint(2, 6) {
		t.Errorf("paddle at %v, expected (2, 6)", g.Player().Position())
	}
	if g.Player().Height() != 5 {
		t.Errorf("paddle height %d, expected 5", g.Player().Height())
	}
	if g.Ball().Position() != core.NewPoint(7, 7) {
		t.Errorf("ball at %v, expected (7, 7)", g.Ball().Position())
	}
	if g.State() != StateRunning {
		t.Errorf("State() = %v, expected Running", g.State())
	}
	if g.Interval() != 675*time.Millisecond {
		t.Errorf("Interval() = %v, expected 675ms", g.Interval())
	}
}

func TestNewGameResolvesZeroSeed(t *testing.T) {
	g := New(core.DefaultConfig(), nil, nil)
	if g.Config().Seed == 0 {
		t.Error("zero seed should be replaced with a time-based seed")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should evolve identically
	g1, _, _ := newTestGame()
	g2, _, _ := newTestGame()

	for i := 0; i < 100; i++ {
		if i%7 == 0 {
			g1.HandleCommand(core.CommandUp)
			g2.HandleCommand(core.CommandUp)
		}
		g1.Step()
		g2.Step()

		if g1.Frame() != g2.Frame() {
			t.Fatalf("tick %d: frames diverged: %+v vs %+v", i, g1.Frame(), g2.Frame())
		}
	}
}

func TestRunQuitBeforeDirectionalCommand(t *testing.T) {
	g, _, rec := newTestGame(
		scriptedEvent{at: 100 * time.Millisecond, cmd: core.CommandQuit},
		scriptedEvent{at: 200 * time.Millisecond, cmd: core.CommandUp},
	)
	paddleBefore := g.Player().Position()
	ballBefore := g.Ball().Position()

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}

	if g.State() != StateTerminated {
		t.Errorf("State() = %v, expected Terminated", g.State())
	}
	if g.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0", g.Ticks())
	}
	if g.Player().Position() != paddleBefore {
		t.Errorf("paddle moved to %v after Quit", g.Player().Position())
	}
	if g.Ball().Position() != ballBefore {
		t.Errorf("ball moved to %v after Quit", g.Ball().Position())
	}
	if len(rec.frames) != 1 {
		t.Errorf("rendered %d frames, expected only the initial frame", len(rec.frames))
	}
}

func TestRunQuitDropsPendingMove(t *testing.T) {
	g, _, _ := newTestGame(
		scriptedEvent{at: 100 * time.Millisecond, cmd: core.CommandUp},
		scriptedEvent{at: 200 * time.Millisecond, cmd: core.CommandQuit},
	)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}
	if g.Player().Position().Y != 6 {
		t.Errorf("paddle Y = %d, expected 6", g.Player().Position().Y)
	}
}

func TestRunAppliesLastDirectionOncePerTick(t *testing.T) {
	g, _, rec := newTestGame(
		scriptedEvent{at: 100 * time.Millisecond, cmd: core.CommandUp},
		scriptedEvent{at: 300 * time.Millisecond, cmd: core.CommandDown},
		// second tick runs without input, third is cut short
		scriptedEvent{at: 1500 * time.Millisecond, cmd: core.CommandQuit},
	)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}

	if g.Ticks() != 2 {
		t.Fatalf("Ticks() = %d, expected 2", g.Ticks())
	}
	if g.Player().Position().Y != 7 {
		t.Errorf("paddle Y = %d, expected 7 (one Down move only)", g.Player().Position().Y)
	}
	if len(rec.frames) != 3 {
		t.Errorf("rendered %d frames, expected 3", len(rec.frames))
	}
	if rec.frames[1].Paddle.Y != 7 || rec.frames[2].Paddle.Y != 7 {
		t.Errorf("frame paddle rows = %d, %d, expected 7, 7", rec.frames[1].Paddle.Y, rec.frames[2].Paddle.Y)
	}
}

func TestRunPollsWithRemainingBudget(t *testing.T) {
	g, input, _ := newTestGame(
		scriptedEvent{at: 100 * time.Millisecond, cmd: core.CommandDown},
		scriptedEvent{at: 700 * time.Millisecond, cmd: core.CommandQuit},
	)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}

	expected := []time.Duration{
		675 * time.Millisecond, // tick 1 starts, Down arrives at 100ms
		575 * time.Millisecond, // remainder of tick 1
		675 * time.Millisecond, // tick 2 starts at 675ms, Quit at 700ms
	}
	if len(input.waits) != len(expected) {
		t.Fatalf("polled %d times (%v), expected %d", len(input.waits), input.waits, len(expected))
	}
	for i, w := range expected {
		if input.waits[i] != w {
			t.Errorf("poll %d waited %v, expected %v", i, input.waits[i], w)
		}
	}
}

func TestRunMovesBallEveryTick(t *testing.T) {
	g, _, rec := newTestGame(
		scriptedEvent{at: 5*675*time.Millisecond + 10*time.Millisecond, cmd: core.CommandQuit},
	)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}
	if g.Ticks() != 5 {
		t.Fatalf("Ticks() = %d, expected 5", g.Ticks())
	}
	for i := 1; i < len(rec.frames); i++ {
		prev, cur := rec.frames[i-1].Ball, rec.frames[i].Ball
		dx, dy := cur.X-prev.X, cur.Y-prev.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Errorf("frame %d: ball jumped from %v to %v", i, prev, cur)
		}
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	g, _, rec := newTestGame()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, expected context.Canceled", err)
	}
	if g.State() != StateTerminated {
		t.Errorf("State() = %v, expected Terminated", g.State())
	}
	if len(rec.frames) != 1 {
		t.Errorf("rendered %d frames, expected 1", len(rec.frames))
	}
}

func TestStepGlyphFollowsProximitySetting(t *testing.T) {
	tests := []struct {
		name      string
		proximity bool
		changes   bool
	}{
		{"default config", core.DefaultConfig().ProximityGlyph, false},
		{"explicitly off", false, false},
		{"opted in", true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := core.DefaultConfig()
			cfg.Seed = 42
			cfg.ProximityGlyph = tc.proximity
			g := New(cfg, nil, nil)

			seen := map[rune]int{}
			for i := 0; i < 200; i++ {
				g.Step()
				seen[g.Ball().Glyph()]++
			}

			changed := len(seen) > 1 || seen[DefaultBallGlyph] != 200
			if changed != tc.changes {
				t.Errorf("glyphs seen over 200 ticks = %v, expected change = %v", seen, tc.changes)
			}
		})
	}
}

func TestDefaultConfigKeepsGlyphFixed(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g := New(cfg, nil, nil)

	for i := 0; i < 200; i++ {
		g.Step()
		if g.Ball().Glyph() != DefaultBallGlyph {
			t.Fatalf("tick %d: Glyph() = %q, expected %q", i+1, g.Ball().Glyph(), DefaultBallGlyph)
		}
	}
}

func TestStateString(t *testing.T) {
	if StateRunning.String() != "Running" || StateTerminated.String() != "Terminated" {
		t.Error("unexpected State names")
	}
}
