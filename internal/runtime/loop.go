// Package runtime provides the generic frame-driving loop shared by all
// game types. The host (terminal frontend, SSH session, or a test)
// supplies frame timestamps; the loop computes capped delta times and
// dispatches to the active engine's update and render hooks.
package runtime

import (
	"time"

	"github.com/vkondratev/pocket-arcade/internal/render"
)

// MaxDelta caps the simulation step at 1/30 s. After a stall the game
// advances at most this much per frame instead of jumping, which keeps a
// long hitch from snowballing into a spiral of death.
const MaxDelta = time.Second / 30

// Phase is the loop's lifecycle state.
type Phase int

const (
	PhaseStopped Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
	PhaseWon
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "stopped"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Hooks is the slice of the engine contract the loop drives. The loop
// never touches engine-internal state beyond these two calls.
type Hooks interface {
	Update(dt float64)
	Render(q *render.Queue)
}

// Loop owns the frame clock, phase transitions, and the render queue's
// per-frame clear. Exactly one engine is active per loop.
type Loop struct {
	phase Phase
	hooks Hooks
	queue *render.Queue

	lastFrame time.Time
	hasFrame  bool
	elapsed   time.Duration

	onTerminal    func(won bool)
	terminalFired bool

	// Rolling one-second FPS window, diagnostics only.
	fpsWindowStart time.Time
	fpsFrames      int
	fps            int
}

// NewLoop creates a stopped loop driving the given hooks into the queue.
func NewLoop(hooks Hooks, queue *render.Queue) *Loop {
	return &Loop{hooks: hooks, queue: queue}
}

// OnTerminal sets the callback invoked once when the session reaches a
// terminal outcome. The loop keeps ticking afterwards; unmounting or
// resetting is the host's decision.
func (l *Loop) OnTerminal(fn func(won bool)) {
	l.onTerminal = fn
}

// Phase returns the current lifecycle phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Elapsed returns accumulated un-paused game time.
func (l *Loop) Elapsed() time.Duration {
	return l.elapsed
}

// FPS returns the frame count of the last completed one-second window.
func (l *Loop) FPS() int {
	return l.fps
}

// Start transitions stopped -> running and resets session accounting.
func (l *Loop) Start() {
	l.phase = PhaseRunning
	l.hasFrame = false
	l.elapsed = 0
	l.terminalFired = false
	l.fpsFrames = 0
	l.fps = 0
}

// Pause freezes update/render dispatch. Frame ticks keep arriving and
// FPS accounting continues, so Resume is immediate.
func (l *Loop) Pause() {
	if l.phase == PhaseRunning {
		l.phase = PhasePaused
	}
}

// Resume reverses Pause. The next frame's delta is measured from the
// resume-side frame, not across the pause.
func (l *Loop) Resume() {
	if l.phase == PhasePaused {
		l.phase = PhaseRunning
		l.hasFrame = false
	}
}

// Stop halts the loop entirely.
func (l *Loop) Stop() {
	l.phase = PhaseStopped
}

// Finish records the terminal outcome and fires the terminal callback
// exactly once per session. The loop itself does not stop.
func (l *Loop) Finish(won bool) {
	if l.terminalFired {
		return
	}
	l.terminalFired = true
	if won {
		l.phase = PhaseWon
	} else {
		l.phase = PhaseGameOver
	}
	if l.onTerminal != nil {
		l.onTerminal(won)
	}
}

// Advance processes one frame at the given timestamp: delta-time is
// computed from the previous frame and capped at MaxDelta, then on a
// running tick the engine updates, the queue clears, and the engine
// repopulates it. Paused and terminal frames skip dispatch but still
// count toward FPS.
func (l *Loop) Advance(now time.Time) {
	if l.phase == PhaseStopped {
		return
	}

	l.tickFPS(now)

	if !l.hasFrame {
		l.lastFrame = now
		l.hasFrame = true
		return
	}

	delta := now.Sub(l.lastFrame)
	l.lastFrame = now
	if delta > MaxDelta {
		delta = MaxDelta
	}
	if delta < 0 {
		delta = 0
	}

	if l.phase != PhaseRunning {
		return
	}

	dt := delta.Seconds()
	l.hooks.Update(dt)
	l.elapsed += delta

	l.queue.Clear()
	l.hooks.Render(l.queue)
}

func (l *Loop) tickFPS(now time.Time) {
	if l.fpsWindowStart.IsZero() || now.Sub(l.fpsWindowStart) >= time.Second {
		l.fps = l.fpsFrames
		l.fpsFrames = 0
		l.fpsWindowStart = now
	}
	l.fpsFrames++
}
