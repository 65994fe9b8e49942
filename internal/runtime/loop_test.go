package runtime

import (
	"testing"
	"time"

	"github.com/vkondratev/pocket-arcade/internal/render"
)

// fakeEngine records the deltas and render calls it receives.
type fakeEngine struct {
	deltas  []float64
	renders int
	emit    bool
}

func (f *fakeEngine) Update(dt float64) {
	f.deltas = append(f.deltas, dt)
}

func (f *fakeEngine) Render(q *render.Queue) {
	f.renders++
	if f.emit {
		q.Add(render.NewRect("player", 0, 0, 1, 1, "#fff"))
	}
}

func TestDeltaTimeCapped(t *testing.T) {
	eng := &fakeEngine{}
	l := NewLoop(eng, render.NewQueue())
	l.Start()

	now := time.Unix(0, 0)
	l.Advance(now)                      // primes the frame clock
	l.Advance(now.Add(2 * time.Second)) // huge stall

	if len(eng.deltas) != 1 {
		t.Fatalf("expected 1 update, got %d", len(eng.deltas))
	}
	if want := MaxDelta.Seconds(); eng.deltas[0] != want {
		t.Errorf("delta = %v, expected cap %v", eng.deltas[0], want)
	}
}

func TestNormalDeltaPassesThrough(t *testing.T) {
	eng := &fakeEngine{}
	l := NewLoop(eng, render.NewQueue())
	l.Start()

	now := time.Unix(0, 0)
	l.Advance(now)
	l.Advance(now.Add(16 * time.Millisecond))

	if len(eng.deltas) != 1 {
		t.Fatalf("expected 1 update, got %d", len(eng.deltas))
	}
	if want := (16 * time.Millisecond).Seconds(); eng.deltas[0] != want {
		t.Errorf("delta = %v, expected %v", eng.deltas[0], want)
	}
}

func TestPauseSkipsTicksButKeepsLoopAlive(t *testing.T) {
	eng := &fakeEngine{}
	l := NewLoop(eng, render.NewQueue())
	l.Start()

	now := time.Unix(0, 0)
	l.Advance(now)
	l.Advance(now.Add(16 * time.Millisecond))

	l.Pause()
	l.Advance(now.Add(32 * time.Millisecond))
	l.Advance(now.Add(48 * time.Millisecond))

	if len(eng.deltas) != 1 {
		t.Fatalf("paused ticks should skip update, got %d updates", len(eng.deltas))
	}

	l.Resume()
	l.Advance(now.Add(64 * time.Millisecond)) // primes after resume
	l.Advance(now.Add(80 * time.Millisecond))

	if len(eng.deltas) != 2 {
		t.Fatalf("resume should restore updates, got %d", len(eng.deltas))
	}
	// The pause gap must not leak into the post-resume delta.
	if want := (16 * time.Millisecond).Seconds(); eng.deltas[1] != want {
		t.Errorf("post-resume delta = %v, expected %v", eng.deltas[1], want)
	}
}

func TestElapsedAccumulatesOnlyWhileRunning(t *testing.T) {
	eng := &fakeEngine{}
	l := NewLoop(eng, render.NewQueue())
	l.Start()

	now := time.Unix(0, 0)
	l.Advance(now)
	l.Advance(now.Add(10 * time.Millisecond))
	l.Pause()
	l.Advance(now.Add(500 * time.Millisecond))
	l.Resume()
	l.Advance(now.Add(510 * time.Millisecond))
	l.Advance(now.Add(520 * time.Millisecond))

	if want := 20 * time.Millisecond; l.Elapsed() != want {
		t.Errorf("Elapsed() = %v, expected %v", l.Elapsed(), want)
	}
}

func TestQueueClearedBeforeRender(t *testing.T) {
	eng := &fakeEngine{emit: true}
	q := render.NewQueue()
	q.Add(render.NewRect("stale", 0, 0, 1, 1, "#000"))

	l := NewLoop(eng, q)
	l.Start()

	now := time.Unix(0, 0)
	l.Advance(now)
	l.Advance(now.Add(16 * time.Millisecond))

	if q.Len() != 1 {
		t.Fatalf("queue should hold only this frame's items, len = %d", q.Len())
	}
	if q.Update("stale", func(*render.Item) {}) {
		t.Error("stale item survived the per-frame clear")
	}
}

func TestTerminalCallbackFiresOnce(t *testing.T) {
	eng := &fakeEngine{}
	l := NewLoop(eng, render.NewQueue())

	outcomes := []bool{}
	l.OnTerminal(func(won bool) { outcomes = append(outcomes, won) })

	l.Start()
	l.Finish(true)
	l.Finish(true)
	l.Finish(false) // repeated outcomes are swallowed

	if len(outcomes) != 1 || !outcomes[0] {
		t.Errorf("terminal callback outcomes = %v, expected [true]", outcomes)
	}
	if l.Phase() != PhaseWon {
		t.Errorf("phase = %v, expected won", l.Phase())
	}
}

func TestTerminalPhaseSkipsUpdates(t *testing.T) {
	eng := &fakeEngine{}
	l := NewLoop(eng, render.NewQueue())
	l.Start()

	now := time.Unix(0, 0)
	l.Advance(now)
	l.Finish(false)
	l.Advance(now.Add(16 * time.Millisecond))
	l.Advance(now.Add(32 * time.Millisecond))

	if len(eng.deltas) != 0 {
		t.Errorf("game-over ticks should not update the engine, got %d updates", len(eng.deltas))
	}
}

func TestRestartAfterTerminal(t *testing.T) {
	eng := &fakeEngine{}
	l := NewLoop(eng, render.NewQueue())

	fired := 0
	l.OnTerminal(func(bool) { fired++ })

	l.Start()
	l.Finish(false)
	l.Start() // new session re-arms the terminal callback
	l.Finish(true)

	if fired != 2 {
		t.Errorf("terminal callback fired %d times across two sessions, expected 2", fired)
	}
}

func TestFPSWindow(t *testing.T) {
	eng := &fakeEngine{}
	l := NewLoop(eng, render.NewQueue())
	l.Start()

	now := time.Unix(0, 0)
	for i := 0; i < 60; i++ {
		l.Advance(now.Add(time.Duration(i) * time.Second / 60))
	}
	// Crossing the one-second boundary publishes the window count.
	l.Advance(now.Add(time.Second))

	if l.FPS() != 60 {
		t.Errorf("FPS() = %d, expected 60", l.FPS())
	}
}
