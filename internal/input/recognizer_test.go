package input

import (
	"testing"
	"time"
)

// collector records emitted events for assertions.
type collector struct {
	events []Event
}

func (c *collector) subscribe(r *Recognizer, types ...EventType) {
	for _, t := range types {
		t := t
		r.On(t, func(ev Event) {
			c.events = append(c.events, ev)
		})
	}
}

func (c *collector) types() []EventType {
	out := make([]EventType, len(c.events))
	for i, ev := range c.events {
		out[i] = ev.Type
	}
	return out
}

var allTypes = []EventType{
	EventTap, EventDoubleTap, EventLongPress,
	EventSwipeLeft, EventSwipeRight, EventSwipeUp, EventSwipeDown,
	EventDragStart, EventDragMove, EventDragEnd,
}

func newTestRecognizer() (*Recognizer, *collector) {
	r := NewRecognizer(DefaultConfig())
	c := &collector{}
	c.subscribe(r, allTypes...)
	return r, c
}

func TestSingleTap(t *testing.T) {
	r, c := newTestRecognizer()
	now := time.Unix(0, 0)

	r.TouchStart(100, 100, now)
	r.TouchEnd(100, 100, now.Add(50*time.Millisecond))

	if got := c.types(); len(got) != 1 || got[0] != EventTap {
		t.Fatalf("expected exactly one tap, got %v", got)
	}
}

func TestDoubleTapResetsTapMemory(t *testing.T) {
	r, c := newTestRecognizer()
	now := time.Unix(0, 0)

	tap := func(at time.Time) {
		r.TouchStart(100, 100, at)
		r.TouchEnd(100, 100, at.Add(30*time.Millisecond))
	}

	tap(now)                             // tap
	tap(now.Add(150 * time.Millisecond)) // double_tap (within 300ms)
	tap(now.Add(300 * time.Millisecond)) // tap again: memory was reset

	want := []EventType{EventTap, EventDoubleTap, EventTap}
	got := c.types()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSlowSecondTapIsNotDouble(t *testing.T) {
	r, c := newTestRecognizer()
	now := time.Unix(0, 0)

	r.TouchStart(100, 100, now)
	r.TouchEnd(100, 100, now.Add(30*time.Millisecond))

	late := now.Add(400 * time.Millisecond) // beyond 300ms double-tap window
	r.TouchStart(100, 100, late)
	r.TouchEnd(100, 100, late.Add(30*time.Millisecond))

	got := c.types()
	if len(got) != 2 || got[0] != EventTap || got[1] != EventTap {
		t.Fatalf("expected two separate taps, got %v", got)
	}
}

func TestDragSequenceEmitsNoTapOrSwipe(t *testing.T) {
	r, c := newTestRecognizer()
	now := time.Unix(0, 0)

	r.TouchStart(100, 100, now)
	r.TouchMove(120, 100, now.Add(20*time.Millisecond)) // past 10px threshold
	r.TouchMove(140, 100, now.Add(40*time.Millisecond))
	r.TouchMove(160, 100, now.Add(60*time.Millisecond))
	r.TouchEnd(160, 100, now.Add(80*time.Millisecond))

	got := c.types()
	if len(got) == 0 || got[0] != EventDragStart {
		t.Fatalf("expected drag_start first, got %v", got)
	}
	if got[len(got)-1] != EventDragEnd {
		t.Fatalf("expected drag_end last, got %v", got)
	}
	for _, ty := range got[1 : len(got)-1] {
		if ty != EventDragMove {
			t.Fatalf("expected only drag_move between start and end, got %v", got)
		}
	}
}

func TestDragMoveDeltas(t *testing.T) {
	r, c := newTestRecognizer()
	now := time.Unix(0, 0)

	r.TouchStart(0, 0, now)
	r.TouchMove(20, 0, now.Add(10*time.Millisecond)) // drag_start
	r.TouchMove(35, 5, now.Add(20*time.Millisecond)) // drag_move with delta (15, 5)

	var move *Event
	for i := range c.events {
		if c.events[i].Type == EventDragMove {
			move = &c.events[i]
		}
	}
	if move == nil {
		t.Fatal("no drag_move emitted")
	}
	if move.DeltaX != 15 || move.DeltaY != 5 {
		t.Errorf("drag_move delta = (%v, %v), expected (15, 5)", move.DeltaX, move.DeltaY)
	}
}

func TestSwipeClassification(t *testing.T) {
	tests := []struct {
		name     string
		endX     float64
		endY     float64
		expected EventType
	}{
		{"right", 200, 100, EventSwipeRight},
		{"left", 0, 100, EventSwipeLeft},
		{"up", 100, 0, EventSwipeUp},
		{"down", 100, 200, EventSwipeDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, c := newTestRecognizer()
			now := time.Unix(0, 0)

			// Fast direct release: 100px in 100ms = 1 px/ms, above the
			// 0.3 px/ms velocity threshold. No intermediate moves so the
			// drag state machine never engages.
			r.TouchStart(100, 100, now)
			r.TouchEnd(tc.endX, tc.endY, now.Add(100*time.Millisecond))

			got := c.types()
			if len(got) != 1 || got[0] != tc.expected {
				t.Errorf("expected [%v], got %v", tc.expected, got)
			}
		})
	}
}

func TestInstantReleaseIsStillSwipe(t *testing.T) {
	r, c := newTestRecognizer()
	now := time.Unix(0, 0)

	// Same-timestamp start and end beyond the travel threshold. The
	// velocity floor keeps distance/duration finite, so this classifies
	// as a swipe rather than vanishing between the swipe and tap buckets.
	r.TouchStart(100, 100, now)
	r.TouchEnd(200, 100, now)

	if got := c.types(); len(got) != 1 || got[0] != EventSwipeRight {
		t.Errorf("expected [%v], got %v", EventSwipeRight, got)
	}
}

func TestSlowReleaseIsNotSwipe(t *testing.T) {
	r, c := newTestRecognizer()
	now := time.Unix(0, 0)

	r.TouchStart(100, 100, now)
	r.TouchEnd(200, 100, now.Add(600*time.Millisecond)) // past 500ms cutoff

	if got := c.types(); len(got) != 0 {
		t.Errorf("slow release should emit nothing, got %v", got)
	}
}

func TestLongPressFiresOnTick(t *testing.T) {
	r, c := newTestRecognizer()
	now := time.Unix(0, 0)

	r.TouchStart(100, 100, now)
	r.Tick(now.Add(100 * time.Millisecond)) // not due yet
	if len(c.events) != 0 {
		t.Fatalf("long press fired early: %v", c.types())
	}

	r.Tick(now.Add(500 * time.Millisecond))
	if got := c.types(); len(got) != 1 || got[0] != EventLongPress {
		t.Fatalf("expected long_press, got %v", got)
	}

	// Release after a fired long press must not emit a tap.
	r.TouchEnd(100, 100, now.Add(600*time.Millisecond))
	if len(c.events) != 1 {
		t.Errorf("release after long press emitted extra events: %v", c.types())
	}
}

func TestDragCancelsLongPress(t *testing.T) {
	r, c := newTestRecognizer()
	now := time.Unix(0, 0)

	r.TouchStart(100, 100, now)
	r.TouchMove(150, 100, now.Add(50*time.Millisecond)) // starts dragging
	r.Tick(now.Add(1 * time.Second))

	for _, ty := range c.types() {
		if ty == EventLongPress {
			t.Fatal("long press fired after drag started")
		}
	}
}

func TestNewTouchCancelsPendingLongPress(t *testing.T) {
	r, c := newTestRecognizer()
	now := time.Unix(0, 0)

	r.TouchStart(100, 100, now)
	r.TouchStart(200, 200, now.Add(100*time.Millisecond)) // replaces first touch
	r.Tick(now.Add(550 * time.Millisecond))               // first touch's deadline passed

	// Only the second touch's long press may fire, at its own deadline.
	if len(c.events) != 0 {
		t.Fatalf("stale long press fired: %v", c.types())
	}
	r.Tick(now.Add(650 * time.Millisecond))
	if got := c.types(); len(got) != 1 || got[0] != EventLongPress {
		t.Fatalf("expected second touch's long_press, got %v", got)
	}
}

func TestStaleCallbacksAreNoOps(t *testing.T) {
	r, c := newTestRecognizer()
	now := time.Unix(0, 0)

	// Move and end with no live touch must be guarded no-ops.
	r.TouchMove(10, 10, now)
	r.TouchEnd(10, 10, now)
	r.TouchCancel()

	if len(c.events) != 0 {
		t.Errorf("stale callbacks emitted events: %v", c.types())
	}
}

func TestOffIsIdempotent(t *testing.T) {
	r := NewRecognizer(DefaultConfig())
	fired := 0
	id := r.On(EventTap, func(Event) { fired++ })

	r.Off(EventTap, id)
	r.Off(EventTap, id) // second removal is a no-op
	r.Off(EventTap, 999)

	now := time.Unix(0, 0)
	r.TouchStart(0, 0, now)
	r.TouchEnd(0, 0, now.Add(10*time.Millisecond))

	if fired != 0 {
		t.Errorf("removed listener fired %d times", fired)
	}
}

func TestClearCancelsEverything(t *testing.T) {
	r, c := newTestRecognizer()
	now := time.Unix(0, 0)

	r.TouchStart(100, 100, now)
	r.Clear()
	r.Tick(now.Add(1 * time.Second))

	if len(c.events) != 0 {
		t.Errorf("Clear left a pending long press: %v", c.types())
	}
}
