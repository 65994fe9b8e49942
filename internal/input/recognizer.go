package input

import (
	"math"
	"time"
)

// swipeMaxDuration is the upper bound on a touch that can still classify
// as a swipe; slower releases fall through to tap/no-op classification.
const swipeMaxDuration = 500 * time.Millisecond

// Config parameterizes gesture classification thresholds.
type Config struct {
	DoubleTapThreshold time.Duration // Max gap between taps for a double tap
	LongPressThreshold time.Duration // Hold time before long press fires
	SwipeThreshold     float64       // Min travel distance in px for a swipe
	SwipeVelocity      float64       // Min velocity in px/ms for a swipe
	DragThreshold      float64       // Travel distance in px before a drag starts
}

// DefaultConfig returns the stock gesture thresholds.
func DefaultConfig() Config {
	return Config{
		DoubleTapThreshold: 300 * time.Millisecond,
		LongPressThreshold: 500 * time.Millisecond,
		SwipeThreshold:     50,
		SwipeVelocity:      0.3,
		DragThreshold:      10,
	}
}

// touchState tracks one live touch from start to end/cancel.
// The long-press deadline it owns must be cleared on every exit path:
// drag start, touch end, cancel, and a replacing touch start.
type touchState struct {
	startX, startY   float64
	lastX, lastY     float64
	startedAt        time.Time
	dragging         bool
	longPressDue     time.Time
	longPressPending bool
	longPressFired   bool
}

// Recognizer is the touch-gesture state machine. It is single-threaded:
// the host feeds it touch samples and frame ticks on the same timeline.
type Recognizer struct {
	cfg       Config
	touch     *touchState
	lastTapAt time.Time
	tapArmed  bool

	listeners map[EventType]map[int]Handler
	nextID    int
}

// NewRecognizer creates a recognizer with the given thresholds.
func NewRecognizer(cfg Config) *Recognizer {
	return &Recognizer{
		cfg:       cfg,
		listeners: make(map[EventType]map[int]Handler),
	}
}

// On registers a handler for an event type and returns a subscription id.
func (r *Recognizer) On(t EventType, h Handler) int {
	r.nextID++
	id := r.nextID
	if r.listeners[t] == nil {
		r.listeners[t] = make(map[int]Handler)
	}
	r.listeners[t][id] = h
	return id
}

// Off removes a subscription. Removing an unknown id is a no-op.
func (r *Recognizer) Off(t EventType, id int) {
	delete(r.listeners[t], id)
}

// Clear releases all listeners, discards the active touch, and cancels
// any pending long-press deadline.
func (r *Recognizer) Clear() {
	r.listeners = make(map[EventType]map[int]Handler)
	r.touch = nil
	r.tapArmed = false
}

func (r *Recognizer) emit(ev Event) {
	for _, h := range r.listeners[ev.Type] {
		h(ev)
	}
}

// TouchStart begins tracking a touch. A touch already in flight is
// discarded along with its pending long-press deadline.
func (r *Recognizer) TouchStart(x, y float64, now time.Time) {
	r.touch = &touchState{
		startX:           x,
		startY:           y,
		lastX:            x,
		lastY:            y,
		startedAt:        now,
		longPressDue:     now.Add(r.cfg.LongPressThreshold),
		longPressPending: true,
	}
}

// TouchMove feeds a movement sample. Stale callbacks with no live touch
// are ignored.
func (r *Recognizer) TouchMove(x, y float64, now time.Time) {
	t := r.touch
	if t == nil {
		return
	}

	if !t.dragging {
		disp := math.Hypot(x-t.startX, y-t.startY)
		if disp > r.cfg.DragThreshold {
			t.dragging = true
			t.longPressPending = false
			r.emit(Event{Type: EventDragStart, X: x, Y: y, At: now})
		}
	} else {
		r.emit(Event{
			Type:   EventDragMove,
			X:      x,
			Y:      y,
			At:     now,
			DeltaX: x - t.lastX,
			DeltaY: y - t.lastY,
		})
	}

	t.lastX = x
	t.lastY = y
}

// TouchEnd finishes the touch and classifies it.
func (r *Recognizer) TouchEnd(x, y float64, now time.Time) {
	t := r.touch
	if t == nil {
		return
	}
	r.touch = nil

	if t.dragging {
		r.emit(Event{Type: EventDragEnd, X: x, Y: y, At: now})
		return
	}

	dx := x - t.startX
	dy := y - t.startY
	dist := math.Hypot(dx, dy)
	dur := now.Sub(t.startedAt)

	// Velocity uses a 1 ms duration floor so an instantaneous release
	// (same-timestamp start and end) still classifies as a fast swipe
	// instead of falling between the swipe and tap buckets.
	ms := float64(dur.Milliseconds())
	if ms < 1 {
		ms = 1
	}
	if dist > r.cfg.SwipeThreshold && dur < swipeMaxDuration && dist/ms > r.cfg.SwipeVelocity {
		r.emit(Event{Type: r.swipeDirection(dx, dy), X: x, Y: y, At: now, Duration: dur})
		return
	}

	if t.longPressFired {
		return
	}

	if dist < r.cfg.DragThreshold {
		if r.tapArmed && now.Sub(r.lastTapAt) < r.cfg.DoubleTapThreshold {
			// Disarm so a third rapid tap starts a fresh tap cycle
			// instead of collapsing into another double tap.
			r.tapArmed = false
			r.emit(Event{Type: EventDoubleTap, X: x, Y: y, At: now})
		} else {
			r.tapArmed = true
			r.lastTapAt = now
			r.emit(Event{Type: EventTap, X: x, Y: y, At: now})
		}
	}
}

// TouchCancel discards the active touch without emitting anything.
func (r *Recognizer) TouchCancel() {
	r.touch = nil
}

// Tick advances the recognizer's timeline, firing a due long press.
// The host calls this once per frame.
func (r *Recognizer) Tick(now time.Time) {
	t := r.touch
	if t == nil || !t.longPressPending || t.dragging {
		return
	}
	if !now.Before(t.longPressDue) {
		t.longPressPending = false
		t.longPressFired = true
		r.emit(Event{
			Type:     EventLongPress,
			X:        t.startX,
			Y:        t.startY,
			At:       now,
			Duration: r.cfg.LongPressThreshold,
		})
	}
}

func (r *Recognizer) swipeDirection(dx, dy float64) EventType {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return EventSwipeRight
		}
		return EventSwipeLeft
	}
	if dy > 0 {
		return EventSwipeDown
	}
	return EventSwipeUp
}
