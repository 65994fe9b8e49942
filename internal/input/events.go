// Package input converts raw touch samples into discrete gesture events
// and manages virtual on-screen buttons. The recognizer is a state machine
// over one active touch; all timing flows through explicit timestamps so
// behavior is deterministic under test.
package input

import "time"

// EventType identifies a classified gesture.
type EventType int

const (
	EventTap EventType = iota
	EventDoubleTap
	EventLongPress
	EventSwipeLeft
	EventSwipeRight
	EventSwipeUp
	EventSwipeDown
	EventDragStart
	EventDragMove
	EventDragEnd
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventTap:
		return "tap"
	case EventDoubleTap:
		return "double_tap"
	case EventLongPress:
		return "long_press"
	case EventSwipeLeft:
		return "swipe_left"
	case EventSwipeRight:
		return "swipe_right"
	case EventSwipeUp:
		return "swipe_up"
	case EventSwipeDown:
		return "swipe_down"
	case EventDragStart:
		return "drag_start"
	case EventDragMove:
		return "drag_move"
	case EventDragEnd:
		return "drag_end"
	default:
		return "unknown"
	}
}

// Event is a classified gesture. Events are ephemeral: produced and
// consumed within one dispatch, never persisted.
type Event struct {
	Type EventType
	X, Y float64
	At   time.Time

	// DeltaX/DeltaY carry per-step displacement for drag_move events.
	DeltaX, DeltaY float64

	// Duration is set for long_press and swipe events.
	Duration time.Duration
}

// Handler consumes a gesture event.
type Handler func(Event)
