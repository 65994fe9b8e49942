package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkondratev/pocket-arcade/internal/input"
)

// ControlAction is a session-level action derived from a key press, as
// opposed to a gesture delivered to the active engine.
type ControlAction int

const (
	ControlNone ControlAction = iota
	ControlQuit
	ControlPause
	ControlRestart
	ControlBack
)

// KeyMapper translates key messages into session controls and synthetic
// touch gestures. Centralizing the bindings keeps them testable.
//
// Arrow keys double as swipes and cursor movement: swipe-driven engines
// consume the gesture, tap-driven engines use the cursor position the
// next tap lands on.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapControl translates a key to a session control action.
func (km *KeyMapper) MapControl(msg tea.KeyMsg) ControlAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return ControlQuit
	case "p":
		return ControlPause
	case "r":
		return ControlRestart
	case "b", "esc":
		return ControlBack
	}
	return ControlNone
}

// MapGesture translates a key to a synthetic gesture event at the given
// cursor position. Returns false for keys with no gesture binding.
func (km *KeyMapper) MapGesture(msg tea.KeyMsg, x, y float64) (input.Event, bool) {
	var t input.EventType
	switch msg.String() {
	case "left", "h", "a":
		t = input.EventSwipeLeft
	case "right", "l", "d":
		t = input.EventSwipeRight
	case "up", "k", "w":
		t = input.EventSwipeUp
	case "down", "j", "s":
		t = input.EventSwipeDown
	case " ", "enter":
		t = input.EventTap
	default:
		return input.Event{}, false
	}
	return input.Event{Type: t, X: x, Y: y}, true
}

// CursorDelta returns the cursor movement for a key in screen cells.
func (km *KeyMapper) CursorDelta(msg tea.KeyMsg) (dx, dy float64) {
	switch msg.String() {
	case "left", "h", "a":
		return -2, 0
	case "right", "l", "d":
		return 2, 0
	case "up", "k", "w":
		return 0, -1
	case "down", "j", "s":
		return 0, 1
	}
	return 0, 0
}
