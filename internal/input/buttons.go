package input

// Button is a virtual on-screen button. Press detection is edge
// triggered: OnPress fires only on the down transition, not while held.
type Button struct {
	ID        string
	X, Y      float64
	Width     float64
	Height    float64
	Label     string
	IsPressed bool
	OnPress   func()
}

// Contains reports whether the point lies inside the button's hit area.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// ButtonManager keeps registered buttons and hit-tests touches against
// them, independently of the gesture state machine.
type ButtonManager struct {
	buttons []*Button
}

// NewButtonManager creates an empty button manager.
func NewButtonManager() *ButtonManager {
	return &ButtonManager{}
}

// Add registers a button, replacing any existing button with the same id.
func (m *ButtonManager) Add(b *Button) {
	for i, existing := range m.buttons {
		if existing.ID == b.ID {
			m.buttons[i] = b
			return
		}
	}
	m.buttons = append(m.buttons, b)
}

// Remove unregisters the button with the given id.
func (m *ButtonManager) Remove(id string) {
	for i, b := range m.buttons {
		if b.ID == id {
			m.buttons = append(m.buttons[:i], m.buttons[i+1:]...)
			return
		}
	}
}

// Get returns the button with the given id, or nil.
func (m *ButtonManager) Get(id string) *Button {
	for _, b := range m.buttons {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Buttons returns the registered buttons in insertion order.
func (m *ButtonManager) Buttons() []*Button {
	return m.buttons
}

// Clear removes all buttons.
func (m *ButtonManager) Clear() {
	m.buttons = nil
}

// HandleTouch hit-tests every button against the touch sample and
// updates IsPressed to mirror the current hit/pressed state.
// Returns true if any button consumed the touch.
func (m *ButtonManager) HandleTouch(x, y float64, pressed bool) bool {
	consumed := false
	for _, b := range m.buttons {
		hit := pressed && b.Contains(x, y)
		if hit && !b.IsPressed && b.OnPress != nil {
			b.OnPress()
		}
		if hit {
			consumed = true
		}
		b.IsPressed = hit
	}
	return consumed
}
