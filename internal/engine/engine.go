// Package engine defines the uniform lifecycle contract every game
// mechanics module implements, and the factory that selects one by game
// type. Engines contain pure game logic: the platform handles timing,
// raw input mapping, and presentation.
package engine

import (
	"github.com/vkondratev/pocket-arcade/internal/catalog"
	"github.com/vkondratev/pocket-arcade/internal/input"
	"github.com/vkondratev/pocket-arcade/internal/render"
)

// State is the host-visible slice of an engine's runtime state.
// Everything game-specific stays inside the engine.
type State struct {
	Score         int
	Lives         int
	TimeRemaining float64 // Seconds; 0 when untimed
	Paused        bool
	GameOver      bool
	Won           bool
	// Message is a transient user-visible notice (invalid word,
	// round result). Cleared by the engine itself.
	Message string
}

// Callbacks let an engine report progress without owning the host's
// persisted totals. All fields are optional.
type Callbacks struct {
	OnScoreChange func(score int)
	OnLivesChange func(lives int)
	OnWin         func()
	OnLose        func()
}

// EmitScore invokes OnScoreChange when set.
func (c Callbacks) EmitScore(score int) {
	if c.OnScoreChange != nil {
		c.OnScoreChange(score)
	}
}

// EmitLives invokes OnLivesChange when set.
func (c Callbacks) EmitLives(lives int) {
	if c.OnLivesChange != nil {
		c.OnLivesChange(lives)
	}
}

// EmitOutcome invokes OnWin or OnLose when set. Engines guard this so
// it fires at most once per session.
func (c Callbacks) EmitOutcome(won bool) {
	if won {
		if c.OnWin != nil {
			c.OnWin()
		}
		return
	}
	if c.OnLose != nil {
		c.OnLose()
	}
}

// Config is everything an engine needs at construction: the selected
// level, its game type's static configuration, the world dimensions,
// an RNG seed for deterministic replay, and the host callbacks.
type Config struct {
	Level     catalog.Level
	Meta      catalog.GameTypeConfig
	Width     float64
	Height    float64
	Seed      int64
	Callbacks Callbacks
}

// Engine is the uniform contract implemented by every mechanics module.
// Update and Render are driven by the shared runtime loop; engines keep
// no timers of their own, so pause and teardown cannot leak them.
type Engine interface {
	// Type identifies which mechanics module this is.
	Type() GameType

	// Start begins a fresh session.
	Start()

	// Pause freezes the simulation; Update becomes a no-op.
	Pause()

	// Resume reverses Pause.
	Resume()

	// Reset returns the engine to its pre-Start state with a fresh
	// session, keeping configuration.
	Reset()

	// State returns the host-visible snapshot.
	State() State

	// HandleInput consumes one gesture event.
	HandleInput(ev input.Event)

	// Update advances the simulation by dt seconds of game time.
	Update(dt float64)

	// Render emits this frame's drawables into the queue, which the
	// runtime has already cleared.
	Render(q *render.Queue)
}

// Focuser is an optional engine capability: engines with a moving
// center of interest expose it so the host camera can follow it.
type Focuser interface {
	Focus() (x, y float64)
}
