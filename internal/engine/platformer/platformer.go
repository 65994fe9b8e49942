// Package platformer implements the vertical-hopper mechanics: the
// player jumps between platforms toward a goal region at the top, and
// falling off the bottom of the screen ends the run.
package platformer

import (
	"fmt"
	"math/rand"

	"github.com/vkondratev/pocket-arcade/internal/engine"
	"github.com/vkondratev/pocket-arcade/internal/geom"
	"github.com/vkondratev/pocket-arcade/internal/input"
	"github.com/vkondratev/pocket-arcade/internal/render"
)

const (
	gravity     = 300.0  // World units per second squared
	jumpImpulse = -110.0 // Upward launch velocity
	moveSpeed   = 40.0   // Horizontal velocity from a swipe
	playerSize  = 2.0
)

// Engine is the platformer mechanics module.
type Engine struct {
	cfg engine.Config
	rng *rand.Rand
	st  engine.State

	started  bool
	finished bool

	body      *geom.PhysicsBody
	onGround  bool
	platforms []geom.AABB
	goal      geom.AABB
	startY    float64
}

// New creates a platformer engine for the given config.
func New(cfg engine.Config) engine.Engine {
	e := &Engine{cfg: cfg}
	e.Reset()
	return e
}

func init() {
	engine.Register(engine.TypePlatformer, New)
}

// Type identifies this engine.
func (e *Engine) Type() engine.GameType { return engine.TypePlatformer }

// Reset regenerates the platform layout and repositions the player.
func (e *Engine) Reset() {
	e.rng = rand.New(rand.NewSource(e.cfg.Seed))
	e.st = engine.State{Lives: 1}
	e.started = false
	e.finished = false

	e.buildLevel()

	ground := e.platforms[0]
	e.startY = ground.Y - playerSize
	e.body = geom.NewPhysicsBody(ground.X+ground.Width/2, e.startY, 1)
	e.body.Friction = 0.02
	e.onGround = true
}

// buildLevel lays a full-width ground platform, a ladder of smaller
// platforms climbing the screen, and the goal region above the top one.
func (e *Engine) buildLevel() {
	e.platforms = e.platforms[:0]

	groundY := e.cfg.Height - 3
	e.platforms = append(e.platforms, geom.NewAABB(0, groundY, e.cfg.Width, 1))

	count := 6 + e.cfg.Level.Difficulty*2
	platW := geom.Clamp(e.cfg.Width/6, 8, 16)
	gapY := (groundY - 6) / float64(count)

	y := groundY
	for i := 0; i < count; i++ {
		y -= gapY
		x := e.rng.Float64() * (e.cfg.Width - platW)
		e.platforms = append(e.platforms, geom.NewAABB(x, y, platW, 1))
	}

	top := e.platforms[len(e.platforms)-1]
	e.goal = geom.NewAABB(top.X, top.Y-4, platW, 3)
}

// Start begins the session.
func (e *Engine) Start() { e.started = true }

// Pause freezes the simulation.
func (e *Engine) Pause() { e.st.Paused = true }

// Resume reverses Pause.
func (e *Engine) Resume() { e.st.Paused = false }

// State returns the host-visible snapshot.
func (e *Engine) State() engine.State { return e.st }

// HandleInput maps taps to jumps and horizontal swipes to movement.
func (e *Engine) HandleInput(ev input.Event) {
	if !e.started || e.finished || e.st.Paused {
		return
	}
	switch ev.Type {
	case input.EventTap, input.EventSwipeUp:
		if e.onGround {
			e.body.Velocity.Y = jumpImpulse
			e.onGround = false
		}
	case input.EventSwipeLeft:
		e.body.Velocity.X = -moveSpeed
	case input.EventSwipeRight:
		e.body.Velocity.X = moveSpeed
	}
}

// Update integrates gravity and resolves platform landings. A platform
// only catches the player when falling through its top edge between the
// previous and current position; jumping up through a platform is free.
func (e *Engine) Update(dt float64) {
	if !e.started || e.finished || e.st.Paused {
		return
	}

	prevBottom := e.body.Position.Y + playerSize

	e.body.ApplyGravity(gravity)
	e.body.Update(dt)
	e.body.Position.X = geom.Clamp(e.body.Position.X, 0, e.cfg.Width-playerSize)

	if e.body.Velocity.Y > 0 {
		e.landOnPlatform(prevBottom)
	} else if e.body.Velocity.Y < 0 {
		e.onGround = false
	}

	e.syncScore()

	if e.body.Position.Y > e.cfg.Height {
		e.st.Lives = 0
		e.cfg.Callbacks.EmitLives(0)
		e.finish(false)
		return
	}

	if geom.CheckAABBCollision(e.playerBox(), e.goal) {
		e.finish(true)
	}
}

func (e *Engine) landOnPlatform(prevBottom float64) {
	bottom := e.body.Position.Y + playerSize
	left := e.body.Position.X
	right := left + playerSize

	for _, p := range e.platforms {
		if prevBottom <= p.Y && bottom >= p.Y &&
			right > p.X && left < p.Right() {
			e.body.Position.Y = p.Y - playerSize
			e.body.Velocity.Y = 0
			e.onGround = true
			return
		}
	}
}

func (e *Engine) playerBox() geom.AABB {
	return geom.NewAABB(e.body.Position.X, e.body.Position.Y, playerSize, playerSize)
}

// Focus returns the player's center so the host camera tracks the climb.
func (e *Engine) Focus() (float64, float64) {
	return e.body.Position.X + playerSize/2, e.body.Position.Y + playerSize/2
}

// syncScore scores the climb: coin value per 10 units of height gained.
func (e *Engine) syncScore() {
	climbed := e.startY - e.body.Position.Y
	score := 0
	if climbed > 0 {
		score = int(climbed/10) * e.cfg.Level.CoinValue
	}
	if score > e.st.Score {
		e.st.Score = score
		e.cfg.Callbacks.EmitScore(score)
	}
}

func (e *Engine) finish(won bool) {
	if e.finished {
		return
	}
	e.finished = true
	e.st.GameOver = true
	e.st.Won = won
	e.cfg.Callbacks.EmitOutcome(won)
}

// Render emits platforms, the goal, the player, and HUD.
func (e *Engine) Render(q *render.Queue) {
	theme := e.cfg.Meta.Theme

	bg := render.NewRect("bg", 0, 0, e.cfg.Width, e.cfg.Height, theme.Background)
	bg.Layer = render.LayerBackground
	q.Add(bg)

	for i, p := range e.platforms {
		q.Add(render.NewRect(fmt.Sprintf("platform-%d", i), p.X, p.Y, p.Width, p.Height, theme.Primary))
	}

	goal := render.NewRect("goal", e.goal.X, e.goal.Y, e.goal.Width, e.goal.Height, theme.Accent)
	goal.ZIndex = 1
	q.Add(goal)

	player := render.NewSprite("player", e.body.Position.X, e.body.Position.Y,
		playerSize, playerSize, '●', theme.Text)
	player.ZIndex = 2
	q.Add(player)

	q.Add(render.NewText("hud-score", 2, 1,
		fmt.Sprintf("Score %d", e.st.Score), theme.Text))
}
