// Package runner implements the lane-based endless runner mechanics.
// The player swipes between three lanes while obstacles and coins
// stream in; distance accrues every tick and drives the score.
package runner

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vkondratev/pocket-arcade/internal/engine"
	"github.com/vkondratev/pocket-arcade/internal/input"
	"github.com/vkondratev/pocket-arcade/internal/render"
)

const (
	laneCount = 3
	baseSpeed = 40.0 // World units per second at difficulty 1
	hitWindow = 3.0  // Vertical proximity that counts as a collision
	coinRate  = 0.8  // Expected coin spawns per second
	maxLives  = 3

	particleCap   = 48 // Pool size for pickup bursts
	particleBurst = 6  // Particles per coin pickup
)

type entityKind int

const (
	kindObstacle entityKind = iota
	kindCoin
)

type entity struct {
	id   int
	lane int
	y    float64
	kind entityKind
}

// Engine is the runner mechanics module.
type Engine struct {
	cfg engine.Config
	rng *rand.Rand
	st  engine.State

	started  bool
	finished bool

	lane         int
	distance     float64
	coinScore    int
	speed        float64
	obstacleRate float64
	entities     []entity
	nextID       int
	playerY      float64
	particles    *render.ParticleSystem
}

// New creates a runner engine for the given config.
func New(cfg engine.Config) engine.Engine {
	e := &Engine{cfg: cfg}
	e.Reset()
	return e
}

func init() {
	engine.Register(engine.TypeRunner, New)
}

// Type identifies this engine.
func (e *Engine) Type() engine.GameType { return engine.TypeRunner }

// Reset returns to a fresh, not-yet-started session.
func (e *Engine) Reset() {
	e.rng = rand.New(rand.NewSource(e.cfg.Seed))
	e.st = engine.State{Lives: maxLives}
	e.started = false
	e.finished = false
	e.lane = 1
	e.distance = 0
	e.coinScore = 0
	e.entities = e.entities[:0]
	e.nextID = 0
	e.speed = baseSpeed + float64(e.cfg.Level.Difficulty-1)*10
	e.obstacleRate = float64(e.cfg.Level.Obstacles) * 0.1
	e.playerY = e.cfg.Height - 4
	e.particles = render.NewParticleSystem(particleCap, e.cfg.Seed)
}

// Start begins the session.
func (e *Engine) Start() { e.started = true }

// Pause freezes the simulation.
func (e *Engine) Pause() { e.st.Paused = true }

// Resume reverses Pause.
func (e *Engine) Resume() { e.st.Paused = false }

// State returns the host-visible snapshot.
func (e *Engine) State() engine.State { return e.st }

// HandleInput moves the player between lanes on horizontal swipes.
func (e *Engine) HandleInput(ev input.Event) {
	if !e.started || e.finished || e.st.Paused {
		return
	}
	switch ev.Type {
	case input.EventSwipeLeft:
		if e.lane > 0 {
			e.lane--
		}
	case input.EventSwipeRight:
		if e.lane < laneCount-1 {
			e.lane++
		}
	}
}

// Update advances the run by dt seconds.
func (e *Engine) Update(dt float64) {
	if !e.started || e.finished || e.st.Paused {
		return
	}

	e.distance += e.speed * dt
	e.syncScore()

	// Win check happens before collision handling so a same-tick hit
	// cannot eat a run that just crossed the target distance.
	if e.distance >= float64(e.cfg.Level.TargetScore*10) {
		e.finish(true)
		return
	}

	e.spawn(dt)
	e.advanceEntities(dt)
	e.collide()
	e.particles.Update(dt)
}

func (e *Engine) spawn(dt float64) {
	if e.rng.Float64() < e.obstacleRate*dt {
		e.entities = append(e.entities, entity{
			id: e.nextID, lane: e.rng.Intn(laneCount), kind: kindObstacle,
		})
		e.nextID++
	}
	if e.rng.Float64() < coinRate*dt {
		e.entities = append(e.entities, entity{
			id: e.nextID, lane: e.rng.Intn(laneCount), kind: kindCoin,
		})
		e.nextID++
	}
}

func (e *Engine) advanceEntities(dt float64) {
	alive := e.entities[:0]
	for _, en := range e.entities {
		en.y += e.speed * dt
		if en.y <= e.cfg.Height {
			alive = append(alive, en)
		}
	}
	e.entities = alive
}

func (e *Engine) collide() {
	survivors := e.entities[:0]
	for _, en := range e.entities {
		hit := en.lane == e.lane && math.Abs(en.y-e.playerY) < hitWindow
		if !hit {
			survivors = append(survivors, en)
			continue
		}
		switch en.kind {
		case kindObstacle:
			e.st.Lives--
			e.cfg.Callbacks.EmitLives(e.st.Lives)
			if e.st.Lives <= 0 {
				e.entities = survivors
				e.finish(false)
				return
			}
		case kindCoin:
			e.coinScore += e.cfg.Level.CoinValue
			e.particles.Emit(e.laneX(en.lane), en.y, particleBurst, render.EmitOptions{
				VelocitySpread: 10,
				MinLife:        200,
				MaxLife:        600,
				MinSize:        0.5,
				MaxSize:        1.5,
				Color:          e.cfg.Meta.Theme.Accent,
			})
		}
	}
	e.entities = survivors
	e.syncScore()
}

func (e *Engine) syncScore() {
	score := int(e.distance/10) + e.coinScore
	if score != e.st.Score {
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

func (e *Engine) laneX(lane int) float64 {
	return e.cfg.Width * (2*float64(lane) + 1) / (2 * laneCount)
}

// Render emits the track, entities, player, and HUD.
func (e *Engine) Render(q *render.Queue) {
	theme := e.cfg.Meta.Theme

	bg := render.NewRect("bg", 0, 0, e.cfg.Width, e.cfg.Height, theme.Background)
	bg.Layer = render.LayerBackground
	q.Add(bg)

	for i := 1; i < laneCount; i++ {
		x := e.cfg.Width * float64(i) / laneCount
		divider := render.NewRect(fmt.Sprintf("lane-%d", i), x, 0, 0.5, e.cfg.Height, theme.Secondary)
		divider.Layer = render.LayerBackground
		divider.ZIndex = 1
		q.Add(divider)
	}

	for _, en := range e.entities {
		switch en.kind {
		case kindObstacle:
			q.Add(render.NewSprite(fmt.Sprintf("obstacle-%d", en.id),
				e.laneX(en.lane)-1, en.y, 2, 2, '▓', theme.Primary))
		case kindCoin:
			item := render.NewCircle(fmt.Sprintf("coin-%d", en.id),
				e.laneX(en.lane), en.y, 1, theme.Accent)
			item.ZIndex = 1
			q.Add(item)
		}
	}

	player := render.NewSprite("player", e.laneX(e.lane)-1, e.playerY, 2, 2, '▶', theme.Text)
	player.ZIndex = 2
	q.Add(player)

	for _, p := range e.particles.Shapes() {
		q.Add(p)
	}

	q.Add(render.NewText("hud-score", 2, 1,
		fmt.Sprintf("Score %d", e.st.Score), theme.Text))
	q.Add(render.NewText("hud-lives", 2, 2,
		fmt.Sprintf("Lives %d", e.st.Lives), theme.Text))
	q.Add(render.NewText("hud-distance", 2, 3,
		fmt.Sprintf("%.0fm", e.distance), theme.Secondary))
}
