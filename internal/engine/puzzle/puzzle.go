// Package puzzle implements the match-3 mechanics: a 6×6 grid of
// colored tiles, tap-tap adjacent swaps, and row/column match scoring
// against a limited move budget.
package puzzle

import (
	"fmt"
	"math/rand"

	"github.com/vkondratev/pocket-arcade/internal/engine"
	"github.com/vkondratev/pocket-arcade/internal/input"
	"github.com/vkondratev/pocket-arcade/internal/render"
)

const (
	gridSize   = 6
	colorCount = 5
	baseMoves  = 25

	cellW = 4.0
	cellH = 2.0

	particleCap   = 96 // Pool size for match bursts
	particleBurst = 3  // Particles per matched cell
)

var palette = [colorCount]string{"#e74c3c", "#2ecc71", "#3498db", "#f1c40f", "#9b59b6"}

const noSelection = -1

// Engine is the match-3 mechanics module.
type Engine struct {
	cfg engine.Config
	rng *rand.Rand
	st  engine.State

	started  bool
	finished bool

	grid     [gridSize * gridSize]int
	selected int
	moves    int

	messageLeft float64
	particles   *render.ParticleSystem
}

// New creates a puzzle engine for the given config.
func New(cfg engine.Config) engine.Engine {
	e := &Engine{cfg: cfg}
	e.Reset()
	return e
}

func init() {
	engine.Register(engine.TypePuzzle, New)
}

// Type identifies this engine.
func (e *Engine) Type() engine.GameType { return engine.TypePuzzle }

// Reset refills the board without pre-existing matches and restores the
// move budget.
func (e *Engine) Reset() {
	e.rng = rand.New(rand.NewSource(e.cfg.Seed))
	e.st = engine.State{Lives: 1}
	e.started = false
	e.finished = false
	e.selected = noSelection
	e.messageLeft = 0
	e.particles = render.NewParticleSystem(particleCap, e.cfg.Seed)

	e.moves = baseMoves - 3*(e.cfg.Level.Difficulty-1)
	if e.moves < 10 {
		e.moves = 10
	}

	e.fillGrid()
}

// fillGrid colors every cell, skipping any color that would complete a
// run of three with the two cells to the left or above.
func (e *Engine) fillGrid() {
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			for {
				color := e.rng.Intn(colorCount)
				if c >= 2 && e.at(r, c-1) == color && e.at(r, c-2) == color {
					continue
				}
				if r >= 2 && e.at(r-1, c) == color && e.at(r-2, c) == color {
					continue
				}
				e.grid[r*gridSize+c] = color
				break
			}
		}
	}
}

func (e *Engine) at(r, c int) int { return e.grid[r*gridSize+c] }

// Start begins the session.
func (e *Engine) Start() { e.started = true }

// Pause freezes the board.
func (e *Engine) Pause() { e.st.Paused = true }

// Resume reverses Pause.
func (e *Engine) Resume() { e.st.Paused = false }

// State returns the host-visible snapshot.
func (e *Engine) State() engine.State { return e.st }

// HandleInput selects cells on taps; a second tap on an adjacent cell
// swaps the two tiles and spends a move. The swap sticks even when it
// produces no match.
func (e *Engine) HandleInput(ev input.Event) {
	if !e.started || e.finished || e.st.Paused || ev.Type != input.EventTap {
		return
	}

	idx, ok := e.cellAt(ev.X, ev.Y)
	if !ok {
		e.selected = noSelection
		return
	}

	switch {
	case e.selected == noSelection:
		e.selected = idx
	case e.selected == idx:
		e.selected = noSelection
	case adjacent(e.selected, idx):
		e.swap(e.selected, idx)
		e.selected = noSelection
	default:
		e.selected = idx
	}
}

func (e *Engine) cellAt(x, y float64) (int, bool) {
	ox, oy := e.gridOrigin()
	c := int((x - ox) / cellW)
	r := int((y - oy) / cellH)
	if x < ox || y < oy || r < 0 || r >= gridSize || c < 0 || c >= gridSize {
		return 0, false
	}
	return r*gridSize + c, true
}

func (e *Engine) gridOrigin() (float64, float64) {
	ox := (e.cfg.Width - gridSize*cellW) / 2
	oy := (e.cfg.Height - gridSize*cellH) / 2
	return ox, oy
}

func adjacent(a, b int) bool {
	ar, ac := a/gridSize, a%gridSize
	br, bc := b/gridSize, b%gridSize
	dr, dc := ar-br, ac-bc
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

func (e *Engine) swap(a, b int) {
	e.grid[a], e.grid[b] = e.grid[b], e.grid[a]
	e.moves--

	if matched := e.resolveMatches(); matched == 0 {
		e.setMessage("No match")
	}

	if e.st.Score >= e.cfg.Level.TargetScore {
		e.finish(true)
		return
	}
	if e.moves <= 0 {
		e.finish(false)
	}
}

// resolveMatches scans every row and column for runs of three or more
// equal colors, scores the deduplicated matched set, and refills the
// matched cells with random colors. Cascades from the refill are left
// for the next swap to claim. Returns the number of matched cells.
func (e *Engine) resolveMatches() int {
	matched := make(map[int]struct{})

	for r := 0; r < gridSize; r++ {
		run := 1
		for c := 1; c <= gridSize; c++ {
			if c < gridSize && e.at(r, c) == e.at(r, c-1) {
				run++
				continue
			}
			if run >= 3 {
				for k := c - run; k < c; k++ {
					matched[r*gridSize+k] = struct{}{}
				}
			}
			run = 1
		}
	}

	for c := 0; c < gridSize; c++ {
		run := 1
		for r := 1; r <= gridSize; r++ {
			if r < gridSize && e.at(r, c) == e.at(r-1, c) {
				run++
				continue
			}
			if run >= 3 {
				for k := r - run; k < r; k++ {
					matched[k*gridSize+c] = struct{}{}
				}
			}
			run = 1
		}
	}

	if len(matched) == 0 {
		return 0
	}

	ox, oy := e.gridOrigin()
	for idx := range matched {
		r, c := idx/gridSize, idx%gridSize
		e.particles.Emit(
			ox+float64(c)*cellW+cellW/2, oy+float64(r)*cellH+cellH/2,
			particleBurst, render.EmitOptions{
				VelocitySpread: 6,
				MinLife:        300,
				MaxLife:        800,
				MinSize:        0.5,
				MaxSize:        1.5,
				Color:          palette[e.grid[idx]],
			})
		e.grid[idx] = e.rng.Intn(colorCount)
	}

	e.st.Score += len(matched) * e.cfg.Level.CoinValue
	e.cfg.Callbacks.EmitScore(e.st.Score)
	return len(matched)
}

func (e *Engine) setMessage(msg string) {
	e.st.Message = msg
	e.messageLeft = 1.5
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

// Update ages the transient status message and the match particles;
// the board itself is tap-driven.
func (e *Engine) Update(dt float64) {
	if !e.started || e.finished || e.st.Paused {
		return
	}
	if e.messageLeft > 0 {
		e.messageLeft -= dt
		if e.messageLeft <= 0 {
			e.st.Message = ""
		}
	}
	e.particles.Update(dt)
}

// Render draws the board, the selection highlight, and HUD.
func (e *Engine) Render(q *render.Queue) {
	theme := e.cfg.Meta.Theme
	ox, oy := e.gridOrigin()

	bg := render.NewRect("bg", 0, 0, e.cfg.Width, e.cfg.Height, theme.Background)
	bg.Layer = render.LayerBackground
	q.Add(bg)

	for idx, color := range e.grid {
		r, c := idx/gridSize, idx%gridSize
		tile := render.NewRect(fmt.Sprintf("tile-%d", idx),
			ox+float64(c)*cellW, oy+float64(r)*cellH, cellW-1, cellH-1, palette[color])
		q.Add(tile)
	}

	if e.selected != noSelection {
		r, c := e.selected/gridSize, e.selected%gridSize
		sel := render.NewRect("selection",
			ox+float64(c)*cellW, oy+float64(r)*cellH, cellW-1, cellH-1, theme.Accent)
		sel.ZIndex = 1
		sel.Opacity = 0.5
		q.Add(sel)
	}

	for _, p := range e.particles.Shapes() {
		q.Add(p)
	}

	q.Add(render.NewText("hud-score", 2, 1,
		fmt.Sprintf("Score %d / %d", e.st.Score, e.cfg.Level.TargetScore), theme.Text))
	q.Add(render.NewText("hud-moves", 2, 2,
		fmt.Sprintf("Moves %d", e.moves), theme.Text))
	if e.st.Message != "" {
		q.Add(render.NewText("hud-message", 2, 3, e.st.Message, theme.Accent))
	}
}
