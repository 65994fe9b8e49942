// Package cards implements the blackjack-style duel: hit toward 20
// without busting, then watch a timed opponent draw; first side to
// three round wins takes the match.
package cards

import (
	"fmt"
	"math/rand"

	"github.com/vkondratev/pocket-arcade/internal/engine"
	"github.com/vkondratev/pocket-arcade/internal/input"
	"github.com/vkondratev/pocket-arcade/internal/render"
)

const (
	targetTotal = 20
	roundsToWin = 3
	maxCard     = 10

	aiDrawEvery   = 1.0 // Seconds between opponent draws
	interludeTime = 2.0 // Seconds the round result stays on screen
)

type phase int

const (
	phasePlayer phase = iota
	phaseOpponent
	phaseInterlude
)

type side int

const (
	sidePush side = iota
	sidePlayer
	sideOpponent
)

// Engine is the card-duel mechanics module.
type Engine struct {
	cfg engine.Config
	rng *rand.Rand
	st  engine.State

	started  bool
	finished bool

	phase       phase
	playerTotal int
	oppTotal    int
	playerWins  int
	oppWins     int

	aiClock       float64
	interludeLeft float64

	buttons *input.ButtonManager
}

// New creates a cards engine for the given config.
func New(cfg engine.Config) engine.Engine {
	e := &Engine{cfg: cfg}
	e.buttons = input.NewButtonManager()
	e.Reset()
	return e
}

func init() {
	engine.Register(engine.TypeCard, New)
}

// Type identifies this engine.
func (e *Engine) Type() engine.GameType { return engine.TypeCard }

// Reset clears both round tallies and deals a fresh round.
func (e *Engine) Reset() {
	e.rng = rand.New(rand.NewSource(e.cfg.Seed))
	e.st = engine.State{Lives: roundsToWin}
	e.started = false
	e.finished = false
	e.playerWins = 0
	e.oppWins = 0
	e.nextRound()
	e.layoutButtons()
}

func (e *Engine) nextRound() {
	e.phase = phasePlayer
	e.playerTotal = 0
	e.oppTotal = 0
	e.aiClock = 0
	e.interludeLeft = 0
}

func (e *Engine) layoutButtons() {
	e.buttons.Clear()
	y := e.cfg.Height - 5
	e.buttons.Add(&input.Button{
		ID: "hit", X: e.cfg.Width/2 - 14, Y: y, Width: 12, Height: 3,
		Label: "HIT", OnPress: e.hit,
	})
	e.buttons.Add(&input.Button{
		ID: "stand", X: e.cfg.Width/2 + 2, Y: y, Width: 12, Height: 3,
		Label: "STAND", OnPress: e.stand,
	})
}

// Start begins the session.
func (e *Engine) Start() { e.started = true }

// Pause freezes the opponent clock.
func (e *Engine) Pause() { e.st.Paused = true }

// Resume reverses Pause.
func (e *Engine) Resume() { e.st.Paused = false }

// State returns the host-visible snapshot.
func (e *Engine) State() engine.State { return e.st }

// HandleInput routes taps to the hit/stand buttons.
func (e *Engine) HandleInput(ev input.Event) {
	if !e.started || e.finished || e.st.Paused || ev.Type != input.EventTap {
		return
	}
	e.buttons.HandleTouch(ev.X, ev.Y, true)
	e.buttons.HandleTouch(-1, -1, false)
}

func (e *Engine) drawCard() int {
	return e.rng.Intn(maxCard) + 1
}

func (e *Engine) hit() {
	if e.phase != phasePlayer {
		return
	}
	e.playerTotal += e.drawCard()
	if e.playerTotal > targetTotal {
		e.endRound(sideOpponent, "Bust!")
	}
}

func (e *Engine) stand() {
	if e.phase != phasePlayer {
		return
	}
	e.phase = phaseOpponent
	e.aiClock = 0
}

// applyOpponentCard adds one opponent draw and settles the round when
// the draw busts.
func (e *Engine) applyOpponentCard(card int) {
	e.oppTotal += card
	if e.oppTotal > targetTotal {
		e.endRound(sidePlayer, "Opponent busts!")
	}
}

// settleStand compares the standing totals: the opponent only stops
// drawing at or above the player's total, so at settlement the higher
// total is closer to 20 and equal totals push.
func (e *Engine) settleStand() {
	switch {
	case e.oppTotal == e.playerTotal:
		e.endRound(sidePush, "Push")
	case e.oppTotal > e.playerTotal:
		e.endRound(sideOpponent, "Opponent wins the round")
	default:
		e.endRound(sidePlayer, "Round won")
	}
}

func (e *Engine) endRound(winner side, msg string) {
	e.st.Message = msg

	switch winner {
	case sidePlayer:
		e.playerWins++
		e.st.Score = e.playerWins * e.cfg.Level.CoinValue
		e.cfg.Callbacks.EmitScore(e.st.Score)
	case sideOpponent:
		e.oppWins++
		e.st.Lives = roundsToWin - e.oppWins
		e.cfg.Callbacks.EmitLives(e.st.Lives)
	}

	if e.playerWins >= roundsToWin {
		e.finish(true)
		return
	}
	if e.oppWins >= roundsToWin {
		e.finish(false)
		return
	}

	e.phase = phaseInterlude
	e.interludeLeft = interludeTime
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

// Update advances the opponent draw clock and the between-round pause.
// All timing accumulates dt; nothing runs off wall-clock timers.
func (e *Engine) Update(dt float64) {
	if !e.started || e.finished || e.st.Paused {
		return
	}

	switch e.phase {
	case phaseOpponent:
		if e.oppTotal >= e.playerTotal {
			e.settleStand()
			return
		}
		e.aiClock += dt
		for e.aiClock >= aiDrawEvery && e.phase == phaseOpponent {
			e.aiClock -= aiDrawEvery
			if e.oppTotal >= e.playerTotal {
				e.settleStand()
				return
			}
			e.applyOpponentCard(e.drawCard())
		}
	case phaseInterlude:
		e.interludeLeft -= dt
		if e.interludeLeft <= 0 {
			e.st.Message = ""
			e.nextRound()
		}
	}
}

// Render draws both totals, the round tally, and the action buttons.
// The opponent's total stays hidden until the player stands.
func (e *Engine) Render(q *render.Queue) {
	theme := e.cfg.Meta.Theme

	bg := render.NewRect("bg", 0, 0, e.cfg.Width, e.cfg.Height, theme.Background)
	bg.Layer = render.LayerBackground
	q.Add(bg)

	oppShown := "?"
	if e.phase != phasePlayer {
		oppShown = fmt.Sprintf("%d", e.oppTotal)
	}
	q.Add(render.NewText("opp-total", e.cfg.Width/2-6, 4,
		fmt.Sprintf("Opponent: %s", oppShown), theme.Secondary))
	q.Add(render.NewText("player-total", e.cfg.Width/2-6, e.cfg.Height-8,
		fmt.Sprintf("You: %d / %d", e.playerTotal, targetTotal), theme.Primary))

	q.Add(render.NewText("hud-rounds", 2, 1,
		fmt.Sprintf("Rounds %d - %d (first to %d)", e.playerWins, e.oppWins, roundsToWin), theme.Text))

	for _, b := range e.buttons.Buttons() {
		color := theme.Accent
		if e.phase != phasePlayer {
			color = theme.Secondary
		}
		q.Add(render.NewRect("btn-"+b.ID, b.X, b.Y, b.Width, b.Height, color))
		q.Add(render.NewText("btnlabel-"+b.ID, b.X+3, b.Y+1, b.Label, theme.Text))
	}

	if e.st.Message != "" {
		msg := render.NewText("hud-message", e.cfg.Width/2-8, e.cfg.Height/2, e.st.Message, theme.Accent)
		msg.ZIndex = 2
		q.Add(msg)
	}
}
