// Package word implements the letter-pool word game: tap letters into
// a candidate word, submit against a lenient validity check, and beat
// the target score before the countdown expires.
package word

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vkondratev/pocket-arcade/internal/engine"
	"github.com/vkondratev/pocket-arcade/internal/input"
	"github.com/vkondratev/pocket-arcade/internal/render"
)

const (
	poolSize     = 12
	minWordLen   = 3
	defaultTimer = 60.0

	tileW = 4.0
	tileH = 2.0
)

const (
	vowels     = "AEIOU"
	consonants = "BCDFGHJKLMNPQRSTVWXYZ"
)

// knownWords whitelists short words the length heuristic would reject.
// Anything of length >= 4 passes without a dictionary; this is the
// shipped heuristic, not a full word list.
var knownWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"ACE AGE AIR ANT APE ARM ART BAT BED BEE BIG BOX BUS CAR CAT COW CUP " +
			"DAY DOG EAR EAT EGG EYE FAR FLY FOX FUN GEM HAT ICE INK JAM JAR KEY " +
			"LEG LIP MAP MAT NET NUT OAK ONE OWL PAN PEN PIG POT RAT RED RUN SEA " +
			"SIT SKY SUN TEA TEN TOP TOY VAN WAR WAX WEB WIN YES ZOO") {
		knownWords[w] = struct{}{}
	}

	engine.Register(engine.TypeWord, New)
}

type tile struct {
	letter rune
	used   bool
}

// Engine is the word-game mechanics module.
type Engine struct {
	cfg engine.Config
	rng *rand.Rand
	st  engine.State

	started  bool
	finished bool

	pool      [poolSize]tile
	candidate []int // Indexes into pool, in tap order
	submitted map[string]struct{}
	buttons   *input.ButtonManager

	messageLeft float64
}

// New creates a word engine for the given config.
func New(cfg engine.Config) engine.Engine {
	e := &Engine{cfg: cfg}
	e.buttons = input.NewButtonManager()
	e.Reset()
	return e
}

// Type identifies this engine.
func (e *Engine) Type() engine.GameType { return engine.TypeWord }

// Reset rebuilds the letter pool and restarts the countdown.
func (e *Engine) Reset() {
	e.rng = rand.New(rand.NewSource(e.cfg.Seed))
	e.st = engine.State{Lives: 1}
	e.started = false
	e.finished = false
	e.candidate = e.candidate[:0]
	e.submitted = make(map[string]struct{})
	e.messageLeft = 0

	e.st.TimeRemaining = e.cfg.Level.TimeLimit
	if e.st.TimeRemaining <= 0 {
		e.st.TimeRemaining = defaultTimer
	}

	for i := range e.pool {
		e.pool[i] = tile{letter: e.randomLetter()}
	}

	e.layoutButtons()
}

// randomLetter draws with a one-in-three vowel bias.
func (e *Engine) randomLetter() rune {
	if e.rng.Intn(3) == 0 {
		return rune(vowels[e.rng.Intn(len(vowels))])
	}
	return rune(consonants[e.rng.Intn(len(consonants))])
}

func (e *Engine) layoutButtons() {
	e.buttons.Clear()
	_, oy := e.poolOrigin()
	y := oy + 2*tileH + 2
	e.buttons.Add(&input.Button{
		ID: "submit", X: e.cfg.Width/2 - 14, Y: y, Width: 12, Height: 2,
		Label: "SUBMIT", OnPress: e.submit,
	})
	e.buttons.Add(&input.Button{
		ID: "clear", X: e.cfg.Width/2 + 2, Y: y, Width: 12, Height: 2,
		Label: "CLEAR", OnPress: e.clearCandidate,
	})
}

func (e *Engine) poolOrigin() (float64, float64) {
	ox := (e.cfg.Width - 6*tileW) / 2
	oy := (e.cfg.Height - 2*tileH) / 2
	return ox, oy
}

// Start begins the session.
func (e *Engine) Start() { e.started = true }

// Pause freezes the countdown.
func (e *Engine) Pause() { e.st.Paused = true }

// Resume reverses Pause.
func (e *Engine) Resume() { e.st.Paused = false }

// State returns the host-visible snapshot.
func (e *Engine) State() engine.State { return e.st }

// HandleInput routes taps to the buttons first, then to letter tiles.
func (e *Engine) HandleInput(ev input.Event) {
	if !e.started || e.finished || e.st.Paused || ev.Type != input.EventTap {
		return
	}

	consumed := e.buttons.HandleTouch(ev.X, ev.Y, true)
	e.buttons.HandleTouch(-1, -1, false)
	if consumed {
		return
	}

	if idx, ok := e.tileAt(ev.X, ev.Y); ok && !e.pool[idx].used {
		e.pool[idx].used = true
		e.candidate = append(e.candidate, idx)
	}
}

func (e *Engine) tileAt(x, y float64) (int, bool) {
	ox, oy := e.poolOrigin()
	c := int((x - ox) / tileW)
	r := int((y - oy) / tileH)
	if x < ox || y < oy || r < 0 || r >= 2 || c < 0 || c >= 6 {
		return 0, false
	}
	return r*6 + c, true
}

func (e *Engine) candidateWord() string {
	var b strings.Builder
	for _, idx := range e.candidate {
		b.WriteRune(e.pool[idx].letter)
	}
	return b.String()
}

// submit validates the candidate: length >= 3 and either a known word
// or length >= 4. Accepted words score length * coin value and refresh
// the consumed tiles; duplicates and invalid words only flash a notice.
func (e *Engine) submit() {
	word := e.candidateWord()
	if len(word) < minWordLen {
		e.setMessage("Too short")
		e.clearCandidate()
		return
	}
	if _, dup := e.submitted[word]; dup {
		e.setMessage("Already used")
		e.clearCandidate()
		return
	}
	if _, known := knownWords[word]; !known && len(word) < minWordLen+1 {
		e.setMessage("Not a word")
		e.clearCandidate()
		return
	}

	e.submitted[word] = struct{}{}
	e.st.Score += len(word) * e.cfg.Level.CoinValue
	e.cfg.Callbacks.EmitScore(e.st.Score)
	e.setMessage(fmt.Sprintf("+%d  %s", len(word)*e.cfg.Level.CoinValue, word))

	for _, idx := range e.candidate {
		e.pool[idx] = tile{letter: e.randomLetter()}
	}
	e.candidate = e.candidate[:0]
}

func (e *Engine) clearCandidate() {
	for _, idx := range e.candidate {
		e.pool[idx].used = false
	}
	e.candidate = e.candidate[:0]
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

// Update runs the countdown; the outcome is decided only at expiry.
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

	e.st.TimeRemaining -= dt
	if e.st.TimeRemaining <= 0 {
		e.st.TimeRemaining = 0
		e.finish(e.st.Score >= e.cfg.Level.TargetScore)
	}
}

// Render draws the letter pool, candidate, buttons, and HUD.
func (e *Engine) Render(q *render.Queue) {
	theme := e.cfg.Meta.Theme
	ox, oy := e.poolOrigin()

	bg := render.NewRect("bg", 0, 0, e.cfg.Width, e.cfg.Height, theme.Background)
	bg.Layer = render.LayerBackground
	q.Add(bg)

	for i, tl := range e.pool {
		r, c := i/6, i%6
		color := theme.Primary
		if tl.used {
			color = theme.Secondary
		}
		x := ox + float64(c)*tileW
		y := oy + float64(r)*tileH
		q.Add(render.NewRect(fmt.Sprintf("tile-%d", i), x, y, tileW-1, tileH-1, color))
		q.Add(render.NewText(fmt.Sprintf("letter-%d", i), x+1, y, string(tl.letter), theme.Text))
	}

	for _, b := range e.buttons.Buttons() {
		color := theme.Accent
		if b.IsPressed {
			color = theme.Secondary
		}
		q.Add(render.NewRect("btn-"+b.ID, b.X, b.Y, b.Width, b.Height, color))
		q.Add(render.NewText("btnlabel-"+b.ID, b.X+2, b.Y+1, b.Label, theme.Text))
	}

	q.Add(render.NewText("hud-candidate", e.cfg.Width/2-float64(len(e.candidate)), oy-3,
		e.candidateWord(), theme.Text))
	q.Add(render.NewText("hud-score", 2, 1,
		fmt.Sprintf("Score %d / %d", e.st.Score, e.cfg.Level.TargetScore), theme.Text))
	q.Add(render.NewText("hud-timer", 2, 2,
		fmt.Sprintf("Time %.0fs", e.st.TimeRemaining), theme.Text))
	if e.st.Message != "" {
		q.Add(render.NewText("hud-message", 2, 3, e.st.Message, theme.Accent))
	}
}
