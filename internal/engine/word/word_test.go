package word

import (
	"strings"
	"testing"

	"github.com/vkondratev/pocket-arcade/internal/catalog"
	"github.com/vkondratev/pocket-arcade/internal/engine"
	"github.com/vkondratev/pocket-arcade/internal/input"
)

func testConfig(target int, cb engine.Callbacks) engine.Config {
	return engine.Config{
		Level: catalog.Level{
			ID:          1,
			Difficulty:  1,
			TimeLimit:   30,
			TargetScore: target,
			CoinValue:   5,
		},
		Meta:      catalog.GameTypes()[3],
		Width:     60,
		Height:    30,
		Seed:      42,
		Callbacks: cb,
	}
}

func newStarted(target int, cb engine.Callbacks) *Engine {
	e := New(testConfig(target, cb)).(*Engine)
	e.Start()
	return e
}

func setPool(e *Engine, letters string) {
	for i, r := range letters {
		e.pool[i] = tile{letter: r}
	}
}

func tapTile(e *Engine, i int) {
	ox, oy := e.poolOrigin()
	r, c := i/6, i%6
	e.HandleInput(input.Event{
		Type: input.EventTap,
		X:    ox + float64(c)*tileW + 1,
		Y:    oy + float64(r)*tileH + 0.5,
	})
}

func pressButton(t *testing.T, e *Engine, id string) {
	t.Helper()
	b := e.buttons.Get(id)
	if b == nil {
		t.Fatalf("button %q not registered", id)
	}
	e.HandleInput(input.Event{Type: input.EventTap, X: b.X + 1, Y: b.Y + 1})
}

func TestKnownThreeLetterWordScores(t *testing.T) {
	var scores []int
	e := newStarted(1000, engine.Callbacks{OnScoreChange: func(s int) { scores = append(scores, s) }})
	setPool(e, "CATZZZZZZZZZ")

	tapTile(e, 0)
	tapTile(e, 1)
	tapTile(e, 2)
	if e.candidateWord() != "CAT" {
		t.Fatalf("candidate = %q, want CAT", e.candidateWord())
	}

	pressButton(t, e, "submit")

	if e.State().Score != 15 {
		t.Fatalf("score = %d, want 15", e.State().Score)
	}
	if len(scores) != 1 || scores[0] != 15 {
		t.Fatalf("score callbacks = %v, want [15]", scores)
	}
	if len(e.candidate) != 0 {
		t.Fatal("candidate should reset after an accepted word")
	}
	for i := 0; i < 3; i++ {
		if e.pool[i].used {
			t.Fatalf("tile %d still marked used after refresh", i)
		}
	}
}

func TestLongUnknownWordPassesHeuristic(t *testing.T) {
	e := newStarted(1000, engine.Callbacks{})
	setPool(e, "ZXQJZZZZZZZZ")

	for i := 0; i < 4; i++ {
		tapTile(e, i)
	}
	pressButton(t, e, "submit")

	if e.State().Score != 20 {
		t.Fatalf("score = %d, want length-4 heuristic acceptance (20)", e.State().Score)
	}
}

func TestShortUnknownWordRejected(t *testing.T) {
	e := newStarted(1000, engine.Callbacks{})
	setPool(e, "ZXQZZZZZZZZZ")

	for i := 0; i < 3; i++ {
		tapTile(e, i)
	}
	pressButton(t, e, "submit")

	if e.State().Score != 0 {
		t.Fatalf("score = %d, want rejection", e.State().Score)
	}
	if e.State().Message != "Not a word" {
		t.Fatalf("message = %q", e.State().Message)
	}
	if e.pool[0].used {
		t.Fatal("rejected candidate should release its tiles")
	}
}

func TestTooShortRejected(t *testing.T) {
	e := newStarted(1000, engine.Callbacks{})
	setPool(e, "CAZZZZZZZZZZ")

	tapTile(e, 0)
	tapTile(e, 1)
	pressButton(t, e, "submit")

	if e.State().Score != 0 || e.State().Message != "Too short" {
		t.Fatalf("state = %+v, want too-short rejection", e.State())
	}
}

func TestDuplicateSubmissionRejected(t *testing.T) {
	e := newStarted(1000, engine.Callbacks{})
	setPool(e, "CATZZZZZZZZZ")
	for i := 0; i < 3; i++ {
		tapTile(e, i)
	}
	pressButton(t, e, "submit")

	// Refreshed tiles are random; force the same word again.
	setPool(e, "CATZZZZZZZZZ")
	for i := 0; i < 3; i++ {
		tapTile(e, i)
	}
	pressButton(t, e, "submit")

	if e.State().Score != 15 {
		t.Fatalf("score = %d, duplicate must not score again", e.State().Score)
	}
	if e.State().Message != "Already used" {
		t.Fatalf("message = %q", e.State().Message)
	}
}

func TestTileCannotBeTappedTwice(t *testing.T) {
	e := newStarted(1000, engine.Callbacks{})
	setPool(e, "CATZZZZZZZZZ")

	tapTile(e, 0)
	tapTile(e, 0)

	if got := e.candidateWord(); got != "C" {
		t.Fatalf("candidate = %q, want single C", got)
	}
}

func TestClearButtonReleasesTiles(t *testing.T) {
	e := newStarted(1000, engine.Callbacks{})
	setPool(e, "CATZZZZZZZZZ")
	tapTile(e, 0)
	tapTile(e, 1)

	pressButton(t, e, "clear")

	if len(e.candidate) != 0 {
		t.Fatal("clear should drop the candidate")
	}
	if e.pool[0].used || e.pool[1].used {
		t.Fatal("clear should release the tiles")
	}
}

func TestOutcomeDecidedOnlyAtExpiry(t *testing.T) {
	wins, losses := 0, 0
	e := newStarted(10, engine.Callbacks{
		OnWin:  func() { wins++ },
		OnLose: func() { losses++ },
	})
	setPool(e, "CATZZZZZZZZZ")
	for i := 0; i < 3; i++ {
		tapTile(e, i)
	}
	pressButton(t, e, "submit") // Score 15 >= target 10

	e.Update(1.0)
	if wins != 0 {
		t.Fatal("win must wait for the countdown to expire")
	}

	e.Update(30.0)
	if wins != 1 || losses != 0 {
		t.Fatalf("wins=%d losses=%d after expiry, want 1/0", wins, losses)
	}
	if e.State().TimeRemaining != 0 {
		t.Fatalf("time remaining = %v, want clamped to 0", e.State().TimeRemaining)
	}

	e.Update(1.0)
	if wins != 1 {
		t.Fatal("terminal callback fired more than once")
	}
}

func TestExpiryBelowTargetLoses(t *testing.T) {
	losses := 0
	e := newStarted(100, engine.Callbacks{OnLose: func() { losses++ }})

	e.Update(31.0)

	if losses != 1 {
		t.Fatalf("losses = %d, want 1", losses)
	}
	if !e.State().GameOver || e.State().Won {
		t.Fatalf("state = %+v, want lost game over", e.State())
	}
}

func TestPauseFreezesCountdown(t *testing.T) {
	e := newStarted(100, engine.Callbacks{})
	e.Pause()
	e.Update(10.0)
	if e.State().TimeRemaining != 30 {
		t.Fatalf("time drained while paused: %v", e.State().TimeRemaining)
	}
	tapTile(e, 0)
	if len(e.candidate) != 0 {
		t.Fatal("paused engine must ignore taps")
	}
}

func TestPoolLettersAreUppercaseAlpha(t *testing.T) {
	e := newStarted(100, engine.Callbacks{})
	for i, tl := range e.pool {
		if !strings.ContainsRune(vowels+consonants, tl.letter) {
			t.Fatalf("tile %d holds %q, want A-Z", i, tl.letter)
		}
	}
}

func TestResetRestartsCountdownAndPool(t *testing.T) {
	e := newStarted(10, engine.Callbacks{})
	setPool(e, "CATZZZZZZZZZ")
	for i := 0; i < 3; i++ {
		tapTile(e, i)
	}
	pressButton(t, e, "submit")
	e.Update(31.0)
	if !e.State().GameOver {
		t.Fatal("setup: expected game over")
	}

	e.Reset()
	st := e.State()
	if st.GameOver || st.Score != 0 || st.TimeRemaining != 30 {
		t.Fatalf("state after reset = %+v, want fresh", st)
	}

	// The submitted-word memory resets too.
	e.Start()
	setPool(e, "CATZZZZZZZZZ")
	for i := 0; i < 3; i++ {
		tapTile(e, i)
	}
	pressButton(t, e, "submit")
	if e.State().Score != 15 {
		t.Fatal("previous session's words must be submittable after reset")
	}
}
