package cards

import (
	"testing"

	"github.com/vkondratev/pocket-arcade/internal/catalog"
	"github.com/vkondratev/pocket-arcade/internal/engine"
	"github.com/vkondratev/pocket-arcade/internal/input"
)

func testConfig(cb engine.Callbacks) engine.Config {
	return engine.Config{
		Level: catalog.Level{
			ID:         1,
			Difficulty: 1,
			CoinValue:  5,
		},
		Meta:      catalog.GameTypes()[4],
		Width:     60,
		Height:    30,
		Seed:      42,
		Callbacks: cb,
	}
}

func newStarted(cb engine.Callbacks) *Engine {
	e := New(testConfig(cb)).(*Engine)
	e.Start()
	return e
}

func pressButton(t *testing.T, e *Engine, id string) {
	t.Helper()
	b := e.buttons.Get(id)
	if b == nil {
		t.Fatalf("button %q not registered", id)
	}
	e.HandleInput(input.Event{Type: input.EventTap, X: b.X + 1, Y: b.Y + 1})
}

func TestOpponentBustGivesRoundToPlayer(t *testing.T) {
	var scores []int
	e := newStarted(engine.Callbacks{OnScoreChange: func(s int) { scores = append(scores, s) }})

	e.playerTotal = 18
	e.phase = phaseOpponent
	e.oppTotal = 13

	e.applyOpponentCard(10) // 23: bust

	if e.playerWins != 1 {
		t.Fatalf("playerWins = %d, want 1", e.playerWins)
	}
	if e.phase != phaseInterlude {
		t.Fatal("round end should enter the interlude")
	}
	if len(scores) != 1 || scores[0] != 5 {
		t.Fatalf("score callbacks = %v, want [5]", scores)
	}
}

func TestOpponentStandsOnHigherTotalAndWins(t *testing.T) {
	var lives []int
	e := newStarted(engine.Callbacks{OnLivesChange: func(n int) { lives = append(lives, n) }})

	e.playerTotal = 15
	e.oppTotal = 18
	e.phase = phaseOpponent

	e.Update(0.1)

	if e.oppWins != 1 {
		t.Fatalf("oppWins = %d, want 1", e.oppWins)
	}
	if len(lives) != 1 || lives[0] != 2 {
		t.Fatalf("lives callbacks = %v, want [2]", lives)
	}
}

func TestEqualTotalsPush(t *testing.T) {
	e := newStarted(engine.Callbacks{})

	e.playerTotal = 17
	e.oppTotal = 17
	e.phase = phaseOpponent

	e.Update(0.1)

	if e.playerWins != 0 || e.oppWins != 0 {
		t.Fatalf("push changed the tally: %d-%d", e.playerWins, e.oppWins)
	}
	if e.phase != phaseInterlude {
		t.Fatal("push still ends the round")
	}
}

func TestOpponentDrawsOnOneSecondCadence(t *testing.T) {
	e := newStarted(engine.Callbacks{})

	e.playerTotal = 18
	e.phase = phaseOpponent

	e.Update(0.5)
	if e.oppTotal != 0 {
		t.Fatalf("opponent drew after 0.5s: total %d", e.oppTotal)
	}

	e.Update(0.5)
	if e.oppTotal < 1 || e.oppTotal > maxCard {
		t.Fatalf("opponent total after one draw = %d, want 1..%d", e.oppTotal, maxCard)
	}
}

func TestPlayerBustLosesRound(t *testing.T) {
	var lives []int
	e := newStarted(engine.Callbacks{OnLivesChange: func(n int) { lives = append(lives, n) }})

	for i := 0; i < 30 && e.phase == phasePlayer; i++ {
		e.hit()
	}

	if e.playerTotal <= targetTotal {
		t.Fatalf("expected a bust, total = %d", e.playerTotal)
	}
	if e.oppWins != 1 {
		t.Fatalf("oppWins = %d, want 1", e.oppWins)
	}
	if len(lives) != 1 || lives[0] != 2 {
		t.Fatalf("lives callbacks = %v, want [2]", lives)
	}
}

func TestThreeRoundWinsEndsMatchWithWin(t *testing.T) {
	wins := 0
	e := newStarted(engine.Callbacks{OnWin: func() { wins++ }})

	for round := 0; round < 3; round++ {
		e.playerTotal = 18
		e.oppTotal = 15
		e.phase = phaseOpponent
		e.applyOpponentCard(10) // Bust, round to player
		e.Update(2.5)           // Burn the interlude
	}

	if wins != 1 {
		t.Fatalf("OnWin fired %d times, want 1", wins)
	}
	st := e.State()
	if !st.GameOver || !st.Won || st.Score != 15 {
		t.Fatalf("state = %+v, want won match with score 15", st)
	}

	// Finished engine ignores further play.
	total := e.playerTotal
	e.Update(5.0)
	pressButton(t, e, "hit")
	if e.playerTotal != total {
		t.Fatal("finished engine must ignore taps")
	}
	if wins != 1 {
		t.Fatal("terminal callback fired again after match end")
	}
}

func TestThreeRoundLossesEndsMatchWithLose(t *testing.T) {
	losses := 0
	var lives []int
	e := newStarted(engine.Callbacks{
		OnLose:        func() { losses++ },
		OnLivesChange: func(n int) { lives = append(lives, n) },
	})

	for round := 0; round < 3; round++ {
		e.playerTotal = 10
		e.oppTotal = 15
		e.phase = phaseOpponent
		e.Update(0.1) // Opponent already ahead: settles the round
		e.Update(2.5)
	}

	if losses != 1 {
		t.Fatalf("OnLose fired %d times, want 1", losses)
	}
	if len(lives) != 3 || lives[0] != 2 || lives[1] != 1 || lives[2] != 0 {
		t.Fatalf("lives callbacks = %v, want [2 1 0]", lives)
	}
	if e.State().Won {
		t.Fatal("lost match marked as won")
	}
}

func TestHitAndStandButtons(t *testing.T) {
	e := newStarted(engine.Callbacks{})

	pressButton(t, e, "hit")
	if e.playerTotal < 1 || e.playerTotal > maxCard {
		t.Fatalf("player total after one hit = %d, want 1..%d", e.playerTotal, maxCard)
	}

	pressButton(t, e, "stand")
	if e.phase != phaseOpponent {
		t.Fatal("stand should hand the round to the opponent")
	}

	total := e.playerTotal
	pressButton(t, e, "hit")
	if e.playerTotal != total {
		t.Fatal("hit must be dead outside the player phase")
	}
}

func TestInterludeDealsFreshRound(t *testing.T) {
	e := newStarted(engine.Callbacks{})

	e.playerTotal = 18
	e.oppTotal = 15
	e.phase = phaseOpponent
	e.applyOpponentCard(10)

	e.Update(1.0)
	if e.phase != phaseInterlude {
		t.Fatal("interlude should hold for two seconds")
	}

	e.Update(1.1)
	if e.phase != phasePlayer {
		t.Fatal("interlude should deal a fresh round")
	}
	if e.playerTotal != 0 || e.oppTotal != 0 {
		t.Fatalf("fresh round totals = %d/%d, want 0/0", e.playerTotal, e.oppTotal)
	}
	if e.State().Message != "" {
		t.Fatalf("message = %q, want cleared", e.State().Message)
	}
	if e.playerWins != 1 {
		t.Fatal("round tally must survive the redeal")
	}
}

func TestPauseFreezesOpponentClock(t *testing.T) {
	e := newStarted(engine.Callbacks{})

	e.playerTotal = 18
	e.phase = phaseOpponent
	e.Pause()
	e.Update(5.0)

	if e.oppTotal != 0 {
		t.Fatalf("opponent drew while paused: total %d", e.oppTotal)
	}
	pressButton(t, e, "hit")
	if e.playerTotal != 18 {
		t.Fatal("paused engine must ignore taps")
	}
}

func TestResetClearsMatch(t *testing.T) {
	e := newStarted(engine.Callbacks{})
	e.playerWins = 2
	e.oppWins = 2
	e.playerTotal = 12

	e.Reset()

	if e.playerWins != 0 || e.oppWins != 0 || e.playerTotal != 0 {
		t.Fatal("reset must clear the match tally and totals")
	}
	st := e.State()
	if st.GameOver || st.Lives != roundsToWin {
		t.Fatalf("state after reset = %+v, want fresh with %d lives", st, roundsToWin)
	}
}
