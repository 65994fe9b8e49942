package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkondratev/pocket-arcade/internal/camera"
	"github.com/vkondratev/pocket-arcade/internal/catalog"
	"github.com/vkondratev/pocket-arcade/internal/engine"
	"github.com/vkondratev/pocket-arcade/internal/geom"
	"github.com/vkondratev/pocket-arcade/internal/input"
	"github.com/vkondratev/pocket-arcade/internal/render"
	"github.com/vkondratev/pocket-arcade/internal/runtime"
	"github.com/vkondratev/pocket-arcade/internal/save"
)

// sessionStats mirrors the active engine's callback stream. Held by
// pointer so the engine closures and the value-copied model agree.
type sessionStats struct {
	score int
	saved bool
}

// overlayReveal is how long the pause/terminal overlay takes to slide in.
const overlayReveal = 400 * time.Millisecond

// followSmoothing is the camera's per-tick convergence rate toward the
// engine's focus point.
const followSmoothing = 0.15

// overlayState animates the overlay title's slide-in. Held by pointer
// for the same reason as sessionStats.
type overlayState struct {
	anim     *render.Animation
	progress float64
	phase    runtime.Phase
}

// GameConfig carries everything needed to host one game session.
type GameConfig struct {
	Type   engine.GameType
	Level  catalog.Level
	Meta   catalog.GameTypeConfig
	Width  int
	Height int
	FPS    int
	Seed   int64
}

// GameModel is the Bubble Tea model hosting one engine behind the
// frame loop, recognizer, camera, and screen buffer.
type GameModel struct {
	cfg    GameConfig
	eng    engine.Engine
	loop   *runtime.Loop
	queue  *render.Queue
	cam    *camera.Camera
	rec    *input.Recognizer
	screen *Screen
	keys    *KeyMapper
	store   *save.Store
	stats   *sessionStats
	overlay *overlayState

	cursorX, cursorY float64

	quitting   bool
	backToMenu bool
	standalone bool // No menu to go back to; back quits instead
}

// NewGameModel wires an engine, loop, and input pipeline for the given
// game. A zero seed is replaced with the wall clock.
func NewGameModel(cfg GameConfig, store *save.Store) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}

	queue := render.NewQueue()
	stats := &sessionStats{}

	var loop *runtime.Loop
	eng := engine.New(cfg.Type, engine.Config{
		Level:  cfg.Level,
		Meta:   cfg.Meta,
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
		Seed:   cfg.Seed,
		Callbacks: engine.Callbacks{
			OnScoreChange: func(s int) { stats.score = s },
			OnWin:         func() { loop.Finish(true) },
			OnLose:        func() { loop.Finish(false) },
		},
	})
	loop = runtime.NewLoop(eng, queue)

	m := GameModel{
		cfg:     cfg,
		eng:     eng,
		loop:    loop,
		queue:   queue,
		cam:     camera.New(float64(cfg.Width), float64(cfg.Height)),
		rec:     input.NewRecognizer(input.DefaultConfig()),
		screen:  NewScreen(cfg.Width, cfg.Height),
		keys:    NewKeyMapper(),
		store:   store,
		stats:   stats,
		overlay: &overlayState{},
		cursorX: float64(cfg.Width) / 2,
		cursorY: float64(cfg.Height) / 2,
	}

	// Gestures recognized from raw touches feed the engine directly.
	for _, t := range []input.EventType{
		input.EventTap, input.EventDoubleTap, input.EventLongPress,
		input.EventSwipeLeft, input.EventSwipeRight,
		input.EventSwipeUp, input.EventSwipeDown,
		input.EventDragStart, input.EventDragMove, input.EventDragEnd,
	} {
		m.rec.On(t, eng.HandleInput)
	}

	loop.OnTerminal(m.recordOutcome)

	return m
}

// recordOutcome persists the finished run: score always, coins and the
// unlock only on a win. Failures are best effort; play continues.
func (m GameModel) recordOutcome(won bool) {
	if m.store == nil || m.stats.saved {
		return
	}
	m.stats.saved = true

	gameType := m.cfg.Type.String()
	if won {
		//nolint:errcheck // Best-effort save
		m.store.RecordCompletion(gameType, m.cfg.Level.ID, m.stats.score, m.stats.score/2)
		return
	}
	if m.stats.score > 0 {
		//nolint:errcheck // Best-effort save
		m.store.SubmitScore(gameType, m.cfg.Level.ID, m.stats.score)
	}
}

// Init starts the engine and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.eng.Start()
	m.loop.Start()
	return tickCmd(m.cfg.FPS)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.cfg.Width = msg.Width
		m.cfg.Height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.cam.Width = float64(msg.Width)
		m.cam.Height = float64(msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapControl(msg) {
	case ControlQuit:
		m.quitting = true
		m.rec.Clear()
		return m, tea.Quit

	case ControlPause:
		if m.loop.Phase() == runtime.PhasePaused {
			m.eng.Resume()
			m.loop.Resume()
		} else if m.loop.Phase() == runtime.PhaseRunning {
			m.eng.Pause()
			m.loop.Pause()
		}
		return m, nil

	case ControlRestart:
		m.eng.Reset()
		m.eng.Start()
		m.loop.Start()
		m.stats.score = 0
		m.stats.saved = false
		return m, nil

	case ControlBack:
		phase := m.loop.Phase()
		if phase == runtime.PhaseGameOver || phase == runtime.PhaseWon || phase == runtime.PhasePaused {
			m.backToMenu = true
			m.rec.Clear()
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil
	}

	dx, dy := m.keys.CursorDelta(msg)
	m.cursorX = geom.Clamp(m.cursorX+dx, 0, float64(m.cfg.Width-1))
	m.cursorY = geom.Clamp(m.cursorY+dy, 0, float64(m.cfg.Height-1))

	if ev, ok := m.keys.MapGesture(msg, m.cursorX, m.cursorY); ok {
		m.eng.HandleInput(ev)
	}
	return m, nil
}

// handleMouse feeds raw touch samples to the gesture recognizer, which
// emits taps/swipes/drags back into the engine.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := float64(msg.X), float64(msg.Y)
	now := time.Now()

	switch msg.Action {
	case tea.MouseActionPress:
		m.rec.TouchStart(x, y, now)
	case tea.MouseActionMotion:
		m.rec.TouchMove(x, y, now)
	case tea.MouseActionRelease:
		m.rec.TouchEnd(x, y, now)
	}

	m.cursorX, m.cursorY = x, y
	return m, nil
}

func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.rec.Tick(now)
	m.loop.Advance(now)

	if f, ok := m.eng.(engine.Focuser); ok {
		fx, fy := f.Focus()
		m.cam.Follow(fx, fy, followSmoothing)
		m.cam.ClampToBounds(geom.NewAABB(0, 0, float64(m.cfg.Width), float64(m.cfg.Height)))
	}

	m.syncOverlay(now)
	return m, tickCmd(m.cfg.FPS)
}

// syncOverlay restarts the overlay's slide-in animation whenever the
// loop enters a phase that shows one, using the easing family the game
// type's theme declares.
func (m GameModel) syncOverlay(now time.Time) {
	phase := m.loop.Phase()
	if phase != m.overlay.phase {
		m.overlay.phase = phase
		m.overlay.anim = nil
		m.overlay.progress = 0

		switch phase {
		case runtime.PhasePaused, runtime.PhaseGameOver, runtime.PhaseWon:
			ov := m.overlay
			ov.anim = render.NewAnimation(0, 1, overlayReveal,
				render.EasingForProfile(m.cfg.Meta.Theme.AnimationProfile)).
				OnUpdate(func(v float64) { ov.progress = v })
			ov.anim.Start(now)
		}
	}
	if m.overlay.anim != nil {
		m.overlay.anim.Update(now)
	}
}

// View projects the frame's render queue through the camera and layers
// the HUD and overlays on top.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.screen.Project(m.queue.Sorted(), m.cam)

	st := m.eng.State()
	hud := fmt.Sprintf(" %s  Score %d  Lives %d  FPS %d ",
		m.cfg.Meta.Name, st.Score, st.Lives, m.loop.FPS())
	m.screen.DrawText(0, 0, hud, m.cfg.Meta.Theme.Text)

	switch m.loop.Phase() {
	case runtime.PhasePaused:
		m.drawOverlay("PAUSED", "p resume · b menu · q quit")
	case runtime.PhaseGameOver:
		m.drawOverlay("GAME OVER", "r retry · b menu · q quit")
	case runtime.PhaseWon:
		m.drawOverlay("LEVEL COMPLETE!", "r replay · b menu · q quit")
	}

	return m.screen.String()
}

// drawOverlay slides the title in from the top of the screen; progress
// reaches 1 when the reveal animation settles at the center row.
func (m GameModel) drawOverlay(title, help string) {
	cy := m.cfg.Height / 2
	titleY := int(m.overlay.progress * float64(cy-1))
	m.screen.DrawText((m.cfg.Width-len(title))/2, titleY, title, m.cfg.Meta.Theme.Accent)
	m.screen.DrawText((m.cfg.Width-len(help))/2, cy+1, help, m.cfg.Meta.Theme.Text)
}

// IsQuitting reports whether the user asked to leave entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu reports whether the user asked to return to the menu.
func (m GameModel) BackToMenu() bool { return m.backToMenu }
