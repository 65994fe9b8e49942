package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkondratev/pocket-arcade/internal/catalog"
	"github.com/vkondratev/pocket-arcade/internal/save"
)

// SessionModel manages the full arcade flow: menu -> game -> menu.
type SessionModel struct {
	cat       *catalog.Catalog
	store     *save.Store
	width     int
	height    int
	fps       int
	seed      int64
	menu      MenuModel
	gameModel *GameModel
	inGame    bool
	quitting  bool
}

// NewSessionModel creates the top-level model.
func NewSessionModel(cat *catalog.Catalog, store *save.Store, width, height, fps int, seed int64) SessionModel {
	return SessionModel{
		cat:    cat,
		store:  store,
		width:  width,
		height: height,
		fps:    fps,
		seed:   seed,
		menu:   NewMenuModel(cat, store, width, height),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the menu or the active game.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if sel := m.menu.Selected(); sel != nil {
		seed := m.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		gameModel := NewGameModel(GameConfig{
			Type:   sel.Type,
			Level:  sel.Level,
			Meta:   sel.Meta,
			Width:  m.width,
			Height: m.height,
			FPS:    m.fps,
			Seed:   seed,
		}, m.store)
		m.gameModel = &gameModel
		m.inGame = true
		return m, m.gameModel.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		// Rebuild the menu so fresh unlocks and high scores show up.
		m.menu = NewMenuModel(m.cat, m.store, m.width, m.height)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the menu or the active game.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// RunSession starts the full menu-driven arcade in the local terminal.
func RunSession(cat *catalog.Catalog, store *save.Store, width, height, fps int, seed int64) error {
	p := tea.NewProgram(
		NewSessionModel(cat, store, width, height, fps, seed),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// RunGame starts a single game directly, skipping the menu.
func RunGame(cfg GameConfig, store *save.Store) error {
	gm := NewGameModel(cfg, store)
	gm.standalone = true
	p := tea.NewProgram(
		gm,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
