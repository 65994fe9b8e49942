package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vkondratev/pocket-arcade/internal/catalog"
	"github.com/vkondratev/pocket-arcade/internal/engine"
	"github.com/vkondratev/pocket-arcade/internal/save"
)

type menuStage int

const (
	stageGameType menuStage = iota
	stageLevel
)

// Selection is the menu's result: which game and which level to play.
type Selection struct {
	Type  engine.GameType
	Meta  catalog.GameTypeConfig
	Level catalog.Level
}

type gameTypeItem struct {
	meta catalog.GameTypeConfig
	t    engine.GameType
}

func (i gameTypeItem) Title() string       { return i.meta.Name }
func (i gameTypeItem) Description() string { return i.meta.Mechanics }
func (i gameTypeItem) FilterValue() string { return i.meta.Name }

type levelItem struct {
	level    catalog.Level
	unlocked bool
	high     int
}

func (i levelItem) Title() string {
	if i.level.ComingSoon {
		return fmt.Sprintf("%d. %s (coming soon)", i.level.ID, i.level.Name)
	}
	if !i.unlocked {
		return fmt.Sprintf("%d. %s 🔒", i.level.ID, i.level.Name)
	}
	return fmt.Sprintf("%d. %s", i.level.ID, i.level.Name)
}

func (i levelItem) Description() string {
	desc := fmt.Sprintf("difficulty %d · target %d", i.level.Difficulty, i.level.TargetScore)
	if i.high > 0 {
		desc += fmt.Sprintf(" · best %d", i.high)
	}
	return desc
}

func (i levelItem) FilterValue() string { return i.level.Name }

// MenuModel is the two-stage picker: game type first, then a level
// gated by the completed-level set.
type MenuModel struct {
	stage     menuStage
	typeList  list.Model
	levelList list.Model
	cat       *catalog.Catalog
	store     *save.Store
	completed []int
	width     int
	height    int
	chosen    catalog.GameTypeConfig
	chosenT   engine.GameType
	selection *Selection
	quitting  bool
}

// NewMenuModel builds the picker from the level catalog and save state.
func NewMenuModel(cat *catalog.Catalog, store *save.Store, width, height int) MenuModel {
	var completed []int
	if store != nil {
		if ids, err := store.UnlockedLevels(); err == nil {
			completed = ids
		}
	}

	items := make([]list.Item, 0, len(catalog.GameTypes()))
	for _, meta := range catalog.GameTypes() {
		t, err := engine.ParseGameType(meta.ID)
		if err != nil {
			continue
		}
		items = append(items, gameTypeItem{meta: meta, t: t})
	}

	typeList := list.New(items, list.NewDefaultDelegate(), width, height-2)
	typeList.Title = "Pocket Arcade"
	typeList.SetShowStatusBar(false)
	typeList.SetFilteringEnabled(false)
	typeList.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	return MenuModel{
		stage:     stageGameType,
		typeList:  typeList,
		cat:       cat,
		store:     store,
		completed: completed,
		width:     width,
		height:    height,
	}
}

func (m *MenuModel) buildLevelList() {
	items := make([]list.Item, 0, len(m.cat.Levels()))
	for _, lvl := range m.cat.Levels() {
		item := levelItem{
			level:    lvl,
			unlocked: lvl.IsPlayable && catalog.IsUnlocked(lvl.ID, m.completed),
		}
		if m.store != nil {
			if high, err := m.store.HighScore(m.chosen.ID, lvl.ID); err == nil {
				item.high = high
			}
		}
		items = append(items, item)
	}

	m.levelList = list.New(items, list.NewDefaultDelegate(), m.width, m.height-2)
	m.levelList.Title = m.chosen.Name + " — pick a level"
	m.levelList.SetShowStatusBar(false)
	m.levelList.SetFilteringEnabled(false)
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.typeList.SetSize(msg.Width, msg.Height-2)
		if m.stage == stageLevel {
			m.levelList.SetSize(msg.Width, msg.Height-2)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "esc", "b":
			if m.stage == stageLevel {
				m.stage = stageGameType
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleSelect()
		}
	}

	var cmd tea.Cmd
	if m.stage == stageGameType {
		m.typeList, cmd = m.typeList.Update(msg)
	} else {
		m.levelList, cmd = m.levelList.Update(msg)
	}
	return m, cmd
}

func (m MenuModel) handleSelect() (tea.Model, tea.Cmd) {
	if m.stage == stageGameType {
		item, ok := m.typeList.SelectedItem().(gameTypeItem)
		if !ok {
			return m, nil
		}
		m.chosen = item.meta
		m.chosenT = item.t
		m.buildLevelList()
		m.stage = stageLevel
		return m, nil
	}

	item, ok := m.levelList.SelectedItem().(levelItem)
	if !ok || !item.unlocked {
		// Locked and coming-soon levels are visible but not playable.
		return m, nil
	}

	m.selection = &Selection{Type: m.chosenT, Meta: m.chosen, Level: item.level}
	return m, nil
}

// View renders the active list.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.stage == stageLevel {
		return m.levelList.View()
	}
	return m.typeList.View()
}

// Selected returns the chosen game/level, or nil while still browsing.
func (m MenuModel) Selected() *Selection { return m.selection }

// IsQuitting reports whether the user left the menu.
func (m MenuModel) IsQuitting() bool { return m.quitting }
