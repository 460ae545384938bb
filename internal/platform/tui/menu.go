package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge"
	"github.com/vovakirdan/dodge/internal/storage"
)

// MenuItem is a row of the main menu.
type MenuItem int

const (
	MenuItemPlay MenuItem = iota
	MenuItemDifficulty
	MenuItemScores
	MenuItemQuit
)

var menuItems = []MenuItem{MenuItemPlay, MenuItemDifficulty, MenuItemScores, MenuItemQuit}

// menuKeyMap feeds the help bar; navigation itself goes through KeyMapper.
type menuKeyMap struct {
	Navigate key.Binding
	Cycle    key.Binding
	Select   key.Binding
	Scores   key.Binding
	Quit     key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Cycle, k.Select, k.Scores, k.Quit}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Navigate: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navigate")),
		Cycle:    key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "difficulty")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Scores:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor         int
	width          int
	height         int
	preset         config.DifficultyPreset
	best           int // best score for the selected preset
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	keys           menuKeyMap
	help           help.Model
	quitting       bool
	play           bool // set when the user picks Play
	openScoreboard bool
}

// NewMenuModel creates a new menu model with the given preset selected.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		preset:    preset,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		keys:      defaultMenuKeyMap(),
		help:      help.New(),
	}
	m.loadBest()
	return m
}

// loadBest refreshes the best score shown next to the difficulty selector.
func (m *MenuModel) loadBest() {
	m.best = 0
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(dodge.GameID, dodge.DifficultyKey(m.preset))
	if err == nil {
		m.best = best
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuItems[m.cursor] == MenuItemDifficulty {
			m.preset = prevPreset(m.preset)
			m.loadBest()
		}

	case MenuActionRight:
		if menuItems[m.cursor] == MenuItemDifficulty {
			m.preset = m.preset.Next()
			m.loadBest()
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch menuItems[m.cursor] {
		case MenuItemPlay:
			m.play = true
			return m, tea.Quit
		case MenuItemDifficulty:
			m.preset = m.preset.Next()
			m.loadBest()
		case MenuItemScores:
			m.openScoreboard = true
			return m, tea.Quit
		case MenuItemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// prevPreset steps backwards through the presets, wrapping around.
func prevPreset(p config.DifficultyPreset) config.DifficultyPreset {
	all := config.Presets()
	for i, preset := range all {
		if preset == p {
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return all[len(all)-1]
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  D O D G E  "), m.width, 13))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := m.itemLabel(item)
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width, lipgloss.Width(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpView := dimStyle.Render(m.help.View(m.keys))
	b.WriteString(centerText(helpView, m.width, lipgloss.Width(helpView)))
	b.WriteString("\n")

	return b.String()
}

// itemLabel returns the text of a menu row.
func (m MenuModel) itemLabel(item MenuItem) string {
	switch item {
	case MenuItemPlay:
		return "Play"
	case MenuItemDifficulty:
		label := fmt.Sprintf("Difficulty: < %s >", m.preset.Label())
		if m.best > 0 {
			label += fmt.Sprintf("  best %d", m.best)
		}
		return label
	case MenuItemScores:
		return "High Scores"
	case MenuItemQuit:
		return "Quit"
	}
	return ""
}

// Preset returns the currently selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return m.preset
}

// WantsPlay returns true if the user picked Play.
func (m MenuModel) WantsPlay() bool {
	return m.play
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text of the given visible width within width columns.
func centerText(text string, width, textWidth int) string {
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
