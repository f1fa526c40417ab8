package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/registry"
)

// presets is the cycle order of the difficulty selector.
var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// HighScores is the slice of storage the menu shows.
type HighScores interface {
	HighScore(gameID string) (int, error)
}

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID   string
	Title    string
	Controls string
	Best     int
}

// Selection is what the player picked.
type Selection struct {
	GameID string
	Preset config.DifficultyPreset
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// menuAction translates a key to a menu action.
func menuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items   []MenuItem
	cursor  int
	preset  int
	width   int
	height  int
	palette *Palette

	quitting       bool
	selected       *Selection
	openScoreboard bool
}

// NewMenuModel lists every registered game. scores may be nil.
func NewMenuModel(scores HighScores, preset config.DifficultyPreset, width, height int, palette *Palette) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, info := range games {
		item := MenuItem{GameID: info.ID, Title: info.Title}
		if g, err := registry.Create(info.ID); err == nil {
			if c, ok := g.(registry.Controls); ok {
				item.Controls = c.Controls()
			}
		}
		if scores != nil {
			item.Best, _ = scores.HighScore(info.ID)
		}
		items = append(items, item)
	}

	if palette == nil {
		palette = NewPalette(nil)
	}
	m := MenuModel{
		items:   items,
		preset:  1,
		width:   width,
		height:  height,
		palette: palette,
	}
	for i, p := range presets {
		if p == preset {
			m.preset = i
		}
	}
	return m
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
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch menuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.preset = (m.preset + len(presets) - 1) % len(presets)
	case MenuActionRight:
		m.preset = (m.preset + 1) % len(presets)
	case MenuActionSelect:
		if len(m.items) > 0 {
			m.selected = &Selection{GameID: m.items[m.cursor].GameID, Preset: presets[m.preset]}
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	p := m.palette

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(p.Title.Render("  A R C A D E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(p.Muted.Render("Select a game"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-22s", item.Title)
		if item.Best > 0 {
			line += fmt.Sprintf(" best %8s", humanize.Comma(int64(item.Best)))
		} else {
			line += strings.Repeat(" ", 14)
		}
		if i == m.cursor {
			line = p.Selected.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	diff := fmt.Sprintf("Difficulty: < %s >", presets[m.preset])
	b.WriteString(centerText(p.Accent.Render(diff), m.width))
	b.WriteString("\n")
	if len(m.items) > 0 && m.items[m.cursor].Controls != "" {
		b.WriteString(centerText(p.Muted.Render(m.items[m.cursor].Controls), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(p.Muted.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the pick, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (int, int) {
	return m.width, m.height
}
