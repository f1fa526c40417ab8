package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/storage"
)

// Launch builds the model for a game picked from the menu. cfg carries the
// current terminal size. The returned model must be Embedded.
type Launch func(sel Selection, cfg core.RuntimeConfig) (GameModel, error)

// SessionModel manages the full arcade session flow: menu, then a game or
// the scoreboard, then back to the menu. Local menus and SSH sessions both
// run one.
type SessionModel struct {
	store   *storage.Store
	launch  Launch
	cfg     core.RuntimeConfig
	preset  config.DifficultyPreset
	palette *Palette

	menu     MenuModel
	board    *ScoreboardModel
	game     *GameModel
	err      string
	quitting bool
}

// NewSessionModel creates a session. store may be nil.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset, palette *Palette, launch Launch) SessionModel {
	if palette == nil {
		palette = NewPalette(nil)
	}
	m := SessionModel{
		store:   store,
		launch:  launch,
		cfg:     cfg,
		preset:  preset,
		palette: palette,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	var scores HighScores
	if m.store != nil {
		scores = m.store
	}
	return NewMenuModel(scores, m.preset, m.cfg.ScreenW, m.cfg.ScreenH, m.palette)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to whichever screen is showing.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.ScreenW = wsm.Width
		m.cfg.ScreenH = wsm.Height
	}
	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.board != nil:
		return m.updateBoard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		board := NewScoreboardModel(m.store, m.cfg.ScreenW, m.cfg.ScreenH, m.palette)
		m.board = &board
		m.menu = m.newMenu()
		return m, board.Init()

	case m.menu.Selected() != nil:
		sel := *m.menu.Selected()
		m.preset = sel.Preset
		m.menu = m.newMenu()
		game, err := m.launch(sel, m.cfg)
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		m.game = &game
		return m, game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = &board
	}
	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		m.board = nil
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = &game
	}
	if m.game.Finished() {
		m.game.Driver().Stop()
		m.game = nil
		m.menu = m.newMenu()
		return m, nil
	}
	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.game != nil:
		return m.game.View()
	case m.board != nil:
		return m.board.View()
	}
	v := m.menu.View()
	if m.err != "" {
		v += "\n" + centerText(m.palette.Accent.Render(m.err), m.cfg.ScreenW) + "\n"
	}
	return v
}

// RunSession runs the menu locally until the player quits.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset, launch Launch) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, preset, nil, launch),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
