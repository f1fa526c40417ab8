package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/loop"
	"github.com/vovakirdan/loop-arcade/internal/platform/keys"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	// Keys overrides the bindings. Nil picks keys.For(game).
	Keys *keys.Map

	// Palette styles the output. Nil uses the default renderer.
	Palette *Palette

	// Scores, when set, lets the model announce a new high score.
	Scores *loop.ScoreKeeper

	// ShotDir is where Ctrl+S screenshots go. Empty disables screenshots.
	ShotDir string

	// Embedded models report Finished instead of quitting the program, so
	// a session can return to its menu.
	Embedded bool
}

// GameModel is the Bubble Tea model for one running game.
type GameModel struct {
	driver  *loop.Driver
	keys    *keys.Map
	palette *Palette
	scores  *loop.ScoreKeeper
	shotDir string

	embedded bool
	finished bool
	note     string
}

// NewGameModel wraps a driver. The driver must not be running elsewhere.
func NewGameModel(d *loop.Driver, opts GameOptions) GameModel {
	km := opts.Keys
	if km == nil {
		km = keys.For(d.Game())
	}
	palette := opts.Palette
	if palette == nil {
		palette = NewPalette(nil)
	}
	return GameModel{
		driver:   d,
		keys:     km,
		palette:  palette,
		scores:   opts.Scores,
		shotDir:  opts.ShotDir,
		embedded: opts.Embedded,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.driver.Config().TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.note = m.screenshot()
			return m, nil
		}
		m.note = ""
		m.keys.Press(m.driver.Input(), msg.String())

	case tea.BlurMsg:
		m.driver.Input().Blur()

	case tea.WindowSizeMsg:
		m.driver.Resize(msg.Width, msg.Height)

	case TickMsg:
		if _, ok := m.driver.Frame(); !ok {
			m.finished = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		}
		return m, tickCmd(m.driver.Config().TickRate)
	}
	return m, nil
}

// screenshot writes the current screen as plain text and returns a status
// line for the player.
func (m GameModel) screenshot() string {
	if m.shotDir == "" {
		return ""
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "screenshot failed: " + err.Error()
	}
	name := fmt.Sprintf("%s_%s.txt", m.driver.Game().ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.driver.Screen().String()), 0o600); err != nil {
		return "screenshot failed: " + err.Error()
	}
	return "saved " + path
}

// View renders the last frame.
func (m GameModel) View() string {
	if m.finished {
		return ""
	}
	s := m.driver.Screen()
	state := m.driver.Last().State
	if state.GameOver && m.scores != nil && m.scores.NewBest {
		s.DrawTextCenteredColor(s.Height()/2+3, "NEW HIGH SCORE!", core.ColorBrightYellow)
	}
	if m.note != "" {
		s.DrawTextColor(0, s.Height()-1, m.note, core.ColorGray)
	}
	return m.palette.RenderScreen(s)
}

// Finished reports whether the game has been quit.
func (m GameModel) Finished() bool {
	return m.finished
}

// Driver returns the wrapped driver.
func (m GameModel) Driver() *loop.Driver {
	return m.driver
}

// Run plays one game full screen until the player quits.
func Run(d *loop.Driver, opts GameOptions) error {
	opts.Embedded = false
	p := tea.NewProgram(
		NewGameModel(d, opts),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	d.Stop()
	return err
}
