package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/loop"
	"github.com/vovakirdan/loop-arcade/internal/platform/keys"
	"github.com/vovakirdan/loop-arcade/internal/registry"
)

// tapGame scores a point per fire press and ends at three points.
type tapGame struct {
	score int
	held  bool
}

func (g *tapGame) ID() string    { return "tui-tap" }
func (g *tapGame) Title() string { return "Tap" }
func (g *tapGame) Controls() string {
	return "F: tap"
}
func (g *tapGame) Reset(core.RuntimeConfig) { g.score, g.held = 0, false }
func (g *tapGame) Step(in core.InputFrame) core.StepResult {
	g.held = in.Has(core.ActionFire)
	if in.JustPressed(core.ActionFire) {
		g.score++
	}
	return core.StepResult{State: g.State()}
}
func (g *tapGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "taps")
}
func (g *tapGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.score >= 3}
}

func init() {
	registry.Register("tui-tap", func() registry.Game { return &tapGame{} })
}

type memScores struct{ best map[string]int }

func (m *memScores) SaveScore(string, int) error { return nil }
func (m *memScores) SubmitHigh(id string, score int) (bool, error) {
	if score <= m.best[id] {
		return false, nil
	}
	m.best[id] = score
	return true, nil
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newDriver(g registry.Game, obs ...loop.Observer) *loop.Driver {
	return loop.New(g, core.NewSampler(keys.HoldWindow(60)), loop.Options{
		Config:    core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1},
		Observers: obs,
	})
}

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func TestKeysDriveFrames(t *testing.T) {
	g := &tapGame{}
	m, _ := send(t, NewGameModel(newDriver(g), GameOptions{}), keyMsg("f"), TickMsg{})
	if g.score != 1 {
		t.Fatalf("score = %d after one tap", g.score)
	}
	send(t, m, TickMsg{})
	if g.score != 1 {
		t.Errorf("score = %d, a held key scored twice", g.score)
	}
	if !strings.Contains(m.View(), "taps") {
		t.Error("view missing the rendered screen")
	}
}

func TestBlurReleasesKeys(t *testing.T) {
	g := &tapGame{}
	m, _ := send(t, NewGameModel(newDriver(g), GameOptions{}), keyMsg("f"), TickMsg{})
	send(t, m, tea.BlurMsg{}, TickMsg{})
	if g.held {
		t.Error("fire still held after focus loss")
	}
}

func TestQuitEndsGame(t *testing.T) {
	d := newDriver(&tapGame{})
	m, cmd := send(t, NewGameModel(d, GameOptions{}), keyMsg("q"), TickMsg{})
	gm := m.(GameModel)
	if !gm.Finished() || !d.Stopped() {
		t.Fatal("quit did not finish the game")
	}
	if cmd == nil {
		t.Fatal("standalone game did not quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}

	d = newDriver(&tapGame{})
	_, cmd = send(t, NewGameModel(d, GameOptions{Embedded: true}), keyMsg("q"), TickMsg{})
	if cmd != nil {
		t.Error("embedded game quit the whole program")
	}
}

func TestNewHighScoreBanner(t *testing.T) {
	scores := loop.NewScoreKeeper(&memScores{best: map[string]int{}}, nil)
	g := &tapGame{}
	var m tea.Model = NewGameModel(newDriver(g, scores), GameOptions{Scores: scores})
	for i := 0; i < 3; i++ {
		m, _ = send(t, m, keyMsg("f"), TickMsg{}, tea.BlurMsg{})
	}
	if !g.State().GameOver {
		t.Fatal("game not over")
	}
	if !strings.Contains(m.View(), "NEW HIGH SCORE!") {
		t.Error("no banner for a new best")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m, _ := send(t, NewGameModel(newDriver(&tapGame{}), GameOptions{ShotDir: dir}), TickMsg{}, keyMsg("ctrl+s"))
	files, err := os.ReadDir(dir)
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v, %v", files, err)
	}
	body, _ := os.ReadFile(filepath.Join(dir, files[0].Name()))
	if !strings.Contains(string(body), "taps") {
		t.Errorf("screenshot = %q", body)
	}
	if !strings.Contains(m.View(), "saved") {
		t.Error("no confirmation shown")
	}
}

func TestResize(t *testing.T) {
	d := newDriver(&tapGame{})
	send(t, NewGameModel(d, GameOptions{}), tea.WindowSizeMsg{Width: 20, Height: 5})
	if d.Screen().Width() != 20 || d.Screen().Height() != 5 {
		t.Errorf("screen = %dx%d, want 20x5", d.Screen().Width(), d.Screen().Height())
	}
}

func TestMenuPicksGameAndPreset(t *testing.T) {
	m := NewMenuModel(nil, config.DifficultyNormal, 80, 24, nil)
	idx := -1
	for i, it := range m.items {
		if it.GameID == "tui-tap" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatal("registered game not listed")
	}
	if m.items[idx].Controls != "F: tap" {
		t.Errorf("controls = %q", m.items[idx].Controls)
	}

	var model tea.Model = m
	for i := 0; i < idx; i++ {
		model, _ = send(t, model, keyMsg("down"))
	}
	model, _ = send(t, model, keyMsg("right"), keyMsg("enter"))
	sel := model.(MenuModel).Selected()
	if sel == nil || sel.GameID != "tui-tap" || sel.Preset != config.DifficultyHard {
		t.Errorf("selection = %+v, want tui-tap on hard", sel)
	}
}

func TestMenuShowsBest(t *testing.T) {
	scores := &fixedScores{"tui-tap": 12345}
	m := NewMenuModel(scores, config.DifficultyNormal, 100, 40, nil)
	if !strings.Contains(m.View(), "12,345") {
		t.Error("menu does not show the best score")
	}
}

type fixedScores map[string]int

func (f *fixedScores) HighScore(id string) (int, error) { return (*f)[id], nil }

func TestSessionRoundTrip(t *testing.T) {
	var launched Selection
	launch := func(sel Selection, cfg core.RuntimeConfig) (GameModel, error) {
		launched = sel
		g, _ := registry.Create(sel.GameID)
		return NewGameModel(newDriver(g), GameOptions{Embedded: true}), nil
	}
	s := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, config.DifficultyEasy, nil, launch)

	var model tea.Model = s
	for i, it := range s.menu.items {
		if it.GameID == "tui-tap" {
			for j := 0; j < i; j++ {
				model, _ = send(t, model, keyMsg("down"))
			}
		}
	}
	model, cmd := send(t, model, keyMsg("enter"))
	if launched.GameID != "tui-tap" || launched.Preset != config.DifficultyEasy {
		t.Fatalf("launched %+v", launched)
	}
	if cmd == nil || model.(SessionModel).game == nil {
		t.Fatal("game did not start")
	}

	model, _ = send(t, model, keyMsg("q"), TickMsg{})
	if model.(SessionModel).game != nil {
		t.Fatal("quitting the game did not return to the menu")
	}

	model, _ = send(t, model, keyMsg("tab"))
	if model.(SessionModel).board == nil {
		t.Fatal("tab did not open the scoreboard")
	}
	model, _ = send(t, model, keyMsg("esc"))
	if model.(SessionModel).board != nil {
		t.Error("esc did not close the scoreboard")
	}

	_, cmd = send(t, model, keyMsg("q"))
	if cmd == nil {
		t.Error("q in the menu did not quit")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30, nil)
	m.now = func() time.Time { return time.Unix(0, 0) }
	if v := m.View(); !strings.Contains(v, "No scores recorded yet") || !strings.Contains(v, "no games played") {
		t.Errorf("empty scoreboard view:\n%s", v)
	}
}
