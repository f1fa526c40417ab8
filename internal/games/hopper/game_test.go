package hopper

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/loop-arcade/internal/actor"
	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
)

var testCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}

func newGame() *Game {
	g := New()
	g.Reset(testCfg)
	return g
}

// openCourse returns a game whose platforms carry no obstacles.
func openCourse() *Game {
	g := New()
	g.cfg.MinObstacles, g.cfg.MaxObstacles = 0, 0
	g.Reset(testCfg)
	return g
}

func hasCue(res core.StepResult, c core.Cue) bool {
	for _, got := range res.Cues {
		if got == c {
			return true
		}
	}
	return false
}

var (
	hop   = core.FrameOf(core.ActionUp)
	left  = core.FrameOf(core.ActionLeft)
	right = core.FrameOf(core.ActionRight)
)

func TestResetLaysCourse(t *testing.T) {
	g := newGame()
	if len(g.rows) != g.cfg.Lookahead+1 {
		t.Fatalf("rows = %d, want %d", len(g.rows), g.cfg.Lookahead+1)
	}
	if len(g.rows[0].obstacles) != 0 {
		t.Error("start platform has obstacles")
	}
	for _, r := range g.rows[1:] {
		if n := len(r.obstacles); n < 1 || n > 3 {
			t.Errorf("row %d has %d obstacles", r.index, n)
		}
		for _, o := range r.obstacles {
			if o.dx < -4 || o.dx > 4 {
				t.Errorf("row %d obstacle at %f, outside the lane", r.index, o.dx)
			}
		}
		if r.platform.Amp != 0 {
			t.Errorf("row %d drifts at level 0", r.index)
		}
		if want := float64(r.index) * 4; r.platform.Box.Center().Y != want {
			t.Errorf("row %d at %f, want %f", r.index, r.platform.Box.Center().Y, want)
		}
	}
	if g.Player() != (physics.Vec{}) || g.State().GameOver {
		t.Errorf("player %+v over %v", g.Player(), g.State().GameOver)
	}
}

func TestHopAdvances(t *testing.T) {
	g := openCourse()
	res := g.Step(hop)
	if g.Player().Y != 4 || res.State.Score != 1 {
		t.Errorf("after hop: y %f score %d", g.Player().Y, res.State.Score)
	}
	if !hasCue(res, core.CueJump) {
		t.Error("no jump cue")
	}
	if g.generated != g.cfg.Lookahead+2 {
		t.Errorf("generated = %d, want one more platform ahead", g.generated)
	}

	// Holding the key does not keep hopping.
	g.Step(core.InputFrame{Held: core.SetOf(core.ActionUp)})
	if g.Player().Y != 4 {
		t.Errorf("held key hopped again to %f", g.Player().Y)
	}
}

func TestSidestepClampedToLane(t *testing.T) {
	g := openCourse()
	for i := 0; i < 10; i++ {
		g.Step(left)
	}
	if g.x != -4 {
		t.Errorf("x = %f, want -4", g.x)
	}
	for i := 0; i < 20; i++ {
		g.Step(right)
	}
	if g.x != 4 || g.State().GameOver {
		t.Errorf("x = %f over %v, want 4 and still playing", g.x, g.State().GameOver)
	}
}

func TestObstacleDistance(t *testing.T) {
	tests := []struct {
		dx   float64
		dead bool
	}{
		{0, true},
		{1, true},
		{1.2, false},
		{-3, false},
	}
	for _, tt := range tests {
		g := openCourse()
		g.row(1).obstacles = []obstacle{{dx: tt.dx}}
		res := g.Step(hop)
		if got := g.Cause() == CauseHit; got != tt.dead {
			t.Errorf("obstacle at %v: hit %v, want %v", tt.dx, got, tt.dead)
		}
		if tt.dead && !hasCue(res, core.CueHit) {
			t.Errorf("obstacle at %v: no hit cue", tt.dx)
		}
	}
}

func TestSidestepIntoObstacle(t *testing.T) {
	g := openCourse()
	g.row(0).obstacles = []obstacle{{dx: 2.5}}
	g.Step(right)
	if g.Cause() != CauseNone {
		t.Fatal("hit an obstacle 1.5 away")
	}
	g.Step(right)
	if g.Cause() != CauseHit {
		t.Errorf("cause = %v, want hit", g.Cause())
	}
}

func TestLandingOffPlatformEndsRun(t *testing.T) {
	g := openCourse()
	p := g.row(1).platform
	p.Box = p.Box.Translate(physics.V2(6, 0))

	res := g.Step(hop)
	if g.Cause() != CauseFell || !res.State.GameOver {
		t.Fatalf("cause = %v, want fell", g.Cause())
	}
	if !hasCue(res, core.CueMiss) {
		t.Error("no miss cue")
	}

	g.Step(hop)
	if g.State().Score != 1 || g.Player().Y != 4 {
		t.Errorf("finished run kept moving: score %d y %f", g.State().Score, g.Player().Y)
	}
}

func TestPlatformsDrift(t *testing.T) {
	g := openCourse()
	p := g.row(2).platform
	p.Axis, p.Amp, p.Period = actor.AxisX, 3, 4

	for i := 0; i < 60; i++ { // a quarter swing
		g.Step(core.InputFrame{})
	}
	if c := p.Box.Center(); math.Abs(c.X-3) > 1e-6 || c.Y != 8 {
		t.Errorf("centre = %+v, want (3, 8)", c)
	}
	if g.row(0).platform.Box.Center().X != 0 {
		t.Error("start platform moved")
	}
}

func TestDriftGrowsWithDifficulty(t *testing.T) {
	g := openCourse()
	g.score = 50
	if r := g.newRow(61); r.platform.Amp != -3 {
		t.Errorf("amp at full level = %f, want -3", r.platform.Amp)
	}
	if r := g.newRow(62); r.platform.Amp != 3 {
		t.Errorf("even rows swing the other way: %f", r.platform.Amp)
	}

	g = New()
	if err := g.Configure("", config.DifficultyHard); err != nil {
		t.Fatal(err)
	}
	g.Reset(testCfg)
	if amp := g.row(1).platform.Amp; math.Abs(amp+2.1) > 1e-9 {
		t.Errorf("hard preset amp = %f, want -2.1", amp)
	}
}

func TestOldPlatformsDropped(t *testing.T) {
	g := openCourse()
	for i := 0; i < 5; i++ {
		g.Step(hop)
	}
	if g.rows[0].index != 3 {
		t.Errorf("oldest row = %d, want 3", g.rows[0].index)
	}
	if len(g.world.Actors) != len(g.rows) {
		t.Errorf("world holds %d platforms for %d rows", len(g.world.Actors), len(g.rows))
	}
	if last := g.rows[len(g.rows)-1].index; last != 5+g.cfg.Lookahead {
		t.Errorf("furthest row = %d, want %d", last, 5+g.cfg.Lookahead)
	}
}

func TestDeterminism(t *testing.T) {
	a, b := newGame(), newGame()
	for i := range a.rows {
		ra, rb := a.rows[i], b.rows[i]
		if len(ra.obstacles) != len(rb.obstacles) {
			t.Fatalf("row %d: %d vs %d obstacles", i, len(ra.obstacles), len(rb.obstacles))
		}
		for j := range ra.obstacles {
			if ra.obstacles[j] != rb.obstacles[j] {
				t.Errorf("row %d obstacle %d differs", i, j)
			}
		}
	}
}

func TestResetClearsRun(t *testing.T) {
	g := openCourse()
	g.Step(hop)
	g.Step(left)
	g.Reset(testCfg)
	if g.score != 0 || g.x != 0 || g.at != 0 || g.Cause() != CauseNone {
		t.Errorf("after reset: score %d x %f at %d", g.score, g.x, g.at)
	}
	if g.rows[0].index != 0 || len(g.world.Actors) != g.cfg.Lookahead+1 {
		t.Errorf("course not rebuilt: first row %d, %d platforms", g.rows[0].index, len(g.world.Actors))
	}
}

func TestConfigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hopper.yaml")
	if err := os.WriteFile(path, []byte("lookahead: 4\nmax_obstacles: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g := New()
	if err := g.Configure(path, config.DifficultyEasy); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	g.Reset(testCfg)
	if len(g.rows) != 5 {
		t.Errorf("rows = %d, want 5", len(g.rows))
	}
	for _, r := range g.rows[1:] {
		if len(r.obstacles) != 1 {
			t.Errorf("row %d has %d obstacles, want 1", r.index, len(r.obstacles))
		}
	}
	if err := g.Configure(filepath.Join(t.TempDir(), "nope.yaml"), config.DifficultyNormal); err == nil {
		t.Error("missing custom config should fail")
	}
}

func TestRender(t *testing.T) {
	g := openCourse()
	s := core.NewScreen(testCfg.ScreenW, testCfg.ScreenH)
	g.Render(s)
	out := s.String()
	for _, want := range []string{"Score: 0", "@", "▒"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}
