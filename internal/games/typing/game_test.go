package typing

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
)

var testCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}

func newGame() *Game {
	g := New()
	g.Reset(testCfg)
	return g
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func hasCue(res core.StepResult, c core.Cue) bool {
	for _, got := range res.Cues {
		if got == c {
			return true
		}
	}
	return false
}

// drop puts a letter on the track at pos with a fall speed of 5.
func drop(g *Game, lane int, pos float64) *Letter {
	l := &Letter{Lane: lane, Pos: pos, Speed: 5}
	g.letters = append(g.letters, l)
	return l
}

func press(lane int) core.InputFrame { return core.FrameOf(core.LaneAction(lane)) }

func idle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.InputFrame{})
	}
}

func TestJudgeWindows(t *testing.T) {
	cfg := config.DefaultTypingConfig()
	tests := []struct {
		err  float64
		want Grade
	}{
		{0, GradePerfect},
		{100, GradePerfect},
		{100.5, GradeGood},
		{250, GradeGood},
		{251, GradeOK},
		{500, GradeOK},
		{501, GradeMiss},
	}
	for _, tt := range tests {
		if got := judge(tt.err, cfg); got != tt.want {
			t.Errorf("judge(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestPressGradesByTimingError(t *testing.T) {
	tests := []struct {
		name  string
		pos   float64
		grade Grade
		score int
	}{
		{"perfect 50ms", 99.75, GradePerfect, 110},
		{"good 200ms", 99, GradeGood, 53},
		{"ok 400ms", 98, GradeOK, 25},
		{"miss 600ms", 97, GradeMiss, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame()
			l := drop(g, 0, tt.pos)
			res := g.Step(press(0))
			if l.Grade != tt.grade {
				t.Errorf("grade = %v, want %v", l.Grade, tt.grade)
			}
			if res.State.Score != tt.score {
				t.Errorf("score = %d, want %d", res.State.Score, tt.score)
			}
			if g.flash[0] != tt.grade {
				t.Errorf("lane feedback = %v, want %v", g.flash[0], tt.grade)
			}
		})
	}
}

func TestComboScoring(t *testing.T) {
	g := newGame()
	hit := func(pos float64) {
		drop(g, 1, pos)
		g.Step(press(1))
	}

	hit(99.75)
	hit(99.75)
	hit(99.75)
	if g.score != 110+120+130 {
		t.Errorf("three perfects = %d, want 360", g.score)
	}
	hit(99) // good at combo 4: 50 * 1.2
	if g.score != 420 {
		t.Errorf("after good = %d, want 420", g.score)
	}
	hit(90)
	if combo, best := g.Combo(); combo != 0 || best != 4 {
		t.Errorf("combo %d best %d, want 0 and 4", combo, best)
	}
	hit(98)
	if g.score != 445 {
		t.Errorf("after ok = %d, want 445", g.score)
	}
	if got := g.Tally(); got != (Tally{Perfect: 3, Good: 1, OK: 1, Miss: 1}) {
		t.Errorf("tally = %+v", got)
	}
}

func TestPressHitsLowestLetter(t *testing.T) {
	g := newGame()
	high := drop(g, 2, 50)
	low := drop(g, 2, 99.75)
	other := drop(g, 3, 99.9)

	g.Step(press(2))
	if low.Grade != GradePerfect {
		t.Errorf("lowest letter grade = %v", low.Grade)
	}
	if high.Grade != GradeNone || other.Grade != GradeNone {
		t.Error("press judged the wrong letter")
	}

	// The judged letter no longer counts; the next press takes the one above.
	g.Step(press(2))
	if high.Grade != GradeMiss {
		t.Errorf("second press grade = %v, want miss", high.Grade)
	}
}

func TestEmptyLanePressIsHarmless(t *testing.T) {
	g := newGame()
	drop(g, 0, 99.75)
	g.Step(press(0))

	g.Step(press(0)) // only the judged letter remains
	if g.Tally().Total() != 1 || g.flash[0] != GradeNone {
		t.Errorf("tally %+v flash %v", g.Tally(), g.flash[0])
	}
}

func TestLetterReachingLineIsMiss(t *testing.T) {
	g := newGame()
	drop(g, 0, 99.75)
	g.Step(press(0))
	l := drop(g, 4, 99.99)

	res := g.Step(core.InputFrame{})
	if l.Grade != GradeMiss || l.Pos != trackLength {
		t.Errorf("letter = %+v, want a miss on the line", l)
	}
	if combo, _ := g.Combo(); combo != 0 {
		t.Errorf("combo = %d, want reset", combo)
	}
	if !hasCue(res, core.CueMiss) {
		t.Error("no miss cue")
	}
}

func TestJudgedLettersLinger(t *testing.T) {
	g := newGame()
	drop(g, 0, 99.75)
	g.Step(press(0))

	keep := g.rt.Ticks(linger)
	idle(g, keep-1)
	if len(g.Letters()) != 1 {
		t.Fatalf("letter gone early")
	}
	idle(g, 1)
	if len(g.Letters()) != 0 {
		t.Errorf("letter still on track after %d ticks", keep)
	}
}

func TestFlashClearsAndRestarts(t *testing.T) {
	g := newGame()
	flash := g.rt.Ticks(500 * time.Millisecond)

	drop(g, 0, 99.75)
	g.Step(press(0))
	idle(g, flash-11)
	drop(g, 0, 99.75)
	g.Step(press(0)) // restarts the clear

	idle(g, 10)
	if g.flash[0] != GradePerfect {
		t.Fatal("first clear fired after being replaced")
	}
	idle(g, flash-10)
	if g.flash[0] != GradeNone {
		t.Errorf("flash = %v, want cleared", g.flash[0])
	}
}

func TestSpawnSchedule(t *testing.T) {
	g := newGame()
	first := g.rt.Ticks(1500 * time.Millisecond)

	idle(g, first-1)
	if len(g.Letters()) != 0 {
		t.Fatalf("spawned before %d ticks", first)
	}
	idle(g, 1)
	if len(g.Letters()) != 1 {
		t.Fatalf("letters = %d, want 1", len(g.Letters()))
	}
	l := g.Letters()[0]
	if !near(l.Speed, 5.5) {
		t.Errorf("speed = %f, want 5 + 1*0.5", l.Speed)
	}
	if l.Lane < 0 || l.Lane > 5 {
		t.Errorf("lane = %d", l.Lane)
	}

	idle(g, first)
	if len(g.Letters()) != 2 {
		t.Errorf("letters = %d, want 2", len(g.Letters()))
	}
}

func TestDifficultyRamp(t *testing.T) {
	g := newGame()
	step := g.rt.Ticks(10 * time.Second)

	idle(g, step)
	if !near(g.Difficulty(), 1.2) || g.SpawnInterval() != 1400*time.Millisecond {
		t.Errorf("after one step: difficulty %f interval %v", g.Difficulty(), g.SpawnInterval())
	}

	idle(g, step*10)
	if !near(g.Difficulty(), 1+11*0.2) {
		t.Errorf("difficulty = %f, want 3.2", g.Difficulty())
	}
	if g.SpawnInterval() != 500*time.Millisecond {
		t.Errorf("interval = %v, want floor of 500ms", g.SpawnInterval())
	}
}

func TestSongEndsRun(t *testing.T) {
	g := newGame()
	song := g.rt.Ticks(120 * time.Second)

	idle(g, song-1)
	if g.State().GameOver {
		t.Fatal("ended before the song")
	}
	idle(g, 1)
	if !g.State().GameOver {
		t.Fatal("song over but run continues")
	}

	l := drop(g, 0, 99.75)
	g.Step(press(0))
	if l.Grade != GradeNone || l.Pos != 99.75 {
		t.Errorf("letter = %+v, finished run kept playing", l)
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		tally Tally
		want  int
	}{
		{Tally{}, 100},
		{Tally{Perfect: 3, Good: 1, OK: 1}, 78},
		{Tally{Miss: 2}, 0},
		{Tally{Perfect: 1, Miss: 1}, 50},
	}
	for _, tt := range tests {
		if got := tt.tally.Accuracy(); got != tt.want {
			t.Errorf("%+v accuracy = %d, want %d", tt.tally, got, tt.want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() *Game {
		g := newGame()
		for i := 0; i < 3000; i++ {
			g.Step(press(i % 6))
		}
		return g
	}
	a, b := run(), run()
	if a.score != b.score || a.Tally() != b.Tally() || len(a.letters) != len(b.letters) {
		t.Errorf("runs differ: %d %+v vs %d %+v", a.score, a.Tally(), b.score, b.Tally())
	}
}

func TestResetClearsRun(t *testing.T) {
	g := newGame()
	for i := 0; i < 1000; i++ {
		g.Step(press(i % 6))
	}
	g.Reset(testCfg)
	if g.score != 0 || g.Tally().Total() != 0 || len(g.letters) != 0 || g.Difficulty() != 1 {
		t.Errorf("after reset: score %d tally %+v letters %d", g.score, g.Tally(), len(g.letters))
	}
	if g.SpawnInterval() != 1500*time.Millisecond {
		t.Errorf("interval = %v", g.SpawnInterval())
	}
}

func TestConfigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typing.yaml")
	if err := os.WriteFile(path, []byte("lanes: asdf\nsong_seconds: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g := New()
	if err := g.Configure(path, config.DifficultyNormal); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	g.Reset(testCfg)
	if string(g.lanes) != "ASDF" {
		t.Errorf("lanes = %q, want ASDF", string(g.lanes))
	}
	idle(g, 30*60)
	if !g.State().GameOver {
		t.Error("30 s song did not end")
	}
	if err := g.Configure(filepath.Join(t.TempDir(), "nope.yaml"), config.DifficultyNormal); err == nil {
		t.Error("missing custom config should fail")
	}
}

func TestRender(t *testing.T) {
	g := newGame()
	drop(g, 0, 99.75)
	g.Step(press(0))

	s := core.NewScreen(testCfg.ScreenW, testCfg.ScreenH)
	g.Render(s)
	out := s.String()
	for _, want := range []string{"Score: 110", "Accuracy: 100%", "PERFECT", "Song: 2:00", "Y"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}
