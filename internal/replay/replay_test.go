package replay

import (
	"bytes"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/loop"
)

// walkGame moves a dot by input plus a seeded random drift, so a replay
// only matches if both the seed and every frame are reproduced.
type walkGame struct {
	rng   *rand.Rand
	x     int
	score int
}

func (g *walkGame) ID() string    { return "walk" }
func (g *walkGame) Title() string { return "Walk" }

func (g *walkGame) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.x, g.score = 0, 0
}

func (g *walkGame) Step(in core.InputFrame) core.StepResult {
	g.x += int(in.Axis(core.ActionLeft, core.ActionRight)) + g.rng.Intn(3) - 1
	if in.JustPressed(core.ActionFire) {
		g.score += 10 + g.x
	}
	return core.StepResult{State: g.State()}
}

func (g *walkGame) Render(dst *core.Screen) {}

func (g *walkGame) State() core.GameState { return core.GameState{Score: g.score} }

func record(t *testing.T, seed int64) (*Replay, core.GameState) {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: seed}
	rec := NewRecorder("walk", cfg)
	in := core.NewSampler(0)
	d := loop.New(&walkGame{}, in, loop.Options{Config: cfg, Observers: []loop.Observer{rec}})

	script := rand.New(rand.NewSource(99))
	for i := 0; i < 300; i++ {
		switch script.Intn(6) {
		case 0:
			in.Press(core.ActionLeft)
		case 1:
			in.Release(core.ActionLeft)
		case 2:
			in.Press(core.ActionRight)
		case 3:
			in.Release(core.ActionRight)
		case 4:
			in.Press(core.ActionFire)
			in.Release(core.ActionFire)
		}
		d.Frame()
	}
	return rec.Replay(), d.Last().State
}

func TestRoundTripReproducesRun(t *testing.T) {
	rep, live := record(t, 1234)

	var buf bytes.Buffer
	if err := Save(&buf, rep); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(loaded.Frames) != 300 || loaded.Seed != 1234 {
		t.Fatalf("loaded %d frames seed %d", len(loaded.Frames), loaded.Seed)
	}

	got, err := Play(&walkGame{}, loaded, Options{})
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if got.Score != live.Score {
		t.Errorf("replayed score %d, live score %d", got.Score, live.Score)
	}
	if loaded.Score != live.Score {
		t.Errorf("recorded score %d, live score %d", loaded.Score, live.Score)
	}
}

func TestPlayRejectsOtherGame(t *testing.T) {
	rep, _ := record(t, 1)
	rep.GameID = "bros"
	if _, err := Play(&walkGame{}, rep, Options{}); !errors.Is(err, ErrGameMismatch) {
		t.Errorf("Play() error = %v, expected ErrGameMismatch", err)
	}
}

func TestRestartDiscardsEarlierFrames(t *testing.T) {
	rec := NewRecorder("walk", core.DefaultConfig())
	rec.Observe(loop.Frame{Input: core.FrameOf(core.ActionLeft)})
	rec.Observe(loop.Frame{Input: core.FrameOf(core.ActionLeft)})
	rec.Observe(loop.Frame{Restarted: true})
	rec.Observe(loop.Frame{Input: core.FrameOf(core.ActionFire)})

	r := rec.Replay()
	if len(r.Frames) != 1 || !r.Frames[0].Held.Has(core.ActionFire) {
		t.Errorf("frames after restart = %+v", r.Frames)
	}
}

func TestFileRoundTrip(t *testing.T) {
	rep, _ := record(t, 5)
	path := filepath.Join(t.TempDir(), "run.replay")
	if err := SaveFile(path, rep); err != nil {
		t.Fatalf("SaveFile() failed: %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if loaded.GameID != "walk" || loaded.Duration() != 5*1e9 {
		t.Errorf("loaded = %+v, duration %v", loaded.GameID, loaded.Duration())
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	var buf bytes.Buffer
	Save(&buf, &Replay{Version: Version + 1, GameID: "walk"})
	if _, err := Load(&buf); err == nil {
		t.Error("a future version should not load")
	}
}
