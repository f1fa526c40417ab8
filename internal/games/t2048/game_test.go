package t2048

import (
	"testing"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

var testCfg = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

func TestMergeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{"simple merge", [4]int{2, 2, 0, 0}, [4]int{4, 0, 0, 0}, 4},
		{"merge with trailing tile", [4]int{2, 2, 2, 0}, [4]int{4, 2, 0, 0}, 4},
		{"double merge", [4]int{2, 2, 2, 2}, [4]int{4, 4, 0, 0}, 8},
		{"one merge per tile", [4]int{4, 4, 4, 4}, [4]int{8, 8, 0, 0}, 16},
		{"merged tile is not merged again", [4]int{4, 4, 8, 0}, [4]int{8, 8, 0, 0}, 8},
		{"no merge possible", [4]int{2, 4, 8, 16}, [4]int{2, 4, 8, 16}, 0},
		{"slide with gap", [4]int{0, 0, 2, 2}, [4]int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", [4]int{2, 0, 0, 2}, [4]int{4, 0, 0, 0}, 4},
		{"empty row", [4]int{0, 0, 0, 0}, [4]int{0, 0, 0, 0}, 0},
		{"single tile", [4]int{0, 4, 0, 0}, [4]int{4, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := mergeLine(tt.input)
			if result != tt.expected {
				t.Errorf("mergeLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("mergeLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestSlide(t *testing.T) {
	tests := []struct {
		name  string
		dir   Direction
		board Board
		want  Board
		score int
	}{
		{
			name:  "left",
			dir:   DirLeft,
			board: Board{{2, 2, 0, 0}, {4, 0, 4, 0}, {2, 2, 2, 2}, {0, 0, 0, 2}},
			want:  Board{{4, 0, 0, 0}, {8, 0, 0, 0}, {4, 4, 0, 0}, {2, 0, 0, 0}},
			score: 20,
		},
		{
			name:  "right",
			dir:   DirRight,
			board: Board{{2, 2, 0, 0}, {4, 0, 4, 0}, {2, 2, 2, 2}, {0, 0, 0, 2}},
			want:  Board{{0, 0, 0, 4}, {0, 0, 0, 8}, {0, 0, 4, 4}, {0, 0, 0, 2}},
			score: 20,
		},
		{
			name:  "up",
			dir:   DirUp,
			board: Board{{2, 4, 2, 0}, {2, 0, 2, 0}, {0, 4, 2, 0}, {0, 0, 2, 2}},
			want:  Board{{4, 8, 4, 2}, {0, 0, 4, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			score: 20,
		},
		{
			name:  "down",
			dir:   DirDown,
			board: Board{{2, 4, 2, 2}, {2, 0, 2, 0}, {0, 4, 2, 0}, {0, 0, 2, 0}},
			want:  Board{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 4, 0}, {4, 8, 4, 2}},
			score: 20,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, score, changed := Slide(tt.board, tt.dir)
			if got != tt.want {
				t.Errorf("Slide %s: got\n%v\nwant\n%v", tt.dir, got, tt.want)
			}
			if !changed || score != tt.score {
				t.Errorf("Slide %s: changed %v score %d, want true %d", tt.dir, changed, score, tt.score)
			}
		})
	}
}

func TestSlideWithoutChange(t *testing.T) {
	board := Board{{4, 2, 0, 0}}
	if _, _, changed := Slide(board, DirLeft); changed {
		t.Error("left-aligned tiles should not change on a left slide")
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{"stuck", Board{{2, 4, 8, 16}, {32, 64, 128, 256}, {512, 1024, 2048, 4096}, {8192, 16384, 32768, 65536}}, false},
		{"merge available", Board{{2, 2, 8, 16}, {32, 64, 128, 256}, {512, 1024, 2048, 4096}, {8192, 16384, 32768, 65536}}, true},
		{"empty cell", Board{{2, 4, 8, 16}, {32, 64, 128, 256}, {512, 1024, 0, 4096}, {8192, 16384, 32768, 65536}}, true},
	}
	for _, tt := range tests {
		if got := CanMove(tt.board); got != tt.want {
			t.Errorf("%s: CanMove = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New()
		g.Reset(testCfg)
		dirs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
		for i := 0; i < 200; i++ {
			g.Step(core.FrameOf(dirs[i%len(dirs)]))
		}
		return g.Snapshot()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("same seed and input diverged:\n%+v\n%+v", a, b)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	once := New()
	once.Reset(testCfg)

	g := New()
	g.Reset(testCfg)
	g.Step(core.FrameOf(core.ActionLeft))
	g.Step(core.FrameOf(core.ActionUp))
	g.Reset(testCfg)
	g.Reset(testCfg)

	if once.Snapshot() != g.Snapshot() {
		t.Errorf("Reset twice = %+v, once = %+v", g.Snapshot(), once.Snapshot())
	}
	if n := len(EmptyCells(g.board)); n != Size*Size-2 {
		t.Errorf("fresh board should hold two tiles, %d empty", n)
	}
}

func TestSpawnDistribution(t *testing.T) {
	g := New()
	g.Reset(testCfg)

	twos, total := 0, 10000
	for i := 0; i < total; i++ {
		g.board = Board{}
		g.spawnTile()
		v := g.board[g.lastSpawn.Y][g.lastSpawn.X]
		switch v {
		case 2:
			twos++
		case 4:
		default:
			t.Fatalf("spawned %d", v)
		}
	}
	if ratio := float64(twos) / float64(total); ratio < 0.88 || ratio > 0.92 {
		t.Errorf("share of 2s = %.3f, expected about 0.9", ratio)
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	g := New()
	g.Reset(testCfg)
	g.board = Board{{4, 2, 0, 0}}

	g.Step(core.FrameOf(core.ActionLeft))
	if g.board != (Board{{4, 2, 0, 0}}) {
		t.Errorf("an ineffective move spawned a tile:\n%v", g.board)
	}
}

func TestHeldKeyMovesOnce(t *testing.T) {
	g := New()
	g.Reset(testCfg)
	g.board = Board{{0, 0, 0, 2}}

	g.Step(core.FrameOf(core.ActionLeft))
	after := g.board
	g.Step(core.InputFrame{Held: core.SetOf(core.ActionLeft)})
	if g.board != after {
		t.Error("holding a direction should not repeat the move")
	}
}

func TestWinContinuesPlay(t *testing.T) {
	g := New()
	g.Reset(testCfg)
	g.board = Board{{1024, 1024, 0, 0}}

	res := g.Step(core.FrameOf(core.ActionLeft))
	if !res.State.Won || res.State.GameOver {
		t.Fatalf("state = %+v, expected won and still playing", res.State)
	}
	if res.State.Score != 2048 {
		t.Errorf("score = %d, want 2048", res.State.Score)
	}
	if g.Snapshot().Phase != PhaseWon {
		t.Errorf("phase = %s", g.Snapshot().Phase)
	}

	before := g.board
	g.Step(core.FrameOf(core.ActionRight))
	if g.board == before {
		t.Error("moves should still apply after winning")
	}
	if !g.State().Won {
		t.Error("Won should stay set")
	}
}

func TestGameOverWhenStuck(t *testing.T) {
	g := New()
	g.Reset(testCfg)
	g.board = Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 64},
		{0, 8, 16, 32},
	}

	res := g.Step(core.FrameOf(core.ActionLeft))
	if !res.State.GameOver {
		t.Fatalf("board should be stuck:\n%v", g.board)
	}

	before := g.board
	g.Step(core.FrameOf(core.ActionRight))
	if g.board != before {
		t.Error("a finished game should ignore input")
	}
}

func TestMilestones(t *testing.T) {
	if m := NextMilestone(0); m == nil || m.Tile != 128 {
		t.Errorf("NextMilestone(0) = %+v", m)
	}
	if m := NextMilestone(8192); m != nil {
		t.Errorf("NextMilestone past the last = %+v", m)
	}
	if m := reachedMilestone(64, 256); m == nil || m.Tile != 256 {
		t.Errorf("reachedMilestone(64, 256) = %+v", m)
	}
	if m := reachedMilestone(128, 128); m != nil {
		t.Errorf("no milestone crossed, got %+v", m)
	}
}

func TestRenderSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, Seed: 1})
	s := core.NewScreen(20, 8)
	g.Render(s)
	if g.Snapshot().Phase != PhaseTooSmall {
		t.Error("a tiny screen should pause the game")
	}
	before := g.board
	g.Step(core.FrameOf(core.ActionLeft))
	if g.board != before {
		t.Error("moves should wait for a larger screen")
	}
}
