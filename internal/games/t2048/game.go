package t2048

import (
	"math/rand"

	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/registry"
)

const (
	// spawn4Prob is the chance a spawned tile is a 4 instead of a 2.
	spawn4Prob = 0.10

	popTicks    = 6  // new tile highlight, ~100ms at 60fps
	bannerTicks = 90 // milestone banner
)

// Game implements the 2048 puzzle game.
type Game struct {
	rng  *rand.Rand
	tick uint64

	score    int
	board    Board
	gameOver bool
	won      bool

	screenW  int
	screenH  int
	tooSmall bool

	// Presentation state, advanced by Step so Render stays read-only.
	lastSpawn  Pos
	popLeft    int
	banner     *Milestone
	bannerLeft int
}

// New creates a 2048 game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: slide"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.board = Board{}
	g.gameOver = false
	g.won = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.popLeft = 0
	g.banner = nil
	g.bannerLeft = 0

	// Minimum size: board (21 wide, 9 tall) + HUD
	g.tooSmall = g.screenW < 25 || g.screenH < 12

	g.spawnTile()
	g.spawnTile()
}

// spawnTile places a 2 (90%) or a 4 (10%) on a random empty cell.
func (g *Game) spawnTile() {
	empty := EmptyCells(g.board)
	if len(empty) == 0 {
		return
	}
	cell := empty[g.rng.Intn(len(empty))]

	value := 2
	if g.rng.Float64() < spawn4Prob {
		value = 4
	}
	g.board[cell.Y][cell.X] = value
	g.lastSpawn = cell
	g.popLeft = popTicks
}

// Step advances the game by one tick. At most one move is taken per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.popLeft > 0 {
		g.popLeft--
	}
	if g.bannerLeft > 0 {
		g.bannerLeft--
	}

	res := core.StepResult{}
	if g.tooSmall || g.gameOver {
		res.State = g.State()
		return res
	}

	dir, ok := direction(in)
	if ok {
		g.move(dir, &res)
	}
	res.State = g.State()
	return res
}

func direction(in core.InputFrame) (Direction, bool) {
	switch {
	case in.JustPressed(core.ActionUp):
		return DirUp, true
	case in.JustPressed(core.ActionDown):
		return DirDown, true
	case in.JustPressed(core.ActionLeft):
		return DirLeft, true
	case in.JustPressed(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// move slides the board. A move that changes nothing spawns nothing.
func (g *Game) move(dir Direction, res *core.StepResult) {
	next, gained, changed := Slide(g.board, dir)
	if !changed {
		return
	}

	before := MaxTile(g.board)
	g.board = next
	g.score += gained
	if gained > 0 {
		res.Emit(core.CueCoin)
	}

	after := MaxTile(g.board)
	if m := reachedMilestone(before, after); m != nil {
		g.banner = m
		g.bannerLeft = bannerTicks
	}
	if after >= WinTile && !g.won {
		g.won = true
		res.Emit(core.CueRoundStart)
	}

	g.spawnTile()
	if !CanMove(g.board) {
		g.gameOver = true
		res.Emit(core.CueKO)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}
