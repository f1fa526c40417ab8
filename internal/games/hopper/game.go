// Package hopper is a lane hopper: the player hops forward from platform to
// platform, dodging obstacles and never stepping off the edge.
//
// The course is laid out top-down: X runs across the lane and Y is the
// distance travelled, so platform boxes draw straight through a viewport.
package hopper

import (
	"math/rand"

	"github.com/vovakirdan/loop-arcade/internal/actor"
	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
	"github.com/vovakirdan/loop-arcade/internal/registry"
)

// Cause is why a run ended.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseFell
	CauseHit
)

type obstacle struct {
	dx float64 // offset from the platform centre
}

type row struct {
	index     int
	platform  *actor.Platform
	obstacles []obstacle
}

// Game is the lane hopper state.
type Game struct {
	cfg        config.HopperConfig
	rt         core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	tick       uint64

	world     actor.World
	rows      []*row
	generated int

	x     float64
	at    int // platform index the player stands on
	score int
	cause Cause
}

// New creates a hopper with built-in tunables.
func New() *Game {
	cfg := config.DefaultHopperConfig()
	return &Game{cfg: cfg, difficulty: config.NewDifficultyManager(cfg.Difficulty)}
}

func (g *Game) ID() string    { return "hopper" }
func (g *Game) Title() string { return "Hopper" }

func (g *Game) Controls() string {
	return "Up/W/Space: hop forward  Left/Right: sidestep"
}

// Configure loads YAML tunables. The preset sets how far platforms swing
// from the start; the swing keeps growing with the score.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.Load(g.ID(), path, config.DefaultHopperConfig())
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg.Difficulty, preset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	return nil
}

func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.world = actor.World{}
	g.rows = nil
	g.generated = 0
	g.x, g.at, g.score = 0, 0, 0
	g.cause = CauseNone
	g.generate()
}

// step is the distance between platform centres.
func (g *Game) step() float64 { return g.cfg.PlatformDepth + g.cfg.PlatformGap }

// reach is how far the player may sidestep from the lane centre.
func (g *Game) reach() float64 { return g.cfg.PlatformWidth/2 - 1 }

// generate lays platforms down until Lookahead of them lie ahead of the
// player and drops the ones left behind.
func (g *Game) generate() {
	for g.generated <= g.at+g.cfg.Lookahead {
		g.rows = append(g.rows, g.newRow(g.generated))
		g.generated++
	}

	kept := g.rows[:0]
	for _, r := range g.rows {
		if r.index >= g.at-2 {
			kept = append(kept, r)
		}
	}
	clear(g.rows[len(kept):])
	g.rows = kept

	g.world.Actors = g.world.Actors[:0]
	for _, r := range g.rows {
		g.world.Add(r.platform)
	}
}

func (g *Game) newRow(i int) *row {
	y := float64(i) * g.step()
	p := &actor.Platform{
		Box:   physics.Rect2(-g.cfg.PlatformWidth/2, y-g.cfg.PlatformDepth/2, g.cfg.PlatformWidth, g.cfg.PlatformDepth),
		Glyph: '▒',
		Color: core.ColorGreen,
	}
	r := &row{index: i, platform: p}
	if i == 0 {
		return r
	}

	if amp := g.cfg.DriftAmp * g.difficulty.Level(g.score, 0); amp > 0 && g.cfg.DriftPeriod > 0 {
		p.Axis, p.Amp, p.Period = actor.AxisX, amp, g.cfg.DriftPeriod
		if i%2 == 1 {
			p.Amp = -amp
		}
	}

	n := g.cfg.MinObstacles
	if spread := g.cfg.MaxObstacles - g.cfg.MinObstacles; spread > 0 {
		n += g.rng.Intn(spread + 1)
	}
	for range n {
		r.obstacles = append(r.obstacles, obstacle{dx: g.rng.Float64()*2*g.reach() - g.reach()})
	}
	return r
}

// Step advances one tick: platforms drift, the player moves, then the
// landing and obstacles are checked.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}
	if g.cause != CauseNone {
		res.State = g.State()
		return res
	}
	g.tick++

	g.world.Update(in, g.rt.Dt())

	if in.JustPressed(core.ActionUp) || in.JustPressed(core.ActionJump) {
		g.at++
		g.score = max(g.score, g.at)
		g.generate()
		res.Emit(core.CueJump)
	}
	switch {
	case in.JustPressed(core.ActionLeft):
		g.x = physics.ClampX(g.x-1, 0, -g.reach(), g.reach())
	case in.JustPressed(core.ActionRight):
		g.x = physics.ClampX(g.x+1, 0, -g.reach(), g.reach())
	}

	g.check(&res)
	res.State = g.State()
	return res
}

// check ends the run when the player is off their platform or touching an
// obstacle on it.
func (g *Game) check(res *core.StepResult) {
	r := g.row(g.at)
	pos := g.Player()
	if r == nil || !r.platform.Box.Contains(pos) {
		g.cause = CauseFell
		res.Emit(core.CueMiss)
		return
	}
	half := g.cfg.HitDistance / 2
	for _, o := range r.obstacles {
		if physics.Hit(pos, g.obstaclePos(r, o), half, half) {
			g.cause = CauseHit
			res.Emit(core.CueHit)
			return
		}
	}
}

func (g *Game) row(i int) *row {
	for _, r := range g.rows {
		if r.index == i {
			return r
		}
	}
	return nil
}

func (g *Game) obstaclePos(r *row, o obstacle) physics.Vec {
	c := r.platform.Box.Center()
	return physics.V2(c.X+o.dx, c.Y)
}

// Player returns the player's position on the course.
func (g *Game) Player() physics.Vec {
	return physics.V2(g.x, float64(g.at)*g.step())
}

// Cause returns why the run ended, or CauseNone while it goes on.
func (g *Game) Cause() Cause { return g.cause }

func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.cause != CauseNone}
}

func init() {
	registry.Register("hopper", func() registry.Game { return New() })
}
