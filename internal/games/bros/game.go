// Package bros is a single-screen platformer: run, double jump and wall
// jump around ledges collecting coins while dodging or stomping walkers.
package bros

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/loop-arcade/internal/actor"
	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
	"github.com/vovakirdan/loop-arcade/internal/registry"
)

// wallKickTicks is how long a wall jump overrides horizontal input.
const wallKickTicks = 8

// Game is the platformer state.
type Game struct {
	cfg config.BrosConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	world   actor.World
	player  *actor.Player
	coins   []coin
	goombas []*actor.NPC

	wallDir  float64 // side of the wall the player pressed into last tick, 0 if none
	kickLeft int
	kickVel  float64

	score    int
	gameOver bool
	won      bool
}

// New creates a platformer with built-in tunables.
func New() *Game {
	return &Game{cfg: config.DefaultBrosConfig()}
}

func (g *Game) ID() string    { return "bros" }
func (g *Game) Title() string { return "Bros" }

func (g *Game) Controls() string {
	return "←/→: run | Space/↑: jump, again for double jump, against a wall to wall jump"
}

// Configure loads YAML tunables. Bros has no difficulty ramp.
func (g *Game) Configure(path string, _ config.DifficultyPreset) error {
	cfg, err := config.Load(g.ID(), path, config.DefaultBrosConfig())
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// Reset builds the level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.score = 0
	g.gameOver = false
	g.won = false
	g.wallDir = 0
	g.kickLeft = 0

	g.world = actor.World{Physics: physics.World{
		Gravity: g.cfg.Gravity,
		Bounds:  physics.Rect2(0, 0, LevelW, LevelH),
	}}
	for _, b := range levelBlocks() {
		g.world.Add(&actor.Platform{Box: b.box, Glyph: b.glyph, Color: b.color})
	}

	g.player = actor.NewPlayer(spawnPoint, playerSize, 1)
	g.player.Body.Grounded = true

	g.coins = placeCoins(g.rng, g.cfg.Coins)
	g.goombas = spawnGoombas(g.rng, g.cfg.Goombas, g.cfg.GoombaSpeed)
	for _, n := range g.goombas {
		g.world.Add(n)
	}
}

// Step advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}
	if g.gameOver {
		res.State = g.State()
		return res
	}
	dt := g.rt.Dt()

	// Platforms and walkers first; the player then moves against the
	// updated platform set.
	g.world.Update(in, dt)
	for _, n := range g.goombas {
		if n.Alive() && n.Body.Pos.Y < KillY {
			n.Health = 0
		}
	}

	g.stepPlayer(in, dt, &res)
	g.collectCoins(&res)
	g.checkGoombas(&res)
	g.world.Sweep()

	if g.player.Body.Pos.Y < KillY {
		g.gameOver = true
		res.Emit(core.CueKO)
	}

	res.State = g.State()
	return res
}

func (g *Game) stepPlayer(in core.InputFrame, dt float64, res *core.StepResult) {
	p := g.player
	body := &p.Body
	grounded := body.Grounded
	if grounded {
		p.JumpsUsed = 0
	}
	onWall := g.wallDir != 0 && !grounded

	dx := in.Axis(core.ActionLeft, core.ActionRight)
	body.Vel.X = dx * g.cfg.RunSpeed
	if dx != 0 {
		p.Facing = dx
	}

	jump := in.JustPressed(core.ActionJump) || in.JustPressed(core.ActionUp)
	switch {
	case jump && grounded:
		body.Vel.Y = g.cfg.JumpSpeed
		body.Grounded = false
		res.Emit(core.CueJump)
	case jump && onWall:
		body.Vel.Y = g.cfg.WallJumpY
		g.kickVel = -g.wallDir * g.cfg.WallJumpX
		g.kickLeft = wallKickTicks
		p.JumpsUsed = 0
		res.Emit(core.CueJump)
	case jump && p.JumpsUsed < 1:
		body.Vel.Y = g.cfg.DoubleJumpSpeed
		p.JumpsUsed++
		res.Emit(core.CueJump)
	}

	if g.kickLeft > 0 {
		body.Vel.X = g.kickVel
		g.kickLeft--
	}

	held := in.Has(core.ActionJump) || in.Has(core.ActionUp)
	if body.Vel.Y > 0 && !held {
		body.Vel.Y *= g.cfg.JumpCut
	}
	if onWall && body.Vel.Y < -g.cfg.WallSlideSpeed {
		body.Vel.Y = -g.cfg.WallSlideSpeed
	}

	pushing := body.Vel.X
	c := g.world.Physics.Step(body, dt)
	switch {
	case c.Has(physics.BlockedX) && pushing > 0:
		g.wallDir = 1
	case c.Has(physics.BlockedX) && pushing < 0:
		g.wallDir = -1
	default:
		g.wallDir = 0
	}
	if c.Has(physics.Landed) {
		res.Emit(core.CueLand)
	}
}

func (g *Game) collectCoins(res *core.StepResult) {
	box := g.player.Body.Box()
	left := 0
	for i := range g.coins {
		c := &g.coins[i]
		if c.taken {
			continue
		}
		if physics.Collide(box, c.box) {
			c.taken = true
			g.score += g.cfg.CoinValue
			res.Emit(core.CueCoin)
			continue
		}
		left++
	}
	if left == 0 && len(g.coins) > 0 {
		g.won = true
		g.gameOver = true
	}
}

// checkGoombas resolves player contact: landing on a walker from above
// stomps it, any other touch ends the run.
func (g *Game) checkGoombas(res *core.StepResult) {
	p := g.player
	for _, n := range g.world.Touching(p) {
		top := n.Body.Pos.Y + n.Body.Size.Y
		if p.Body.Vel.Y <= 0 && p.Body.Pos.Y >= top-n.Body.Size.Y/2 {
			n.Health = 0
			g.score += g.cfg.StompValue
			p.Body.Vel.Y = g.cfg.StompBounce
			p.Body.Grounded = false
			res.Emit(core.CueHit)
			continue
		}
		g.gameOver = true
		res.Emit(core.CueKO)
		return
	}
}

// CoinsLeft returns the number of coins not yet collected.
func (g *Game) CoinsLeft() int {
	n := 0
	for _, c := range g.coins {
		if !c.taken {
			n++
		}
	}
	return n
}

func (g *Game) viewport(dst *core.Screen) core.Viewport {
	rows := max(1, dst.Height()-1)
	vp := core.Viewport{ScaleY: LevelH / float64(rows), Height: dst.Height()}
	vp.Scale = vp.ScaleY / 2
	vp.Follow(g.player.Body.Pos.X, dst.Width(), 0, LevelW)
	return vp
}

// Render draws the level around the player.
func (g *Game) Render(dst *core.Screen) {
	vp := g.viewport(dst)

	g.world.Draw(dst, vp)
	for _, c := range g.coins {
		if c.taken {
			continue
		}
		ctr := c.box.Center()
		x, y := vp.Cell(ctr.X, ctr.Y)
		dst.SetColor(x, y, 'o', core.ColorBrightYellow)
	}
	g.player.Draw(dst, vp)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Coins left: %d", g.score, g.CoinsLeft()))

	switch {
	case g.won:
		dst.DrawMessage("YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to play again", g.score))
	case g.gameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to try again", g.score))
	}
}

func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.gameOver, Won: g.won}
}

func init() {
	registry.Register("bros", func() registry.Game { return New() })
}
