// Package climb is a 3D platformer seen from above: cross the courtyard,
// punch or dodge the patrollers, then hop the stepping stones to the goal.
package climb

import (
	"math"
	"time"

	"github.com/vovakirdan/loop-arcade/internal/actor"
	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
	"github.com/vovakirdan/loop-arcade/internal/registry"
)

// Game is the 3D platformer state.
type Game struct {
	cfg config.ClimbConfig
	rt  core.RuntimeConfig

	world  actor.World
	player *actor.Player
	goal   *actor.Platform

	lives    int
	score    int
	gameOver bool
	won      bool
}

// New creates a climb game with built-in tunables.
func New() *Game {
	return &Game{cfg: config.DefaultClimbConfig()}
}

func (g *Game) ID() string    { return "climb" }
func (g *Game) Title() string { return "Climb" }

func (g *Game) Controls() string {
	return "←/→/↑/↓: move | Space: jump | F: punch | C: crouch"
}

// Configure loads YAML tunables.
func (g *Game) Configure(path string, _ config.DifficultyPreset) error {
	cfg, err := config.Load(g.ID(), path, config.DefaultClimbConfig())
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// Reset builds the course and puts the player at the spawn point.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.lives = g.cfg.Lives
	g.score = 0
	g.gameOver = false
	g.won = false

	g.world = actor.World{Physics: physics.World{
		Gravity:   g.cfg.Gravity,
		HasGround: true,
		Bounds:    bounds,
	}}
	g.goal = nil
	for _, pc := range course(g.cfg.NPCSpeed) {
		a, err := actor.Build(pc.spec)
		a = actor.OrPlaceholder(a, err, pc.spec.Pos)
		if p, ok := a.(*actor.Platform); ok && pc.goal {
			p.Goal = true
			g.goal = p
		}
		g.world.Add(a)
	}

	punch := cfg.Ticks(time.Duration(g.cfg.PunchSeconds * float64(time.Second)))
	g.player = actor.NewPlayer(spawnPoint, playerSize, 1)
	g.player.Moves = actor.Moves{
		Speed:       g.cfg.Speed,
		JumpSpeed:   g.cfg.JumpSpeed,
		AirJumps:    1,
		AirJumpMult: g.cfg.AirJumpMult,
		CrouchMult:  g.cfg.CrouchMult,
		CrouchSize:  g.cfg.CrouchHeight,
		PunchTicks:  punch,
		Depth:       true,
	}
	g.player.Body.Grounded = true
}

// Step advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}
	if g.gameOver {
		res.State = g.State()
		return res
	}
	dt := g.rt.Dt()
	p := g.player

	// Patrollers always walk on the courtyard floor; the player only has
	// it while standing over it.
	g.world.Physics.HasGround = true
	g.world.Update(in, dt)

	wasGrounded, used := p.Body.Grounded, p.JumpsUsed
	g.world.Physics.HasGround = inCourtyard(p.Body.Pos) && p.Body.Pos.Y > -0.5
	p.Update(&g.world, in, dt)
	g.world.Physics.HasGround = true

	if in.JustPressed(core.ActionJump) && !p.Crouching && (wasGrounded || used < p.Moves.AirJumps) {
		res.Emit(core.CueJump)
	}
	if p.Contact().Has(physics.Landed) {
		res.Emit(core.CueLand)
	}

	if p.Punching() {
		reach := p.Reach(g.cfg.PunchReach)
		for _, n := range actor.Of[*actor.NPC](&g.world) {
			if physics.Collide(reach, n.Body.Box()) && n.TakeDamage(n.Health) {
				g.score += g.cfg.PunchValue
				res.Emit(core.CueHit)
			}
		}
	}

	switch {
	case len(g.world.Touching(p)) > 0, p.Body.Pos.Y < g.cfg.KillY:
		g.loseLife(&res)
	case g.onGoal():
		g.score += g.cfg.GoalValue
		g.won = true
		g.gameOver = true
		res.Emit(core.CueRoundStart)
	}

	g.world.Sweep()
	res.State = g.State()
	return res
}

func (g *Game) loseLife(res *core.StepResult) {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		res.Emit(core.CueKO)
		return
	}
	res.Emit(core.CueMiss)
	g.player.Respawn()
	g.player.Body.Grounded = true
}

// onGoal reports whether the player stands on the goal platform.
func (g *Game) onGoal() bool {
	if g.goal == nil || !g.player.Body.Grounded {
		return false
	}
	b := g.player.Body.Box()
	top := g.goal.Box
	if math.Abs(b.Min.Y-top.Max.Y) > 1e-6 {
		return false
	}
	return b.Min.X < top.Max.X && top.Min.X < b.Max.X &&
		b.Min.Z < top.Max.Z && top.Min.Z < b.Max.Z
}

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.gameOver, Won: g.won}
}

func init() {
	registry.Register("climb", func() registry.Game { return New() })
}
