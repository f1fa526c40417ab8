// Package cannon is a three-shot artillery game: aim a cannon in yaw and
// pitch and lob a ball at a bullseye 50 m downrange.
package cannon

import (
	"math"
	"time"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
	"github.com/vovakirdan/loop-arcade/internal/registry"
	"github.com/vovakirdan/loop-arcade/internal/round"
	"github.com/vovakirdan/loop-arcade/internal/sched"
)

// Phase is the shot cycle.
type Phase uint8

const (
	PhaseAiming Phase = iota
	PhaseFiring
	PhaseLanded
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "aiming"
	case PhaseFiring:
		return "firing"
	case PhaseLanded:
		return "landed"
	default:
		return "game_over"
	}
}

type event uint8

const (
	evFire event = iota
	evLand
	evReload
	evOut
)

// pivot is where the barrel turns.
var pivot = physics.Vec{Y: 0.7, Z: -0.5}

// Game is the artillery state.
type Game struct {
	cfg config.CannonConfig
	rt  core.RuntimeConfig

	machine *round.Machine[Phase, event]
	queue   *sched.Queue[event]
	tick    uint64

	yaw, pitch float64
	ball       physics.Body
	shots      int
	last       int  // score of the latest landing
	lastHit    bool // latest landing struck the target
	total      int
	res        *core.StepResult
}

// New creates a cannon range with built-in tunables.
func New() *Game {
	return &Game{cfg: config.DefaultCannonConfig()}
}

func (g *Game) ID() string    { return "cannon" }
func (g *Game) Title() string { return "Cannon" }

func (g *Game) Controls() string {
	return "←/→: yaw | ↑/↓: pitch | Space: fire"
}

// Configure loads YAML tunables. The range has no difficulty settings.
func (g *Game) Configure(path string, _ config.DifficultyPreset) error {
	cfg, err := config.Load(g.ID(), path, config.DefaultCannonConfig())
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// Reset loads three fresh shots with the barrel at its starting pitch.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.machine = round.NewMachine[Phase, event](PhaseAiming).
		Allow(PhaseAiming, evFire, PhaseFiring).
		Allow(PhaseFiring, evLand, PhaseLanded).
		Allow(PhaseLanded, evReload, PhaseAiming).
		Allow(PhaseLanded, evOut, PhaseGameOver)
	g.machine.OnEnter = g.enter
	g.queue = sched.New[event]()
	g.tick = 0

	g.yaw, g.pitch = 0, g.cfg.InitPitch
	g.ball = physics.Body{}
	g.shots = g.cfg.Shots
	g.last, g.lastHit = 0, false
	g.total = 0
}

func (g *Game) enter(_, to Phase, _ event) {
	switch to {
	case PhaseFiring:
		dir := g.Aim()
		g.ball = physics.Body{
			Pos: pivot.Add(dir.Scale(g.cfg.MuzzleLength)),
			Vel: dir.Scale(g.cfg.LaunchSpeed),
		}
		g.last, g.lastHit = 0, false
		g.emit(core.CueShoot)
	case PhaseLanded:
		g.ball.Vel = physics.Vec{}
		g.shots--
		g.total += g.last
		if g.lastHit {
			g.emit(core.CueHit)
		} else {
			g.emit(core.CueMiss)
		}
		g.queue.After(g.tick, g.rt.Ticks(time.Duration(g.cfg.ResetSeconds*float64(time.Second))), evReload)
	case PhaseAiming:
		g.ball = physics.Body{}
	case PhaseGameOver:
		g.queue.Clear()
		g.emit(core.CueKO)
	}
}

func (g *Game) emit(c core.Cue) {
	if g.res != nil {
		g.res.Emit(c)
	}
}

// Aim returns the unit launch direction. Zero yaw points down -Z at the
// target; positive yaw swings left and positive pitch raises the barrel.
func (g *Game) Aim() physics.Vec {
	cp := math.Cos(g.pitch)
	return physics.Vec{
		X: -math.Sin(g.yaw) * cp,
		Y: math.Sin(g.pitch),
		Z: -math.Cos(g.yaw) * cp,
	}
}

// Step advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}
	g.res = &res
	defer func() { g.res = nil }()

	g.tick++
	for _, ev := range g.queue.Due(g.tick) {
		if ev.Payload != evReload {
			continue
		}
		if g.shots > 0 {
			g.machine.Fire(evReload)
		} else {
			g.machine.Fire(evOut)
		}
	}

	switch g.machine.State() {
	case PhaseAiming:
		g.steer(in)
		if in.JustPressed(core.ActionFire) || in.JustPressed(core.ActionJump) {
			g.Fire()
		}
	case PhaseFiring:
		g.fly()
	}

	res.State = g.State()
	return res
}

// Fire launches a shot. It does nothing outside aiming or with no shots
// left.
func (g *Game) Fire() bool {
	if g.shots <= 0 {
		return false
	}
	return g.machine.Fire(evFire)
}

func (g *Game) steer(in core.InputFrame) {
	dt := g.rt.Dt()
	g.yaw += in.Axis(core.ActionRight, core.ActionLeft) * g.cfg.YawSpeed * dt
	g.yaw = core.ClampF(g.yaw, -g.cfg.MaxYaw, g.cfg.MaxYaw)
	g.pitch += in.Axis(core.ActionDown, core.ActionUp) * g.cfg.PitchSpeed * dt
	g.pitch = core.ClampF(g.pitch, g.cfg.MinPitch, g.cfg.MaxPitch)
}

// fly integrates the ball and checks for a landing, ground first.
func (g *Game) fly() {
	dt := g.rt.Dt()
	g.ball.Vel.Y -= g.cfg.Gravity * dt
	g.ball.Pos = g.ball.Pos.Add(g.ball.Vel.Scale(dt))

	if g.ball.Pos.Y <= g.cfg.BallRadius {
		g.ball.Pos.Y = g.cfg.BallRadius
		g.land(false, 0)
		return
	}
	target := g.Target()
	if physics.Hit(g.ball.Pos, target, g.cfg.BallRadius, g.cfg.TargetRadius) {
		threshold := g.cfg.BallRadius + g.cfg.TargetRadius
		score := int(math.Round((1 - g.ball.Pos.Dist(target)/threshold) * 100))
		g.land(true, max(0, score))
	}
}

// land records a landing. Only the first landing of a shot counts.
func (g *Game) land(hit bool, score int) {
	if !g.machine.Can(evLand) {
		return
	}
	g.last, g.lastHit = score, hit
	g.machine.Fire(evLand)
}

// Target returns the bullseye centre.
func (g *Game) Target() physics.Vec {
	return physics.Vec{X: g.cfg.TargetX, Y: g.cfg.TargetY, Z: g.cfg.TargetZ}
}

// Phase returns the shot cycle state.
func (g *Game) Phase() Phase { return g.machine.State() }

// Shots returns the shots left.
func (g *Game) Shots() int { return g.shots }

// Last returns the latest landing's score.
func (g *Game) Last() int { return g.last }

func (g *Game) State() core.GameState {
	return core.GameState{Score: g.total, GameOver: g.machine.Is(PhaseGameOver)}
}

func init() {
	registry.Register("cannon", func() registry.Game { return New() })
}
