// Package racer is a synthwave night drive: hold the throttle, weave
// between the pylons standing on the road and see how far you get.
//
// Road units: X is across the road with 0 at the centre line, Y is the
// distance driven. Speeds are road units per tick.
package racer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
	"github.com/vovakirdan/loop-arcade/internal/registry"
	"github.com/vovakirdan/loop-arcade/internal/round"
)

// Phase is the drive cycle.
type Phase uint8

const (
	PhaseReady Phase = iota
	PhaseDriving
	PhaseCrashed
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseDriving:
		return "driving"
	default:
		return "crashed"
	}
}

type event uint8

const (
	evStart event = iota
	evCrash
)

// pylonsAhead is how many pylons are kept on the road in front of the car.
const pylonsAhead = 8

// Game is the drive state.
type Game struct {
	cfg     config.RacerConfig
	rt      core.RuntimeConfig
	rng     *rand.Rand
	machine *round.Machine[Phase, event]
	tick    uint64

	x        float64
	distance float64
	speed    float64
	pylons   []physics.Vec
	nextAt   float64 // distance of the next pylon to place
	res      *core.StepResult
}

// New creates a drive with built-in tunables.
func New() *Game {
	return &Game{cfg: config.DefaultRacerConfig()}
}

func (g *Game) ID() string    { return "racer" }
func (g *Game) Title() string { return "Synthwave Racer" }

func (g *Game) Controls() string {
	return "Up: accelerate  Down: brake  Left/Right: steer"
}

// Configure loads YAML tunables. The road has no difficulty presets.
func (g *Game) Configure(path string, _ config.DifficultyPreset) error {
	cfg, err := config.Load(g.ID(), path, config.DefaultRacerConfig())
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.machine = round.NewMachine[Phase, event](PhaseReady).
		Allow(PhaseReady, evStart, PhaseDriving).
		Allow(PhaseDriving, evCrash, PhaseCrashed)
	g.machine.OnEnter = g.enter
	g.tick = 0

	g.x, g.distance, g.speed = 0, 0, 0
	g.pylons = g.pylons[:0]
	g.nextAt = 2 * g.cfg.PylonEvery
	g.placePylons()
}

func (g *Game) enter(_, to Phase, _ event) {
	switch to {
	case PhaseDriving:
		g.emit(core.CueRoundStart)
	case PhaseCrashed:
		g.speed = 0
		g.emit(core.CueExplode)
	}
}

func (g *Game) emit(c core.Cue) {
	if g.res != nil {
		g.res.Emit(c)
	}
}

// Step advances one tick. The first throttle starts the drive.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}
	g.res = &res
	defer func() { g.res = nil }()

	if g.machine.Is(PhaseReady) && (in.Has(core.ActionUp) || in.JustPressed(core.ActionConfirm)) {
		g.machine.Fire(evStart)
	}
	if !g.machine.Is(PhaseDriving) {
		res.State = g.State()
		return res
	}
	g.tick++

	g.throttle(in)
	g.steer(in)
	from := g.distance
	g.distance += g.speed
	g.collide(from)
	g.placePylons()

	res.State = g.State()
	return res
}

// throttle accelerates toward the top speed. Braking sheds speed at twice
// the coasting rate.
func (g *Game) throttle(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.speed = math.Min(g.cfg.MaxSpeed, g.speed+g.cfg.Accel)
	case in.Has(core.ActionDown) || in.Has(core.ActionBrake):
		g.speed = math.Max(0, g.speed-2*g.cfg.Decel)
	default:
		g.speed = math.Max(0, g.speed-g.cfg.Decel)
	}
}

// steer moves the car across the road in proportion to its speed. A
// stopped car cannot steer.
func (g *Game) steer(in core.InputFrame) {
	if g.speed <= 0 || g.cfg.SteerDivisor <= 0 {
		return
	}
	g.x += in.Axis(core.ActionLeft, core.ActionRight) * g.speed / g.cfg.SteerDivisor
	g.x = physics.ClampX(g.x, g.cfg.RoadMargin, -g.cfg.RoadWidth/2, g.cfg.RoadWidth/2)
}

// placePylons keeps pylonsAhead pylons in front of the car and drops the
// ones it has passed.
func (g *Game) placePylons() {
	for g.cfg.PylonEvery > 0 && g.nextAt <= g.distance+pylonsAhead*g.cfg.PylonEvery {
		lane := g.cfg.RoadWidth/2 - g.cfg.RoadMargin
		g.pylons = append(g.pylons, physics.V2(g.rng.Float64()*2*lane-lane, g.nextAt))
		g.nextAt += g.cfg.PylonEvery
	}
	kept := g.pylons[:0]
	for _, p := range g.pylons {
		if p.Y+g.cfg.PylonRadius+g.cfg.CarRadius >= g.distance {
			kept = append(kept, p)
		}
	}
	g.pylons = kept
}

// collide checks every pylon against the stretch of road covered this
// tick, so a fast car cannot jump over one.
func (g *Game) collide(from float64) {
	for _, p := range g.pylons {
		at := core.ClampF(p.Y, from, g.distance)
		if physics.Hit(physics.V2(g.x, at), p, g.cfg.CarRadius, g.cfg.PylonRadius) {
			g.distance = at
			g.machine.Fire(evCrash)
			return
		}
	}
}

// Phase returns where the drive is.
func (g *Game) Phase() Phase { return g.machine.State() }

// Speed returns the car speed.
func (g *Game) Speed() float64 { return g.speed }

// Pylons returns the pylons still ahead.
func (g *Game) Pylons() []physics.Vec { return g.pylons }

func (g *Game) score() int {
	if g.cfg.ScoreUnit <= 0 {
		return int(g.distance)
	}
	return int(g.distance / g.cfg.ScoreUnit)
}

func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score(), GameOver: g.machine.Is(PhaseCrashed)}
}

func init() {
	registry.Register("racer", func() registry.Game { return New() })
}
