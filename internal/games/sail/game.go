// Package sail is an open-water exploration game: steer a boat around a
// round sea and find every island on the chart.
package sail

import (
	"math"
	"time"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
	"github.com/vovakirdan/loop-arcade/internal/registry"
	"github.com/vovakirdan/loop-arcade/internal/sched"
)

// messageTime is how long a discovery banner stays up.
const messageTime = 5 * time.Second

// View selects the render camera.
type View uint8

const (
	ViewLocal View = iota // boat-centred close-up
	ViewChart             // the whole sea
)

// Island is one island on the chart.
type Island struct {
	Name       string
	Pos        physics.Vec // X east, Y north
	Radius     float64
	Discovered bool
}

// Game is the sailing state.
type Game struct {
	cfg   config.SailConfig
	rt    core.RuntimeConfig
	queue *sched.Queue[struct{}]
	tick  uint64

	pos     physics.Vec
	heading float64 // radians clockwise from north
	speed   float64
	islands []Island
	view    View

	message   string
	messageID sched.ID

	found int
	won   bool
}

// New creates a sailing game with built-in tunables.
func New() *Game {
	return &Game{cfg: config.DefaultSailConfig()}
}

func (g *Game) ID() string    { return "sail" }
func (g *Game) Title() string { return "Sail" }

func (g *Game) Controls() string {
	return "Up: throttle  Down: brake  Left/Right: rudder  Space: chart"
}

// Configure loads YAML tunables. The sea has no difficulty presets.
func (g *Game) Configure(path string, _ config.DifficultyPreset) error {
	cfg, err := config.Load(g.ID(), path, config.DefaultSailConfig())
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.queue = sched.New[struct{}]()
	g.tick = 0
	g.pos, g.heading, g.speed = physics.Vec{}, 0, 0
	g.view = ViewLocal
	g.message, g.messageID = "", 0
	g.found, g.won = 0, false

	g.islands = g.islands[:0]
	for _, is := range g.cfg.Islands {
		g.islands = append(g.islands, Island{Name: is.Name, Pos: physics.V2(is.X, is.Z), Radius: is.Radius})
	}
}

// Step advances one tick: banner timers, the helm, the hull, then the
// shoreline and discoveries.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}
	if g.won {
		res.State = g.State()
		return res
	}
	g.tick++

	for _, ev := range g.queue.Due(g.tick) {
		if ev.ID == g.messageID {
			g.message = ""
		}
	}

	if in.JustPressed(core.ActionJump) {
		g.view = 1 - g.view
	}
	g.helm(in)
	g.sail()
	g.shore(&res)
	g.discover(&res)

	res.State = g.State()
	return res
}

// helm applies throttle, brake and rudder. Drag only slows a boat that is
// neither throttling nor braking.
func (g *Game) helm(in core.InputFrame) {
	dt := g.rt.Dt()
	switch {
	case in.Has(core.ActionUp):
		g.speed = math.Min(g.cfg.MaxSpeed, g.speed+g.cfg.Accel*dt)
	case in.Has(core.ActionDown) || in.Has(core.ActionBrake):
		g.speed = math.Max(0, g.speed-g.cfg.Brake*dt)
	default:
		g.speed *= g.cfg.Drag
	}
	g.heading += in.Axis(core.ActionLeft, core.ActionRight) * g.cfg.TurnRate
	g.heading = math.Remainder(g.heading, 2*math.Pi)
}

// sail moves the boat along its heading and keeps it inside the sea.
func (g *Game) sail() {
	g.pos = g.pos.Add(g.Direction().Scale(g.speed * g.rt.Dt()))
	if r := g.cfg.WorldRadius; r > 0 && g.pos.Len() > r {
		g.pos = g.pos.Normalize().Scale(r)
	}
}

// shore stops a boat that sails onto an island at the waterline.
func (g *Game) shore(res *core.StepResult) {
	for _, is := range g.islands {
		d := g.pos.Sub(is.Pos)
		if d.Len() >= is.Radius {
			continue
		}
		if d.Len() == 0 {
			d = g.Direction().Scale(-1)
		}
		g.pos = is.Pos.Add(d.Normalize().Scale(is.Radius))
		if g.speed > 0 {
			res.Emit(core.CueLand)
		}
		g.speed = 0
	}
}

// discover marks islands the boat has come close to. Each counts once.
func (g *Game) discover(res *core.StepResult) {
	for i := range g.islands {
		is := &g.islands[i]
		if is.Discovered || g.pos.Dist(is.Pos) >= is.Radius+g.cfg.DiscoverMargin {
			continue
		}
		is.Discovered = true
		g.found++
		res.Emit(core.CueCoin)

		g.queue.Cancel(g.messageID)
		g.message = "Discovered: " + is.Name + "!"
		g.messageID = g.queue.After(g.tick, g.rt.Ticks(messageTime), struct{}{})
	}
	if len(g.islands) > 0 && g.found == len(g.islands) {
		g.won = true
		g.queue.Clear()
		res.Emit(core.CueRoundStart)
	}
}

// Direction is the unit heading on the chart.
func (g *Game) Direction() physics.Vec {
	return physics.V2(math.Sin(g.heading), math.Cos(g.heading))
}

// Compass names the quarter the boat is heading into.
func (g *Game) Compass() string {
	return compass(g.heading * 180 / math.Pi)
}

func compass(deg float64) string {
	deg = math.Remainder(deg, 360)
	switch {
	case deg > -45 && deg < 45:
		return "N"
	case deg >= 45 && deg < 135:
		return "E"
	case deg >= -135 && deg <= -45:
		return "W"
	default:
		return "S"
	}
}

// Pos returns the boat position.
func (g *Game) Pos() physics.Vec { return g.pos }

// Speed returns the boat speed.
func (g *Game) Speed() float64 { return g.speed }

// Islands returns the chart.
func (g *Game) Islands() []Island { return g.islands }

// Message returns the current discovery banner, or "".
func (g *Game) Message() string { return g.message }

func (g *Game) State() core.GameState {
	return core.GameState{Score: g.found * g.cfg.IslandValue, GameOver: g.won, Won: g.won}
}

func init() {
	registry.Register("sail", func() registry.Game { return New() })
}
