// Package office is a top-down walkabout: stroll the office floor between
// desks, catch coworkers as they wander about, and stop for a chat.
package office

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/loop-arcade/internal/actor"
	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
	"github.com/vovakirdan/loop-arcade/internal/registry"
	"github.com/vovakirdan/loop-arcade/internal/round"
	"github.com/vovakirdan/loop-arcade/internal/sched"
)

// Phase is where the walkabout is.
type Phase int

const (
	PhaseWalking Phase = iota
	PhaseTyping        // dialog box open, line still appearing
	PhaseReading       // dialog box open, line complete
	PhaseDone          // everyone met
)

type event int

const (
	evTalk event = iota
	evTyped
	evSkip
	evClose
	evFinish
)

// coworker is a wandering NPC and the conversation state that goes with it.
type coworker struct {
	npc   *actor.NPC
	name  string
	lines []string
	next  int
	met   bool
	speed float64 // heading speed, restored after a chat
}

// Game is the office walkabout state.
type Game struct {
	cfg config.OfficeConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	world   actor.World
	walls   []physics.Box
	scratch []physics.Box
	player  physics.Body
	blocker *actor.Platform
	facing  physics.Vec
	cast    []*coworker

	machine *round.Machine[Phase, event]
	queue   *sched.Queue[int]
	tick    uint64

	talker *coworker
	text   []rune
	shown  float64

	met      int
	score    int
	gameOver bool
	won      bool
}

// New creates an office game with built-in tunables.
func New() *Game {
	return &Game{cfg: config.DefaultOfficeConfig()}
}

func (g *Game) ID() string    { return "office" }
func (g *Game) Title() string { return "Office" }

func (g *Game) Controls() string {
	return "←/→/↑/↓: walk | E: talk | Space: next line"
}

// Configure loads YAML tunables.
func (g *Game) Configure(path string, _ config.DifficultyPreset) error {
	cfg, err := config.Load(g.ID(), path, config.DefaultOfficeConfig())
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// Reset lays out the floor, seats the cast and schedules their first
// heading changes.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.met = 0
	g.score = 0
	g.gameOver = false
	g.won = false
	g.talker = nil
	g.text = nil
	g.shown = 0

	g.world = actor.World{Physics: physics.World{HasGround: true, Bounds: bounds}}
	g.walls = g.walls[:0]
	for _, s := range solids() {
		glyph, color := '█', core.ColorGray
		if s.kind == 'D' {
			glyph, color = '▄', core.ColorOrange
		}
		g.world.Add(&actor.Platform{Box: s.box, Glyph: glyph, Color: color})
		g.walls = append(g.walls, s.box)
	}

	g.player = physics.Body{Pos: tileCentre(spawnCol, spawnRow), Size: bodySize, Grounded: true}
	g.facing = physics.Vec{Z: 1}
	g.blocker = &actor.Platform{Box: g.player.Box()}
	g.world.Add(g.blocker)

	g.machine = round.NewMachine[Phase, event](PhaseWalking).
		Allow(PhaseWalking, evTalk, PhaseTyping).
		Allow(PhaseTyping, evTyped, PhaseReading).
		Allow(PhaseTyping, evSkip, PhaseReading).
		Allow(PhaseReading, evClose, PhaseWalking).
		Allow(PhaseReading, evFinish, PhaseDone)
	g.machine.OnEnter = g.enter

	g.queue = sched.New[int]()
	g.cast = g.cast[:0]
	for _, c := range g.cfg.Cast {
		pos := tileCentre(c.Col, c.Row)
		a, err := actor.Build(actor.Spec{
			Kind:  actor.KindNPC,
			Pos:   pos,
			Size:  bodySize,
			Axis:  actor.AxisX,
			Range: g.cfg.WanderRange,
			Speed: g.cfg.NPCSpeed,
		})
		if err == nil && solidTile(tileAt(c.Col, c.Row)) {
			err = fmt.Errorf("office: %s starts inside the furniture at %d,%d", c.Name, c.Col, c.Row)
		}
		a = actor.OrPlaceholder(a, err, pos)
		g.world.Add(a)

		n, ok := a.(*actor.NPC)
		if !ok {
			continue
		}
		n.Speed = 0
		if r := []rune(c.Glyph); len(r) > 0 {
			n.Glyph = r[0]
		}
		g.queue.After(g.tick, g.wanderDelay(), len(g.cast))
		g.cast = append(g.cast, &coworker{npc: n, name: c.Name, lines: c.Lines})
	}
}

// Step advances one tick: heading changes, then the dialog or the walk.
// The player stays put while a dialog box is open.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}
	if g.gameOver {
		res.State = g.State()
		return res
	}
	dt := g.rt.Dt()

	g.tick++
	for _, ev := range g.queue.Due(g.tick) {
		g.wander(ev.Payload)
	}

	switch g.machine.State() {
	case PhaseWalking:
		if in.JustPressed(core.ActionConfirm) || in.JustPressed(core.ActionFire) {
			if c := g.facingCoworker(); c != nil {
				g.talk(c, &res)
			}
		}
	case PhaseTyping:
		if advance(in) {
			g.machine.Fire(evSkip)
			break
		}
		g.shown += g.cfg.TypeRate
		if int(g.shown) >= len(g.text) {
			g.machine.Fire(evTyped)
		}
	case PhaseReading:
		if advance(in) {
			g.hangUp(&res)
		}
	}

	g.blocker.Box = g.player.Box()
	g.world.Update(in, dt)
	if g.machine.Is(PhaseWalking) {
		g.walk(in, dt)
	}

	res.State = g.State()
	return res
}

func advance(in core.InputFrame) bool {
	return in.JustPressed(core.ActionJump) || in.JustPressed(core.ActionConfirm) || in.JustPressed(core.ActionFire)
}

func (g *Game) enter(_, to Phase, _ event) {
	switch to {
	case PhaseReading:
		g.shown = float64(len(g.text))
	case PhaseDone:
		g.won = true
		g.gameOver = true
		g.queue.Clear()
	}
}

// walk moves the player one tile direction at a time: left, right, up,
// then down wins when several are held. Walls, desks and coworkers block.
func (g *Game) walk(in core.InputFrame, dt float64) {
	var dir physics.Vec
	switch {
	case in.Has(core.ActionLeft):
		dir.X = -1
	case in.Has(core.ActionRight):
		dir.X = 1
	case in.Has(core.ActionUp):
		dir.Z = -1
	case in.Has(core.ActionDown):
		dir.Z = 1
	}
	if dir != (physics.Vec{}) {
		g.facing = dir
	}
	g.player.Vel = dir.Scale(g.cfg.WalkSpeed)

	g.scratch = append(g.scratch[:0], g.walls...)
	for _, c := range g.cast {
		g.scratch = append(g.scratch, c.npc.Body.Box())
	}
	pw := g.world.Physics
	pw.Platforms = g.scratch
	pw.Step(&g.player, dt)
}

// talkPoint is the spot just ahead of the player that a coworker must be
// near to start a chat.
func (g *Game) talkPoint() physics.Vec {
	return g.player.Pos.Add(g.facing.Scale(g.cfg.Reach))
}

// facingCoworker returns the closest coworker to the talk point within
// the talk radius, or nil.
func (g *Game) facingCoworker() *coworker {
	p := g.talkPoint()
	var best *coworker
	bestD := g.cfg.TalkRadius
	for _, c := range g.cast {
		if len(c.lines) == 0 {
			continue
		}
		if d := p.Dist(c.npc.Body.Pos); d < bestD {
			best, bestD = c, d
		}
	}
	return best
}

// talk opens the dialog with c's next line. Coworkers cycle through
// their lines; the first chat with each one scores.
func (g *Game) talk(c *coworker, res *core.StepResult) {
	g.talker = c
	c.npc.Speed = 0
	g.text = []rune(c.lines[c.next])
	g.shown = 0
	c.next = (c.next + 1) % len(c.lines)
	if !c.met {
		c.met = true
		g.met++
		g.score += g.cfg.MeetValue
		res.Emit(core.CueCoin)
	}
	g.machine.Fire(evTalk)
}

// hangUp closes the dialog and lets the coworker walk on.
func (g *Game) hangUp(res *core.StepResult) {
	g.talker.npc.Speed = g.talker.speed
	g.talker = nil
	g.text = nil
	g.shown = 0
	if g.met == len(g.cast) {
		g.machine.Fire(evFinish)
		res.Emit(core.CueRoundStart)
		return
	}
	g.machine.Fire(evClose)
}

// wander picks a new heading for coworker i: stand still, or stroll
// along X or Z for up to half the wander range either way.
func (g *Game) wander(i int) {
	c := g.cast[i]
	n := c.npc
	n.Origin = n.Body.Pos
	n.Range = g.cfg.WanderRange
	c.speed = 0
	if g.rng.Float64() >= g.cfg.IdleChance {
		c.speed = g.cfg.NPCSpeed
		n.Axis = actor.AxisX
		if g.rng.Intn(2) == 1 {
			n.Axis = actor.AxisZ
		}
		n.Dir = 1
		if g.rng.Intn(2) == 1 {
			n.Dir = -1
		}
	}
	if c != g.talker {
		n.Speed = c.speed
	}
	g.queue.After(g.tick, g.wanderDelay(), i)
}

func (g *Game) wanderDelay() int {
	secs := g.cfg.WanderMin + g.rng.Float64()*(g.cfg.WanderMax-g.cfg.WanderMin)
	return max(1, g.rt.Ticks(time.Duration(secs*float64(time.Second))))
}

// Phase returns the walkabout phase.
func (g *Game) Phase() Phase { return g.machine.State() }

// Dialog returns who is talking and the part of their line shown so far.
func (g *Game) Dialog() (name, shown string, ok bool) {
	if g.talker == nil {
		return "", "", false
	}
	n := min(int(g.shown), len(g.text))
	return g.talker.name, string(g.text[:n]), true
}

// Met returns how many coworkers the player has talked to, out of how many.
func (g *Game) Met() (int, int) { return g.met, len(g.cast) }

func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.gameOver, Won: g.won}
}

func init() {
	registry.Register("office", func() registry.Game { return New() })
}
