// Package fighter is a one-on-one fighting game: best of three rounds
// against the CPU or a second local player.
package fighter

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
	"github.com/vovakirdan/loop-arcade/internal/registry"
	"github.com/vovakirdan/loop-arcade/internal/round"
	"github.com/vovakirdan/loop-arcade/internal/sched"
)

// Phase is the match state.
type Phase uint8

const (
	PhaseStarting Phase = iota
	PhaseFighting
	PhaseRoundOver
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseStarting:
		return "starting"
	case PhaseFighting:
		return "fighting"
	case PhaseRoundOver:
		return "round_over"
	default:
		return "game_over"
	}
}

type event uint8

const (
	evReady event = iota
	evKO
	evTimeUp
	evNext
	evDecided
)

// step is a delayed phase action.
type step uint8

const (
	stepFightBanner step = iota
	stepBegin
	stepAfterRound
)

// Game is the match state.
type Game struct {
	cfg config.FighterConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	p1, p2  *Fighter
	cpu     *brain
	machine *round.Machine[Phase, event]
	queue   *sched.Queue[step]
	timer   round.Countdown

	tick   uint64
	round  int
	wins   [2]int
	banner string
	res    *core.StepResult
}

// New creates a fighter match with the built-in roster.
func New() *Game {
	return &Game{cfg: config.DefaultFighterConfig()}
}

func (g *Game) ID() string    { return "fighter" }
func (g *Game) Title() string { return "Fighter" }

// TwoPlayer reports whether player two is a person rather than the CPU.
func (g *Game) TwoPlayer() bool { return g.cfg.TwoPlayer }

func (g *Game) Controls() string {
	return "A/D: move | W: jump | S: block | G/H/J: punch/kick/special"
}

// Configure loads the roster and match rules. The preset scales how
// aggressive and quick the CPU is.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.Load(g.ID(), path, config.DefaultFighterConfig())
	if err != nil {
		return err
	}
	for _, name := range []string{cfg.P1, cfg.P2} {
		if _, ok := cfg.Roster[name]; !ok {
			return fmt.Errorf("fighter: unknown fighter %q (roster: %v)", name, rosterNames(cfg.Roster))
		}
	}
	switch preset {
	case config.DifficultyEasy:
		cfg.AI.Aggressiveness *= 0.6
		cfg.AI.DecideEvery = cfg.AI.DecideEvery * 3 / 2
	case config.DifficultyHard:
		cfg.AI.Aggressiveness = math.Min(1, cfg.AI.Aggressiveness*1.4)
		cfg.AI.DecideEvery = max(1, cfg.AI.DecideEvery*2/3)
	}
	g.cfg = cfg
	return nil
}

func rosterNames(r map[string]config.FighterSpec) []string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (g *Game) spec(name string) config.FighterSpec {
	if s, ok := g.cfg.Roster[name]; ok {
		return s
	}
	return config.DefaultFighterConfig().Roster["ninja"]
}

func (g *Game) ticks(seconds float64) int {
	return g.rt.Ticks(time.Duration(seconds * float64(time.Second)))
}

// Reset starts a fresh match at round one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	arena := g.cfg.Arena

	g.p1 = NewFighter(g.spec(g.cfg.P1), arena, 0, true)
	g.p2 = NewFighter(g.spec(g.cfg.P2), arena, 0, false)
	g.cpu = newBrain(g.cfg.AI, g.rng)

	g.machine = round.NewMachine[Phase, event](PhaseStarting).
		Allow(PhaseStarting, evReady, PhaseFighting).
		Allow(PhaseFighting, evKO, PhaseRoundOver).
		Allow(PhaseFighting, evTimeUp, PhaseRoundOver).
		Allow(PhaseRoundOver, evNext, PhaseStarting).
		Allow(PhaseRoundOver, evDecided, PhaseGameOver)
	g.machine.OnEnter = g.enter
	g.queue = sched.New[step]()
	g.timer = round.NewCountdown(g.ticks(g.cfg.Rounds.RoundSeconds))

	g.tick = 0
	g.round = 0
	g.wins = [2]int{}
	g.startRound()
}

// startRound puts both fighters back at their marks and schedules the
// "GET READY" / "FIGHT!" announcements.
func (g *Game) startRound() {
	w := g.cfg.Arena.Width
	g.p1.Reset(w/4-g.p1.Spec.Width/2, true)
	g.p2.Reset(w*3/4-g.p2.Spec.Width/2, false)
	g.round++
	g.banner = "GET READY"
	g.queue.Clear()
	g.timer.Stop()

	ready := g.ticks(g.cfg.Rounds.ReadySeconds)
	g.queue.After(g.tick, ready, stepFightBanner)
	g.queue.After(g.tick, ready+g.ticks(g.cfg.Rounds.FightSeconds), stepBegin)
}

func (g *Game) enter(_, to Phase, e event) {
	switch to {
	case PhaseStarting:
		g.startRound()
	case PhaseFighting:
		g.banner = ""
		g.timer.Restart(g.ticks(g.cfg.Rounds.RoundSeconds))
		g.emit(core.CueRoundStart)
	case PhaseRoundOver:
		g.timer.Stop()
		g.queue.Clear()
		winner := g.roundWinner(e)
		g.wins[winner]++
		if e == evKO {
			g.banner = "K.O.!"
			g.emit(core.CueKO)
		} else {
			g.banner = "TIME UP!"
		}
		g.queue.After(g.tick, g.ticks(g.cfg.Rounds.OverSeconds), stepAfterRound)
	case PhaseGameOver:
		g.queue.Clear()
		if g.wins[0] > g.wins[1] {
			g.banner = g.p1.Spec.Name + " WINS"
		} else {
			g.banner = g.p2.Spec.Name + " WINS"
		}
	}
}

// roundWinner returns 0 for player one, 1 for player two. A KO wins
// outright; on time the healthier fighter wins and a draw goes to player
// one.
func (g *Game) roundWinner(e event) int {
	if e == evKO && g.p1.Health == 0 && g.p2.Health > 0 {
		return 1
	}
	if e == evKO {
		return 0
	}
	if g.p2.Health > g.p1.Health {
		return 1
	}
	return 0
}

func (g *Game) decided() bool {
	need := g.cfg.Rounds.BestOf/2 + 1
	return g.wins[0] >= need || g.wins[1] >= need
}

func (g *Game) emit(c core.Cue) {
	if g.res != nil {
		g.res.Emit(c)
	}
}

// Step advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}
	g.res = &res
	defer func() { g.res = nil }()

	g.tick++
	for _, ev := range g.queue.Due(g.tick) {
		switch ev.Payload {
		case stepFightBanner:
			g.banner = "FIGHT!"
		case stepBegin:
			g.machine.Fire(evReady)
		case stepAfterRound:
			if g.decided() {
				g.machine.Fire(evDecided)
			} else {
				g.machine.Fire(evNext)
			}
		}
	}

	if g.machine.Is(PhaseFighting) {
		g.fight(in)
	}

	res.State = g.State()
	return res
}

func (g *Game) fight(in core.InputFrame) {
	g.p1.Apply(playerOne(in))
	if g.cfg.TwoPlayer {
		g.p2.Apply(playerTwo(in))
	} else {
		g.p2.Apply(g.cpu.Decide(g.p2, g.p1))
	}

	hit1 := g.p1.Update()
	hit2 := g.p2.Update()
	// Both hits resolve against positions before either lands.
	var box1, box2 physics.Box
	var dmg1, dmg2 int
	if hit1 {
		box1, dmg1 = g.p1.Hitbox()
	}
	if hit2 {
		box2, dmg2 = g.p2.Hitbox()
	}
	if hit1 && physics.Collide(box1, g.p2.Body()) {
		g.p2.TakeHit(dmg1, g.p2.Guards(g.p1.Centre()))
		g.emit(core.CueHit)
	}
	if hit2 && physics.Collide(box2, g.p1.Body()) {
		g.p1.TakeHit(dmg2, g.p1.Guards(g.p2.Centre()))
		g.emit(core.CueHit)
	}

	if g.p1.Health == 0 || g.p2.Health == 0 {
		g.machine.Fire(evKO)
		return
	}
	if g.timer.Tick() {
		g.machine.Fire(evTimeUp)
	}
}

func playerOne(in core.InputFrame) Command {
	cmd := Command{
		Dir:   in.Axis(core.ActionLeft, core.ActionRight),
		Jump:  in.JustPressed(core.ActionUp) || in.JustPressed(core.ActionJump),
		Block: in.Has(core.ActionDown) || in.Has(core.ActionBlock),
	}
	switch {
	case in.JustPressed(core.ActionPunch):
		cmd.Attack = AttackPunch
	case in.JustPressed(core.ActionKick):
		cmd.Attack = AttackKick
	case in.JustPressed(core.ActionSpecial):
		cmd.Attack = AttackSpecial
	}
	return cmd
}

func playerTwo(in core.InputFrame) Command {
	cmd := Command{
		Dir:   in.Axis(core.ActionP2Left, core.ActionP2Right),
		Jump:  in.JustPressed(core.ActionP2Up),
		Block: in.Has(core.ActionP2Down) || in.Has(core.ActionP2Block),
	}
	switch {
	case in.JustPressed(core.ActionP2Punch):
		cmd.Attack = AttackPunch
	case in.JustPressed(core.ActionP2Kick):
		cmd.Attack = AttackKick
	case in.JustPressed(core.ActionP2Special):
		cmd.Attack = AttackSpecial
	}
	return cmd
}

// Phase returns the match phase.
func (g *Game) Phase() Phase { return g.machine.State() }

// Banner returns the current announcement, empty while fighting.
func (g *Game) Banner() string { return g.banner }

// Wins returns rounds won by each side.
func (g *Game) Wins() (int, int) { return g.wins[0], g.wins[1] }

// State reports player one's remaining health times rounds won.
func (g *Game) State() core.GameState {
	over := g.machine.Is(PhaseGameOver)
	return core.GameState{
		Score:    g.p1.Health * g.wins[0],
		GameOver: over,
		Won:      over && g.wins[0] > g.wins[1],
	}
}

func init() {
	registry.Register("fighter", func() registry.Game { return New() })
}
