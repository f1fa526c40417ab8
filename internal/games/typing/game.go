// Package typing is a rhythm game: letters fall down six lanes and the
// player types each one as it crosses the hit line.
package typing

import (
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/registry"
	"github.com/vovakirdan/loop-arcade/internal/sched"
)

// linger is how long a judged letter stays on screen.
const linger = time.Second

type eventKind uint8

const (
	evSpawn eventKind = iota
	evHarder
	evFlashOff
	evSongEnd
)

type event struct {
	kind eventKind
	lane int
}

// Letter is one falling note.
type Letter struct {
	Lane   int
	Pos    float64 // 0 at the top, trackLength at the hit line
	Speed  float64 // track units per second
	Grade  Grade   // GradeNone while falling
	judged uint64  // tick of the judgement
}

// Game is the rhythm game state.
type Game struct {
	cfg   config.TypingConfig
	rt    core.RuntimeConfig
	rng   *rand.Rand
	queue *sched.Queue[event]
	tick  uint64

	lanes      []rune
	letters    []*Letter
	difficulty float64
	spawnEvery time.Duration
	flash      []Grade
	flashID    []sched.ID

	tally    Tally
	score    int
	combo    int
	maxCombo int
	over     bool
}

// New creates a rhythm game with built-in tunables.
func New() *Game {
	return &Game{cfg: config.DefaultTypingConfig()}
}

func (g *Game) ID() string    { return "typing" }
func (g *Game) Title() string { return "Type Type Revolution" }

func (g *Game) Controls() string {
	return "Q W E R T Y: hit the letter crossing the line"
}

// Configure loads YAML tunables. Difficulty ramps with time, not presets.
func (g *Game) Configure(path string, _ config.DifficultyPreset) error {
	cfg, err := config.Load(g.ID(), path, config.DefaultTypingConfig())
	if err != nil {
		return err
	}
	if cfg.Lanes == "" {
		cfg.Lanes = config.DefaultTypingConfig().Lanes
	}
	g.cfg = cfg
	return nil
}

// Reset clears the track and schedules the first spawn, the difficulty
// ramp and the end of the song.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.queue = sched.New[event]()
	g.tick = 0

	g.lanes = []rune(strings.ToUpper(g.cfg.Lanes))
	if len(g.lanes) > 6 {
		g.lanes = g.lanes[:6]
	}
	g.letters = nil
	g.difficulty = g.cfg.StartDifficulty
	g.spawnEvery = millis(g.cfg.SpawnMillis)
	g.flash = make([]Grade, len(g.lanes))
	g.flashID = make([]sched.ID, len(g.lanes))

	g.tally = Tally{}
	g.score, g.combo, g.maxCombo = 0, 0, 0
	g.over = false

	g.queue.After(0, g.rt.Ticks(g.spawnEvery), event{kind: evSpawn})
	g.queue.After(0, g.rt.Ticks(seconds(g.cfg.StepSeconds)), event{kind: evHarder})
	g.queue.After(0, g.rt.Ticks(seconds(g.cfg.SongSeconds)), event{kind: evSongEnd})
}

func millis(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func seconds(s float64) time.Duration { return time.Duration(s * float64(time.Second)) }

// Step advances one tick: scheduled events, then key presses, then the
// fall.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}
	if g.over {
		res.State = g.State()
		return res
	}
	g.tick++

	for _, ev := range g.queue.Due(g.tick) {
		switch ev.Payload.kind {
		case evSpawn:
			g.spawn()
			g.queue.After(g.tick, g.rt.Ticks(g.spawnEvery), event{kind: evSpawn})
		case evHarder:
			g.difficulty += g.cfg.DifficultyStep
			g.spawnEvery = max(millis(g.cfg.MinSpawnMillis), g.spawnEvery-millis(g.cfg.SpawnStepMillis))
			g.queue.After(g.tick, g.rt.Ticks(seconds(g.cfg.StepSeconds)), event{kind: evHarder})
		case evFlashOff:
			g.flash[ev.Payload.lane] = GradeNone
		case evSongEnd:
			g.over = true
			g.queue.Clear()
			res.Emit(core.CueRoundStart)
			res.State = g.State()
			return res
		}
	}

	for lane := range g.lanes {
		if in.JustPressed(core.LaneAction(lane)) {
			g.press(lane, &res)
		}
	}
	g.fall(&res)

	res.State = g.State()
	return res
}

func (g *Game) spawn() {
	g.letters = append(g.letters, &Letter{
		Lane:  g.rng.Intn(len(g.lanes)),
		Speed: g.cfg.BaseSpeed + g.difficulty*g.cfg.SpeedPerLevel,
	})
}

// press judges the lowest falling letter in lane. An empty lane just
// clears the lane's feedback.
func (g *Game) press(lane int, res *core.StepResult) {
	var target *Letter
	for _, l := range g.letters {
		if l.Lane == lane && l.Grade == GradeNone && (target == nil || l.Pos > target.Pos) {
			target = l
		}
	}
	if target == nil {
		g.setFlash(lane, GradeNone)
		return
	}

	grade := judge(timingError(target.Pos, target.Speed), g.cfg)
	g.record(target, grade)
	g.setFlash(lane, grade)
	if grade == GradeMiss {
		res.Emit(core.CueMiss)
	} else {
		res.Emit(core.CueHit)
	}
}

// setFlash shows grade under lane and schedules it off, replacing any
// pending clear for the lane.
func (g *Game) setFlash(lane int, grade Grade) {
	g.queue.Cancel(g.flashID[lane])
	g.flash[lane] = grade
	g.flashID[lane] = 0
	if grade != GradeNone {
		g.flashID[lane] = g.queue.After(g.tick, g.rt.Ticks(millis(g.cfg.FlashMillis)), event{kind: evFlashOff, lane: lane})
	}
}

func (g *Game) record(l *Letter, grade Grade) {
	l.Grade = grade
	l.judged = g.tick
	g.tally.add(grade)
	if grade == GradeMiss {
		g.combo = 0
		return
	}
	g.combo++
	g.maxCombo = max(g.maxCombo, g.combo)
	g.score += points(grade, g.combo)
}

// fall moves letters down. A letter reaching the hit line unplayed is a
// miss; judged letters leave after lingering.
func (g *Game) fall(res *core.StepResult) {
	dt := g.rt.Dt()
	keep := g.rt.Ticks(linger)
	live := g.letters[:0]
	for _, l := range g.letters {
		if l.Grade == GradeNone {
			l.Pos += l.Speed * dt
			if l.Pos >= trackLength {
				l.Pos = trackLength
				g.record(l, GradeMiss)
				res.Emit(core.CueMiss)
			}
		}
		if l.Grade != GradeNone && g.tick-l.judged >= uint64(keep) {
			continue
		}
		live = append(live, l)
	}
	clear(g.letters[len(live):])
	g.letters = live
}

// Lanes returns the lane letters, left to right.
func (g *Game) Lanes() []rune { return g.lanes }

// Letters returns the letters on the track.
func (g *Game) Letters() []*Letter { return g.letters }

// Difficulty returns the current difficulty level.
func (g *Game) Difficulty() float64 { return g.difficulty }

// SpawnInterval returns the time between spawns.
func (g *Game) SpawnInterval() time.Duration { return g.spawnEvery }

// Tally returns the judgement counts.
func (g *Game) Tally() Tally { return g.tally }

// Combo returns the current and best combo.
func (g *Game) Combo() (int, int) { return g.combo, g.maxCombo }

func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

func init() {
	registry.Register("typing", func() registry.Game { return New() })
}
