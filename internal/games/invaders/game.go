// Package invaders is the classic fixed shooter: a marching alien
// formation, crumbling shields and a cannon with three lives.
package invaders

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/loop-arcade/internal/actor"
	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
	"github.com/vovakirdan/loop-arcade/internal/registry"
	"github.com/vovakirdan/loop-arcade/internal/sched"
)

// respawnDelay is how long the cannon stays down after a hit.
const respawnDelay = 1200 * time.Millisecond

type event uint8

const evRespawn event = iota

// Game is the shooter state.
type Game struct {
	cfg        config.InvadersConfig
	rt         core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	formation *Formation
	shields   []Shield
	shots     []actor.Projectile // player bullet pool
	bombs     []actor.Projectile // alien bullet pool
	particles []*actor.Projectile
	queue     *sched.Queue[event]

	playerX float64
	lives   int
	down    bool // hit and waiting to respawn

	tick     uint64
	score    int
	gameOver bool
	won      bool
}

// New creates a shooter with built-in tunables.
func New() *Game {
	cfg := config.DefaultInvadersConfig()
	return &Game{cfg: cfg, difficulty: config.NewDifficultyManager(cfg.Difficulty)}
}

func (g *Game) ID() string    { return "invaders" }
func (g *Game) Title() string { return "Invaders" }

func (g *Game) Controls() string {
	return "←/→: move | Space/F: fire"
}

// Configure loads YAML tunables. The preset sets how fast the formation
// starts marching.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.Load(g.ID(), path, config.DefaultInvadersConfig())
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg.Difficulty, preset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	return nil
}

// Reset builds a fresh wave.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.formation = NewFormation(g.cfg, g.difficulty.Speed(g.cfg.BaseMoveSpeed, 0, 0))
	g.shields = buildShields(g.cfg.Shields)
	g.shots = make([]actor.Projectile, g.cfg.BulletPool)
	g.bombs = make([]actor.Projectile, g.cfg.BulletPool)
	g.particles = nil
	g.queue = sched.New[event]()

	g.playerX = 0
	g.lives = g.cfg.Lives
	g.down = false
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.won = false
}

// field returns the vertical band bullets live in.
func (g *Game) field() (bottom, top float64) {
	return g.cfg.PlayerY - 2, g.cfg.TopY + 3
}

func (g *Game) player() physics.Vec {
	return physics.V2(g.playerX, g.cfg.PlayerY)
}

// Step advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}
	if g.gameOver {
		res.State = g.State()
		return res
	}
	g.tick++
	for _, ev := range g.queue.Due(g.tick) {
		if ev.Payload == evRespawn {
			g.down = false
		}
	}

	g.updateParticles()
	g.movePlayer(in, &res)

	if g.formation.Advance() {
		for _, p := range g.formation.Volley(g.rng) {
			fire(g.bombs, p.Add(physics.V2(0, -0.5)), -g.cfg.BulletSpeed, g.bulletLife(), actor.KindNPC)
		}
	}
	if y, ok := g.formation.Lowest(); ok && y <= g.cfg.PlayerY+1 {
		g.gameOver = true
		res.Emit(core.CueKO)
		res.State = g.State()
		return res
	}

	g.moveShots(in, &res)
	g.moveBombs(in, &res)

	if g.formation.Alive() == 0 {
		g.won = true
		g.gameOver = true
		res.Emit(core.CueRoundStart)
	}
	res.State = g.State()
	return res
}

func (g *Game) movePlayer(in core.InputFrame, res *core.StepResult) {
	if g.down {
		return
	}
	g.playerX += in.Axis(core.ActionLeft, core.ActionRight) * g.cfg.PlayerSpeed
	g.playerX = core.ClampF(g.playerX, -g.cfg.EdgeX, g.cfg.EdgeX)

	if in.JustPressed(core.ActionFire) || in.JustPressed(core.ActionJump) {
		if fire(g.shots, g.player().Add(physics.V2(0, 1)), g.cfg.BulletSpeed, g.bulletLife(), actor.KindPlayer) {
			res.Emit(core.CueShoot)
		}
	}
}

// bulletLife is enough ticks to cross the whole field.
func (g *Game) bulletLife() int {
	bottom, top := g.field()
	return int(math.Ceil((top-bottom)/math.Max(g.cfg.BulletSpeed, 1e-3))) + 1
}

// fire takes the first idle bullet from pool. An exhausted pool drops the
// shot.
func fire(pool []actor.Projectile, at physics.Vec, vy float64, life int, owner actor.Kind) bool {
	for i := range pool {
		if !pool[i].Alive() {
			pool[i] = actor.Projectile{Pos: at, Vel: physics.V2(0, vy), Life: life, Owner: owner}
			return true
		}
	}
	return false
}

func (g *Game) inField(p physics.Vec) bool {
	bottom, top := g.field()
	return p.Y >= bottom && p.Y <= top
}

func (g *Game) moveShots(in core.InputFrame, res *core.StepResult) {
	for i := range g.shots {
		b := &g.shots[i]
		if !b.Alive() {
			continue
		}
		b.Update(nil, in, 1)
		if g.hitAlien(b.Pos) {
			b.TakeDamage(1)
			res.Emit(core.CueExplode)
			continue
		}
		if absorb(g.shields, b.Pos, g.cfg.BulletRadius, g.cfg.ShieldRadius) || !g.inField(b.Pos) {
			b.TakeDamage(1)
		}
	}
}

// hitAlien kills the first live alien within reach of p.
func (g *Game) hitAlien(p physics.Vec) bool {
	for i := range g.formation.Aliens {
		a := &g.formation.Aliens[i]
		if a.Alive && physics.Hit(p, a.Pos, g.cfg.BulletRadius, g.cfg.HitRadius) {
			a.Alive = false
			g.score += g.cfg.AlienValue
			g.explode(a.Pos)
			return true
		}
	}
	return false
}

func (g *Game) moveBombs(in core.InputFrame, res *core.StepResult) {
	for i := range g.bombs {
		b := &g.bombs[i]
		if !b.Alive() {
			continue
		}
		b.Update(nil, in, 1)
		if !g.down && physics.Hit(b.Pos, g.player(), g.cfg.BulletRadius, g.cfg.HitRadius) {
			b.TakeDamage(1)
			g.playerHit(res)
			if g.gameOver {
				return
			}
			continue
		}
		if absorb(g.shields, b.Pos, g.cfg.BulletRadius, g.cfg.ShieldRadius) || !g.inField(b.Pos) {
			b.TakeDamage(1)
		}
	}
}

func (g *Game) playerHit(res *core.StepResult) {
	g.lives--
	g.explode(g.player())
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		res.Emit(core.CueKO)
		return
	}
	res.Emit(core.CueHit)
	g.down = true
	g.queue.After(g.tick, g.rt.Ticks(respawnDelay), evRespawn)
}

// explode scatters debris from p.
func (g *Game) explode(p physics.Vec) {
	pc := g.cfg.Particles
	for i := 0; i < pc.PerExplosion; i++ {
		theta := g.rng.Float64() * 2 * math.Pi
		speed := pc.Speed * (0.5 + g.rng.Float64()*0.5)
		g.particles = append(g.particles, &actor.Projectile{
			Pos:  p,
			Vel:  physics.V2(speed*math.Cos(theta), speed*math.Sin(theta)),
			Life: pc.LifeTicks,
		})
	}
}

func (g *Game) updateParticles() {
	live := g.particles[:0]
	for _, p := range g.particles {
		p.Update(nil, core.InputFrame{}, 1)
		p.Vel.Y -= g.cfg.Particles.Gravity
		if p.Alive() {
			live = append(live, p)
		}
	}
	clear(g.particles[len(live):])
	g.particles = live
}

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.gameOver, Won: g.won}
}

func init() {
	registry.Register("invaders", func() registry.Game { return New() })
}
