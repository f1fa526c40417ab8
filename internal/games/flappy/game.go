// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	BodyChar      = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	rt         core.RuntimeConfig

	playerY   float64 // top of the hitbox, screen rows growing down
	playerVel float64
	pipes     *PipeManager
	score     int
	gameOver  bool
	ticks     int
}

// New creates a Flappy game with built-in tunables.
func New() *Game {
	cfg := config.DefaultFlappyConfig()
	return &Game{cfg: cfg, difficulty: config.NewDifficultyManager(cfg.Difficulty)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Controls describes the keys.
func (g *Game) Controls() string {
	return "Space/W: flap"
}

// Configure loads YAML tunables and applies a difficulty preset.
func (g *Game) Configure(path string, preset config.DifficultyPreset) error {
	cfg, err := config.Load(g.ID(), path, config.DefaultFlappyConfig())
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg.Difficulty, preset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	return nil
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	g.playerY = float64(cfg.ScreenH) / 2.0
	g.playerVel = 0
	g.score = 0
	g.gameOver = false
	g.ticks = 0
	g.pipes = NewPipeManager(cfg.Seed, cfg.ScreenW, g.groundY(), &g.cfg, g.difficulty)
}

func (g *Game) groundY() int {
	return g.rt.ScreenH - 1
}

// ScrollSpeed is the current pipe speed in cells per tick: the base speed
// plus one step every few points, scaled by difficulty and capped.
func (g *Game) ScrollSpeed() float64 {
	p := g.cfg.Physics
	speed := p.BaseSpeed
	if p.SpeedEvery > 0 {
		speed += p.SpeedStep * float64(g.score/p.SpeedEvery)
	}
	speed = g.difficulty.Speed(speed, g.score, g.ticks)
	if p.MaxSpeed > 0 && speed > p.MaxSpeed {
		speed = p.MaxSpeed
	}
	return speed
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}
	if g.gameOver {
		res.State = g.State()
		return res
	}
	g.ticks++

	phys := g.cfg.Physics
	if in.JustPressed(core.ActionJump) || in.JustPressed(core.ActionUp) {
		g.playerVel = phys.JumpImpulse
		res.Emit(core.CueJump)
	}

	g.playerVel += phys.Gravity
	if g.playerVel > phys.MaxFallSpeed {
		g.playerVel = phys.MaxFallSpeed
	}
	g.playerY += g.playerVel

	// The ceiling only stops the bird.
	if g.playerY < 0 {
		g.playerY = 0
		g.playerVel = 0
	}

	if passed := g.pipes.Update(g.cfg.Player.X+g.cfg.Player.Width, g.ScrollSpeed(), g.score, g.ticks); passed > 0 {
		g.score += passed
		res.Emit(core.CueCoin)
	}

	ground := float64(g.groundY() - g.cfg.Player.Height)
	if g.playerY >= ground {
		g.playerY = ground
		g.gameOver = true
	}
	if g.pipes.CheckCollision(g.playerRect()) {
		g.gameOver = true
	}
	if g.gameOver {
		res.Emit(core.CueHit)
	}

	res.State = g.State()
	return res
}

// playerRect returns the player's collision rectangle.
func (g *Game) playerRect() core.Rect {
	pl := g.cfg.Player
	return core.NewRect(pl.X, int(g.playerY), pl.Width, pl.Height)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	for _, p := range g.pipes.Pipes() {
		g.drawPipe(dst, p, groundY)
	}

	pl := g.cfg.Player
	y := int(g.playerY)
	for dy := 0; dy < pl.Height; dy++ {
		for dx := 0; dx < pl.Width; dx++ {
			ch := BodyChar
			if dx == pl.Width-1 && dy == 0 {
				ch = PlayerChar
			}
			dst.SetColor(pl.X+dx, y+dy, ch, core.ColorBrightYellow)
		}
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	if g.gameOver {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawPipe renders a single pipe to the screen.
func (g *Game) drawPipe(dst *core.Screen, p Pipe, groundY int) {
	w := g.cfg.Obstacles.PipeWidth
	x0 := p.Left()

	for y := 0; y < p.GapY; y++ {
		for x := 0; x < w; x++ {
			dst.SetColor(x0+x, y, PipeChar, core.ColorGreen)
		}
	}
	if p.GapY > 0 {
		for x := 0; x < w; x++ {
			dst.SetColor(x0+x, p.GapY-1, PipeCapTop, core.ColorBrightGreen)
		}
	}

	bottomY := p.GapY + p.GapHeight
	for y := bottomY; y < groundY; y++ {
		for x := 0; x < w; x++ {
			dst.SetColor(x0+x, y, PipeChar, core.ColorGreen)
		}
	}
	if bottomY < groundY {
		for x := 0; x < w; x++ {
			dst.SetColor(x0+x, bottomY, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
