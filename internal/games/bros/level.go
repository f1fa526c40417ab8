package bros

import (
	"math/rand"

	"github.com/vovakirdan/loop-arcade/internal/actor"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
)

// Level geometry in pixels, y up.
const (
	LevelW  = 800.0
	LevelH  = 480.0
	GroundY = 32.0

	pitLeft  = 352.0
	pitRight = 416.0

	// KillY is how far below the ground an actor may fall before it is gone.
	KillY = -64.0
)

var (
	playerSize = physics.Vec{X: 24, Y: 38}
	goombaSize = physics.Vec{X: 24, Y: 24}
	coinSize   = 16.0
	spawnPoint = physics.Vec{X: 100, Y: GroundY}
)

type block struct {
	box   physics.Box
	glyph rune
	color core.Color
}

// levelBlocks returns the static geometry: two ground slabs around a pit,
// floating ledges, two pipes and two brick rows. The ledge over the pit is
// high enough to walk under.
func levelBlocks() []block {
	ground := func(x0, x1 float64) block {
		return block{physics.Rect2(x0, 0, x1-x0, GroundY), '▀', core.ColorOrange}
	}
	ledge := func(cx, top float64) block {
		return block{physics.Rect2(cx-48, top-16, 96, 16), '=', core.ColorGreen}
	}
	pipe := func(cx float64) block {
		return block{physics.Rect2(cx-16, GroundY, 32, 64), '█', core.ColorBrightGreen}
	}
	bricks := func(left, top float64, n int) block {
		return block{physics.Rect2(left, top-32, float64(n)*32, 32), '#', core.ColorRed}
	}

	return []block{
		ground(0, pitLeft),
		ground(pitRight, LevelW),
		ledge(400, 120),
		ledge(600, 130),
		ledge(50, 230),
		ledge(550, 280),
		ledge(300, 180),
		pipe(500),
		pipe(200),
		bricks(84, 162, 5),
		bricks(384, 262, 3),
	}
}

type coin struct {
	box   physics.Box
	taken bool
}

// placeCoins spreads n coins 50px apart at random heights.
func placeCoins(rng *rand.Rand, n int) []coin {
	coins := make([]coin, n)
	for i := range coins {
		x := 12 + 50*float64(i)
		y := 48 + rng.Float64()*212
		coins[i] = coin{box: physics.Rect2(x-coinSize/2, y, coinSize, coinSize)}
	}
	return coins
}

// spawnGoombas drops n walkers on solid ground, each heading a random way.
func spawnGoombas(rng *rand.Rand, n int, speed float64) []*actor.NPC {
	out := make([]*actor.NPC, 0, n)
	for len(out) < n {
		x := 100 + rng.Float64()*600
		if x > pitLeft-goombaSize.X && x < pitRight+goombaSize.X {
			continue
		}
		g := actor.NewNPC(physics.Vec{X: x, Y: GroundY}, goombaSize, actor.AxisX, LevelW-goombaSize.X-2, speed)
		g.Origin.X = LevelW / 2
		g.Glyph = 'G'
		if rng.Intn(2) == 0 {
			g.Dir = -1
		}
		out = append(out, g)
	}
	return out
}
