package climb

import (
	"github.com/vovakirdan/loop-arcade/internal/actor"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
)

// Courtyard is the square of solid ground around the origin. Beyond its
// far edge the course continues over open air.
const (
	CourtyardHalf = 25.0
	CourseEnd     = -60.0
)

var (
	playerSize = physics.Vec{X: 0.8, Y: 1.6, Z: 0.8}
	npcSize    = physics.Vec{X: 0.8, Y: 0.8, Z: 0.8}
	spawnPoint = physics.Vec{X: 0, Y: 0, Z: 20}

	bounds = physics.Box{
		Min: physics.Vec{X: -CourtyardHalf, Y: -1000, Z: CourseEnd},
		Max: physics.Vec{X: CourtyardHalf, Y: 1000, Z: CourtyardHalf},
	}
)

type piece struct {
	spec actor.Spec
	goal bool
}

func block(x, top, z, w, d float64) piece {
	return piece{spec: actor.Spec{
		Kind:  actor.KindPlatform,
		Pos:   physics.Vec{X: x, Y: top - 1, Z: z},
		Size:  physics.Vec{X: w, Y: 1, Z: d},
		Color: core.ColorOrange,
	}}
}

func walker(x, y, z float64, axis actor.Axis, span, speed float64) piece {
	return piece{spec: actor.Spec{
		Kind:  actor.KindNPC,
		Pos:   physics.Vec{X: x, Y: y, Z: z},
		Size:  npcSize,
		Axis:  axis,
		Range: span,
		Speed: speed,
	}}
}

// course lists the level: three blocks and three walkers in the courtyard,
// then stepping stones over the drop leading to the goal.
func course(npcSpeed float64) []piece {
	goal := block(0, 5, -53, 5, 5)
	goal.goal = true

	return []piece{
		block(5, 2.5, -5, 5, 5),
		block(-4, 3.5, 0, 3, 3),
		block(0, 4.5, 6, 4, 2),

		block(0, 1, -28, 4, 4),
		block(3, 2, -34, 3, 3),
		block(-2, 3, -40, 3, 3),
		block(2, 4, -46, 3, 3),
		goal,

		walker(-5, 0, -5, actor.AxisX, 6, npcSpeed),
		walker(2, 0, 4, actor.AxisZ, 8, npcSpeed),
		walker(7, 2.5, -5, actor.AxisZ, 4, npcSpeed),
	}
}

// inCourtyard reports whether the ground half-plane is under pos.
func inCourtyard(pos physics.Vec) bool {
	return pos.X >= -CourtyardHalf && pos.X <= CourtyardHalf &&
		pos.Z >= -CourtyardHalf && pos.Z <= CourtyardHalf
}
