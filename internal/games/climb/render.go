package climb

import (
	"fmt"
	"math"

	"github.com/vovakirdan/loop-arcade/internal/actor"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
)

// Top-down projection: columns follow X, rows follow -Z so the course
// runs up the screen.
const (
	metresPerCol = 0.5
	metresPerRow = 1.0
)

func (g *Game) viewport(dst *core.Screen) core.Viewport {
	vp := core.Viewport{Scale: metresPerCol, ScaleY: metresPerRow, Height: dst.Height()}
	pos := g.player.Body.Pos
	vp.Follow(pos.X, dst.Width(), -CourtyardHalf, CourtyardHalf)

	span := float64(dst.Height()) * metresPerRow
	lo, hi := -CourtyardHalf, -CourseEnd
	vp.OriginY = core.ClampF(-pos.Z-span/2, lo, math.Max(lo, hi-span))
	return vp
}

// ground maps a cell back to the world point at its centre.
func ground(vp core.Viewport, cx, cy int) physics.Vec {
	x := vp.OriginX + (float64(cx)+0.5)*vp.ColScale()
	wy := vp.OriginY + (float64(vp.Height-1-cy)+0.5)*vp.RowScale()
	return physics.Vec{X: x, Z: -wy}
}

func cellOf(vp core.Viewport, p physics.Vec) (int, int) {
	return vp.Cell(p.X, -p.Z)
}

// Render draws the map from above with platform heights as digits.
func (g *Game) Render(dst *core.Screen) {
	vp := g.viewport(dst)

	for cy := 0; cy < dst.Height(); cy++ {
		for cx := 0; cx < dst.Width(); cx++ {
			if inCourtyard(ground(vp, cx, cy)) {
				dst.SetColor(cx, cy, '.', core.ColorGray)
			}
		}
	}

	for _, a := range g.world.Actors {
		switch a := a.(type) {
		case *actor.Platform:
			drawPlatform(dst, vp, a)
		case *actor.NPC:
			x, y := cellOf(vp, a.Body.Pos)
			dst.SetColor(x, y, 'N', core.ColorBrightRed)
		case *actor.Placeholder:
			x, y := cellOf(vp, a.Pos)
			dst.SetColor(x, y, '?', core.ColorMagenta)
		}
	}

	p := g.player
	x, y := cellOf(vp, p.Body.Pos)
	glyph := '@'
	if p.Crouching {
		glyph = 'o'
	}
	dst.SetColor(x, y, glyph, core.ColorBrightGreen)
	if p.Punching() {
		dst.SetColor(x+int(p.Facing), y, '-', core.ColorYellow)
	}

	dst.DrawText(1, 0, fmt.Sprintf("Lives: %d  Score: %d  Height: %.1fm", g.lives, g.score, p.Body.Pos.Y))

	switch {
	case g.won:
		dst.DrawMessage("GOAL!", fmt.Sprintf("Score: %d  |  Press R to climb again", g.score))
	case g.gameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to try again", g.score))
	}
}

func drawPlatform(dst *core.Screen, vp core.Viewport, p *actor.Platform) {
	x0, y0 := cellOf(vp, physics.Vec{X: p.Box.Min.X, Z: p.Box.Min.Z})
	x1, y1 := cellOf(vp, physics.Vec{X: p.Box.Max.X, Z: p.Box.Max.Z})
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	glyph := rune('0' + core.Clamp(int(math.Round(p.Box.Max.Y)), 0, 9))
	color := p.Color
	if p.Goal {
		glyph, color = '#', core.ColorBrightYellow
	}
	dst.DrawRectColor(core.NewRect(x0, y0, x1-x0, y1-y0), glyph, color)
}
