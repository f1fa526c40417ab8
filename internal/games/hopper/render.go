package hopper

import (
	"fmt"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

// viewport shows the whole lane across the screen with the player a few
// rows above the bottom edge.
func (g *Game) viewport(dst *core.Screen) core.Viewport {
	span := g.cfg.PlatformWidth + 2*(g.cfg.DriftAmp+2)
	return core.Viewport{
		OriginX: -span / 2,
		OriginY: g.Player().Y - 3,
		Scale:   span / float64(dst.Width()),
		ScaleY:  1,
		Height:  dst.Height(),
	}
}

// Render draws the course from above, the player and the HUD.
func (g *Game) Render(dst *core.Screen) {
	vp := g.viewport(dst)
	g.world.Draw(dst, vp)

	for _, r := range g.rows {
		for _, o := range r.obstacles {
			p := g.obstaclePos(r, o)
			x, y := vp.Cell(p.X, p.Y)
			dst.SetColor(x, y, '▲', core.ColorBrightRed)
		}
	}

	p := g.Player()
	x, y := vp.Cell(p.X, p.Y)
	dst.SetColor(x, y, '@', core.ColorBrightYellow)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	switch g.cause {
	case CauseFell:
		dst.DrawMessage("SPLASH!", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case CauseHit:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}
