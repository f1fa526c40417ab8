package invaders

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

func (g *Game) viewport(dst *core.Screen) core.Viewport {
	bottom, top := g.field()
	left := -g.cfg.EdgeX - 2
	return core.Viewport{
		OriginX: left,
		OriginY: bottom,
		Scale:   -2 * left / float64(dst.Width()),
		ScaleY:  (top - bottom) / float64(max(1, dst.Height()-1)),
		Height:  dst.Height(),
	}
}

// Render draws the formation, shields, bullets and HUD.
func (g *Game) Render(dst *core.Screen) {
	vp := g.viewport(dst)

	for _, sh := range g.shields {
		for _, s := range sh.Segments {
			if s.Health <= 0 {
				continue
			}
			x, y := vp.Cell(s.Pos.X, s.Pos.Y)
			dst.SetColor(x, y, shieldGlyph(s.Health, g.cfg.Shields.Health), core.ColorGreen)
		}
	}

	for _, a := range g.formation.Aliens {
		if !a.Alive {
			continue
		}
		x, y := vp.Cell(a.Pos.X, a.Pos.Y)
		dst.SetColor(x, y, rowGlyphs[a.Row%len(rowGlyphs)], rowColors[a.Row%len(rowColors)])
	}

	for _, p := range g.particles {
		x, y := vp.Cell(p.Pos.X, p.Pos.Y)
		dst.SetColor(x, y, '.', core.ColorOrange)
	}
	for _, b := range g.shots {
		if b.Alive() {
			x, y := vp.Cell(b.Pos.X, b.Pos.Y)
			dst.SetColor(x, y, '|', core.ColorBrightCyan)
		}
	}
	for _, b := range g.bombs {
		if b.Alive() {
			x, y := vp.Cell(b.Pos.X, b.Pos.Y)
			dst.SetColor(x, y, '!', core.ColorBrightRed)
		}
	}

	// Blink while waiting to respawn.
	if !g.down || g.tick/8%2 == 0 {
		x, y := vp.Cell(g.playerX, g.cfg.PlayerY)
		dst.SetColor(x, y, 'A', core.ColorBrightWhite)
	}

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Lives: %s", g.score, strings.Repeat("♥", g.lives)))

	switch {
	case g.won:
		dst.DrawMessage("VICTORY!", fmt.Sprintf("Score: %d  |  Press R to play again", g.score))
	case g.gameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to try again", g.score))
	}
}

func shieldGlyph(health, full int) rune {
	switch {
	case health*3 > full*2:
		return '█'
	case health*3 > full:
		return '▓'
	default:
		return '░'
	}
}
