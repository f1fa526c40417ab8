package fighter

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

const barWidth = 20

func (g *Game) viewport(dst *core.Screen) core.Viewport {
	rows := max(1, dst.Height()-2)
	return core.Viewport{
		Scale:  g.cfg.Arena.Width / float64(dst.Width()),
		ScaleY: g.cfg.Arena.Height / float64(rows),
		Height: dst.Height(),
	}
}

// Render draws the health bars, the timer, both fighters and any banner.
func (g *Game) Render(dst *core.Screen) {
	vp := g.viewport(dst)

	_, floor := vp.Cell(0, floorY)
	dst.DrawHLine(0, floor, dst.Width(), '▀')

	g.drawFighter(dst, vp, g.p1, core.ColorBrightCyan)
	g.drawFighter(dst, vp, g.p2, core.ColorBrightRed)

	dst.DrawTextColor(1, 0, healthBar(g.p1), core.ColorBrightCyan)
	right := healthBar(g.p2)
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightRed)
	dst.DrawTextCentered(0, fmt.Sprintf("%02d", g.timer.Seconds(g.rt.TickRate)))
	dst.DrawTextCentered(1, fmt.Sprintf("Round %d  %d-%d", g.round, g.wins[0], g.wins[1]))

	switch {
	case g.machine.Is(PhaseGameOver):
		dst.DrawMessage(g.banner, fmt.Sprintf("Score: %d  |  Press R for a rematch", g.State().Score))
	case g.banner != "":
		dst.DrawMessage(g.banner, fmt.Sprintf("%s vs %s", g.p1.Spec.Name, g.p2.Spec.Name))
	}
}

func healthBar(f *Fighter) string {
	filled := 0
	if f.MaxHealth > 0 {
		filled = f.Health * barWidth / f.MaxHealth
	}
	return fmt.Sprintf("%s [%s%s] %3d", f.Spec.Name,
		strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled), f.Health)
}

func (g *Game) drawFighter(dst *core.Screen, vp core.Viewport, f *Fighter, color core.Color) {
	b := f.Body()
	x0, y1 := vp.Cell(b.Min.X, b.Min.Y)
	x1, y0 := vp.Cell(b.Max.X, b.Max.Y)
	if y1 > y0 {
		y1--
	}
	if x1 <= x0 {
		x1 = x0 + 1
	}

	glyph := '█'
	if f.Blocking {
		glyph = '▒'
	}
	dst.DrawRectColor(core.NewRect(x0, y0, x1-x0, y1-y0+1), glyph, color)

	eye := x1 - 1
	if !f.FacingRight {
		eye = x0
	}
	dst.SetColor(eye, y0, 'o', core.ColorWhite)

	if f.Attacking() {
		hb, _ := f.Hitbox()
		hx0, hy1 := vp.Cell(hb.Min.X, hb.Min.Y)
		hx1, hy0 := vp.Cell(hb.Max.X, hb.Max.Y)
		mark := map[Attack]rune{AttackPunch: 'P', AttackKick: 'K', AttackSpecial: '*'}[f.attack]
		for y := hy0; y <= max(hy0, hy1-1); y++ {
			for x := hx0; x < max(hx0+1, hx1); x++ {
				if x < x0 || x >= x1 {
					dst.SetColor(x, y, mark, core.ColorYellow)
				}
			}
		}
	}
}
