package sail

import (
	"fmt"

	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
)

// Local view scale in sea units per column.
const localScale = 2.0

func (g *Game) viewport(dst *core.Screen) core.Viewport {
	w, h := float64(dst.Width()), float64(max(1, dst.Height()))
	if g.view == ViewChart {
		r := g.cfg.WorldRadius
		return core.Viewport{OriginX: -r, OriginY: -r, Scale: 2 * r / w, ScaleY: 2 * r / h, Height: dst.Height()}
	}
	return core.Viewport{
		OriginX: g.pos.X - w*localScale/2,
		OriginY: g.pos.Y - h*localScale,
		Scale:   localScale,
		ScaleY:  2 * localScale,
		Height:  dst.Height(),
	}
}

// Render draws the sea, the islands, the boat, the compass rose and the
// HUD.
func (g *Game) Render(dst *core.Screen) {
	vp := g.viewport(dst)

	for cy := 0; cy < dst.Height(); cy++ {
		for cx := 0; cx < dst.Width(); cx++ {
			p := physics.V2(
				vp.OriginX+(float64(cx)+0.5)*vp.ColScale(),
				vp.OriginY+(float64(dst.Height()-1-cy)+0.5)*vp.RowScale(),
			)
			switch {
			case g.cfg.WorldRadius > 0 && p.Len() > g.cfg.WorldRadius:
				dst.SetColor(cx, cy, '░', core.ColorGray)
			case g.islandAt(p) != nil:
				is := g.islandAt(p)
				color := core.ColorYellow
				if is.Discovered {
					color = core.ColorBrightGreen
				}
				dst.SetColor(cx, cy, '▲', color)
			case (cx+cy+int(g.tick/15))%9 == 0:
				dst.SetColor(cx, cy, '~', core.ColorBlue)
			}
		}
	}

	x, y := vp.Cell(g.pos.X, g.pos.Y)
	dst.SetColor(x, y, boatGlyph(g.Compass()), core.ColorBrightWhite)

	g.drawCompass(dst)
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Islands: %d/%d  Speed: %.1f",
		g.State().Score, g.found, len(g.islands), g.speed))
	if g.message != "" {
		dst.DrawTextCenteredColor(2, g.message, core.ColorBrightYellow)
	}

	if g.won {
		dst.DrawMessage("ALL ISLANDS FOUND!", fmt.Sprintf("Score: %d  |  Press R to sail again", g.State().Score))
	}
}

func (g *Game) islandAt(p physics.Vec) *Island {
	for i := range g.islands {
		if p.Dist(g.islands[i].Pos) < g.islands[i].Radius {
			return &g.islands[i]
		}
	}
	return nil
}

func boatGlyph(dir string) rune {
	switch dir {
	case "E":
		return '>'
	case "S":
		return 'v'
	case "W":
		return '<'
	default:
		return '^'
	}
}

// drawCompass puts a rose in the top-right corner with the current
// heading lit.
func (g *Game) drawCompass(dst *core.Screen) {
	x := dst.Width() - 6
	heading := g.Compass()
	point := func(px, py int, name string) {
		color := core.ColorGray
		if name == heading {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColor(px, py, name, color)
	}
	point(x+2, 1, "N")
	point(x, 2, "W")
	dst.SetColor(x+2, 2, '+', core.ColorWhite)
	point(x+4, 2, "E")
	point(x+2, 3, "S")
}
