package office

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/loop-arcade/internal/actor"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
)

// One screen cell per tile. The map sits under the status line and is
// centred when it fits, otherwise it scrolls to keep the player in view.
const (
	mapTop       = 1
	dialogHeight = 5
)

// view places size tiles into cells cells around focus. It returns the
// first visible tile and the cell it is drawn at.
func view(cells, size, focus int) (first, at int) {
	if size <= cells {
		return 0, (cells - size) / 2
	}
	return core.Clamp(focus-cells/2, 0, size-cells), 0
}

type camera struct {
	col, row int // first visible tile
	x, y     int // screen cell of that tile
}

func (g *Game) camera(dst *core.Screen) camera {
	pc, pr := tileOf(g.player.Pos)
	col, x := view(dst.Width(), cols(), pc)
	row, y := view(dst.Height()-mapTop, rows(), pr)
	return camera{col: col, row: row, x: x, y: y + mapTop}
}

func (c camera) cell(p physics.Vec) (int, int) {
	col, row := tileOf(p)
	return c.x + col - c.col, c.y + row - c.row
}

// Render draws the floor plan, the cast and the player, then the dialog
// box over the bottom rows while someone is talking.
func (g *Game) Render(dst *core.Screen) {
	cam := g.camera(dst)
	for y := cam.y; y < dst.Height(); y++ {
		for x := cam.x; x < dst.Width(); x++ {
			col, row := cam.col+x-cam.x, cam.row+y-cam.y
			if row >= rows() || col >= cols() {
				continue
			}
			switch tileAt(col, row) {
			case '#':
				dst.SetColor(x, y, '█', core.ColorGray)
			case 'D':
				dst.SetColor(x, y, '▄', core.ColorOrange)
			default:
				dst.SetColor(x, y, '.', core.ColorGray)
			}
		}
	}

	for _, a := range g.world.Actors {
		if p, ok := a.(*actor.Placeholder); ok {
			x, y := cam.cell(p.Pos)
			dst.SetColor(x, y, '?', core.ColorMagenta)
		}
	}
	for _, c := range g.cast {
		color := core.ColorBrightCyan
		switch {
		case c == g.talker:
			color = core.ColorBrightYellow
		case c.met:
			color = core.ColorGreen
		}
		x, y := cam.cell(c.npc.Body.Pos)
		dst.SetColor(x, y, c.npc.Glyph, color)
	}
	x, y := cam.cell(g.player.Pos)
	dst.SetColor(x, y, '@', core.ColorBrightGreen)

	met, total := g.Met()
	dst.DrawText(1, 0, fmt.Sprintf("Met: %d/%d  Score: %d", met, total, g.score))

	if name, shown, ok := g.Dialog(); ok {
		g.drawDialog(dst, name, shown)
	}
	if g.won {
		dst.DrawMessage("EVERYONE MET!", fmt.Sprintf("Score: %d  |  Press R to start the day over", g.score))
	}
}

func (g *Game) drawDialog(dst *core.Screen, name, shown string) {
	box := core.NewRect(1, dst.Height()-dialogHeight, dst.Width()-2, dialogHeight)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+2, box.Y, " "+name+" ", core.ColorBrightYellow)

	inner := box.W - 4
	lines := strings.Split(ansi.Wordwrap(shown, inner, ""), "\n")
	for i := 0; i < len(lines) && i < box.H-2; i++ {
		dst.DrawText(box.X+2, box.Y+1+i, lines[i])
	}
	if g.machine.Is(PhaseReading) {
		dst.SetColor(box.Right()-3, box.Bottom()-1, '▼', core.ColorBrightYellow)
	}
}
