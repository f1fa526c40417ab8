package racer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

const (
	nearAhead  = 100.0 // road distance shown on the bottom row
	segmentLen = 100.0 // rumble strip length
)

// projector maps road points onto the screen with a simple perspective:
// a row p lines below the horizon shows the road nearAhead*rows/p ahead.
type projector struct {
	w, h, horizon int
	camX          float64
	unit          float64 // columns per road unit on the bottom row
}

func (g *Game) projector(dst *core.Screen) projector {
	return projector{
		w:       dst.Width(),
		h:       dst.Height(),
		horizon: dst.Height() / 3,
		camX:    g.x / 2,
		unit:    0.9 * float64(dst.Width()) / g.cfg.RoadWidth,
	}
}

// rowScale is the perspective scale of screen row y, 1 on the bottom row.
func (p projector) rowScale(y int) float64 {
	return float64(y-p.horizon) / float64(p.h-1-p.horizon)
}

func (p projector) col(x, scale float64) int {
	return p.w/2 + int(math.Round((x-p.camX)*p.unit*scale))
}

// row returns the screen row showing the road ahead units in front of the
// camera, or false when it is beyond the horizon or behind the camera.
func (p projector) row(ahead float64) (int, bool) {
	if ahead < nearAhead {
		return 0, false
	}
	scale := nearAhead / ahead
	y := p.horizon + int(math.Round(scale*float64(p.h-1-p.horizon)))
	return y, y > p.horizon
}

// Render draws the sunset, the grid, the road, the pylons and the car.
func (g *Game) Render(dst *core.Screen) {
	p := g.projector(dst)
	g.drawSky(dst, p)

	half := g.cfg.RoadWidth / 2
	for y := p.horizon + 1; y < p.h; y++ {
		scale := p.rowScale(y)
		ahead := g.distance + nearAhead/scale
		left, right := p.col(-half, scale), p.col(half, scale)

		for x := 0; x < p.w; x++ {
			if x < left || x > right {
				if (x+int(ahead/50))%6 == 0 {
					dst.SetColor(x, y, '·', core.ColorMagenta)
				}
			}
		}
		stripe := int(ahead/segmentLen)%3 == 0
		rumble := core.ColorBrightWhite
		if stripe {
			rumble = core.ColorBrightRed
		}
		dst.SetColor(left, y, '▌', rumble)
		dst.SetColor(right, y, '▐', rumble)
		if int(ahead/(2*segmentLen))%2 == 0 {
			dst.SetColor(p.col(0, scale), y, '¦', core.ColorYellow)
		}
	}

	for _, py := range g.pylons {
		if y, ok := p.row(py.Y - g.distance + nearAhead); ok {
			dst.SetColor(p.col(py.X, p.rowScale(y)), y, 'A', core.ColorBrightMagenta)
		}
	}

	cx := p.col(g.x, 1)
	dst.DrawTextColor(cx-1, p.h-2, "▄█▄", core.ColorBrightCyan)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Speed: %d mph", g.score(), int(g.speed)))

	switch g.Phase() {
	case PhaseReady:
		dst.DrawTextCenteredColor(p.horizon/2+1, "Press Up to drive", core.ColorBrightCyan)
	case PhaseCrashed:
		dst.DrawMessage("CRASHED!", fmt.Sprintf("Score: %d  |  Press R to drive again", g.score()))
	}
}

// drawSky paints a striped sun sitting on the horizon.
func (g *Game) drawSky(dst *core.Screen, p projector) {
	radius := p.horizon - 1
	for y := 1; y <= p.horizon; y++ {
		dy := float64(p.horizon - y)
		if dy > float64(radius) || (p.horizon-y)%2 == 1 && y > p.horizon/2 {
			continue
		}
		span := int(2 * math.Sqrt(float64(radius*radius)-dy*dy))
		color := core.ColorOrange
		if y > p.horizon/2 {
			color = core.ColorBrightRed
		}
		for x := p.w/2 - span; x <= p.w/2+span; x++ {
			dst.SetColor(x, y, '█', color)
		}
	}
	dst.DrawHLine(0, p.horizon, p.w, '─')
}
