package cannon

import (
	"fmt"
	"math"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

// viewRange is how much downrange distance the side view shows.
const viewRange = 80.0

// Render draws a side view looking across the range: downrange runs left
// to right, height runs up.
func (g *Game) Render(dst *core.Screen) {
	scale := viewRange / float64(dst.Width())
	vp := core.Viewport{OriginX: -2, Scale: scale, ScaleY: 2 * scale, Height: dst.Height() - 1}

	_, ground := vp.Cell(0, 0)
	dst.DrawHLine(0, ground, dst.Width(), '▁')

	// Target rings, viewed edge-on.
	t := g.Target()
	for _, ring := range []struct {
		r     float64
		color core.Color
	}{
		{g.cfg.TargetRadius, core.ColorWhite},
		{g.cfg.TargetRadius * 0.6, core.ColorBlue},
		{g.cfg.TargetRadius * 0.2, core.ColorBrightYellow},
	} {
		x, top := vp.Cell(-t.Z, t.Y+ring.r)
		_, bottom := vp.Cell(-t.Z, t.Y-ring.r)
		for y := top; y <= bottom; y++ {
			dst.SetColor(x, y, '█', ring.color)
		}
	}
	px, py := vp.Cell(0, pivot.Y)
	dst.SetColor(px, py, 'C', core.ColorGray)

	switch g.machine.State() {
	case PhaseAiming:
		dir := g.Aim()
		for _, k := range []float64{2, 4} {
			x, y := vp.Cell(-dir.Z*k, pivot.Y+dir.Y*k)
			dst.SetColor(x, y, '·', core.ColorGray)
		}
	case PhaseFiring, PhaseLanded:
		x, y := vp.Cell(-g.ball.Pos.Z, g.ball.Pos.Y)
		dst.SetColor(x, y, 'o', core.ColorBrightWhite)
	}

	dst.DrawText(1, 0, fmt.Sprintf("Shots: %d  Score: %d  Yaw: %+.0f°  Pitch: %+.0f°",
		g.shots, g.total, g.yaw*180/math.Pi, g.pitch*180/math.Pi))

	switch g.machine.State() {
	case PhaseFiring:
		dst.DrawTextCentered(1, fmt.Sprintf("Drift: %+.1fm", g.ball.Pos.X-t.X))
	case PhaseLanded:
		if g.lastHit {
			dst.DrawTextCenteredColor(1, fmt.Sprintf("HIT! +%d", g.last), core.ColorBrightGreen)
		} else {
			dst.DrawTextCenteredColor(1, "MISS", core.ColorBrightRed)
		}
	case PhaseGameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to play again", g.total))
	}
}
