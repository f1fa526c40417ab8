package typing

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

const (
	laneWidth = 5
	laneGap   = 2
)

// Render draws the lanes, the falling letters, the hit line with each
// lane's key and the score panel.
func (g *Game) Render(dst *core.Screen) {
	n := len(g.lanes)
	total := n*laneWidth + (n-1)*laneGap
	left := (dst.Width() - total) / 2
	top, hitRow := 2, dst.Height()-3
	laneX := func(i int) int { return left + i*(laneWidth+laneGap) }

	for i := range g.lanes {
		x := laneX(i)
		dst.DrawVLine(x-1, top, hitRow-top, '│')
		dst.DrawVLine(x+laneWidth, top, hitRow-top, '│')
	}
	dst.DrawHLine(left-1, hitRow, total+2, '═')

	for _, l := range g.letters {
		y := top + int(l.Pos/trackLength*float64(hitRow-top))
		color := core.ColorBrightCyan
		if l.Grade != GradeNone {
			color = l.Grade.Color()
		}
		dst.SetColor(laneX(l.Lane)+laneWidth/2, y, g.lanes[l.Lane], color)
	}

	for i, r := range g.lanes {
		x := laneX(i)
		dst.SetColor(x+laneWidth/2, hitRow+1, r, core.ColorWhite)
		if grade := g.flash[i]; grade != GradeNone {
			label := strings.ToUpper(grade.String())
			dst.DrawTextColor(x+(laneWidth-len(label))/2, hitRow+2, label, grade.Color())
		}
	}

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Combo: %d  Max: %d  Accuracy: %d%%",
		g.score, g.combo, g.maxCombo, g.tally.Accuracy()))
	mins, secs := g.remaining()
	dst.DrawText(1, 1, fmt.Sprintf("Level: %.1f  Song: %d:%02d", g.difficulty, mins, secs))

	if g.over {
		t := g.tally
		dst.DrawMessage("SONG OVER", fmt.Sprintf("Score: %d  |  %d perfect  %d good  %d ok  %d miss",
			g.score, t.Perfect, t.Good, t.OK, t.Miss))
	}
}

// remaining returns the minutes and seconds left in the song.
func (g *Game) remaining() (int, int) {
	rate := max(1, g.rt.TickRate)
	left := int(g.cfg.SongSeconds) - int(g.tick)/rate
	left = max(0, left)
	return left / 60, left % 60
}
