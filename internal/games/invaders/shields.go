package invaders

import (
	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/physics"
)

// shieldPitch is the distance between shield centres.
const shieldPitch = 6.0

type segment struct {
	Pos    physics.Vec
	Health int
}

// Shield is one bunker: a grid of segments that crumble one hit at a time.
type Shield struct {
	Segments []segment
}

// buildShields lays out the bunkers evenly around x = 0. The two middle
// segments of each bottom row are left out to form an arch.
func buildShields(cfg config.InvadersShields) []Shield {
	segW := cfg.Width / float64(max(1, cfg.Segments))
	segH := cfg.Height / float64(max(1, cfg.Rows))
	shields := make([]Shield, cfg.Count)
	for i := range shields {
		cx := (float64(i) - float64(cfg.Count-1)/2) * shieldPitch
		for row := 0; row < cfg.Rows; row++ {
			for col := 0; col < cfg.Segments; col++ {
				if row == 0 && (col == cfg.Segments/2-1 || col == cfg.Segments/2) {
					continue
				}
				shields[i].Segments = append(shields[i].Segments, segment{
					Pos: physics.V2(
						cx+(float64(col)-float64(cfg.Segments)/2+0.5)*segW,
						cfg.Y+(float64(row)-float64(cfg.Rows)/2+0.5)*segH,
					),
					Health: cfg.Health,
				})
			}
		}
	}
	return shields
}

// absorb damages the first standing segment within reach of p and reports
// whether one was hit.
func absorb(shields []Shield, p physics.Vec, radius, segRadius float64) bool {
	for i := range shields {
		for j := range shields[i].Segments {
			s := &shields[i].Segments[j]
			if s.Health > 0 && physics.Hit(p, s.Pos, radius, segRadius) {
				s.Health--
				return true
			}
		}
	}
	return false
}

// standing counts segments with health left.
func standing(shields []Shield) int {
	n := 0
	for _, sh := range shields {
		for _, s := range sh.Segments {
			if s.Health > 0 {
				n++
			}
		}
	}
	return n
}
