package invaders

import (
	"math/rand"

	"github.com/vovakirdan/loop-arcade/internal/config"
	"github.com/vovakirdan/loop-arcade/internal/core"
	"github.com/vovakirdan/loop-arcade/internal/physics"
)

// rowColors tints the formation by row, top first.
var rowColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
}

// rowGlyphs gives each row its own silhouette, top first.
var rowGlyphs = []rune{'W', 'M', 'H', 'V', 'O'}

type alien struct {
	Pos   physics.Vec
	Row   int
	Col   int
	Alive bool
}

// Formation is the marching grid of aliens. It moves in discrete steps:
// every tick adds speed to a counter and a step happens once the counter
// reaches the move interval.
type Formation struct {
	Aliens  []alien
	Dir     float64 // +1 right, -1 left
	Speed   float64 // interval credit per tick
	counter float64
	cfg     config.InvadersConfig
}

// NewFormation lays out rows x cols aliens centred on x = 0 with the top
// row at TopY.
func NewFormation(cfg config.InvadersConfig, speed float64) *Formation {
	f := &Formation{Dir: 1, Speed: speed, cfg: cfg}
	f.Aliens = make([]alien, 0, cfg.Rows*cfg.Cols)
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			f.Aliens = append(f.Aliens, alien{
				Pos:   physics.V2((float64(col)-float64(cfg.Cols-1)/2)*cfg.Spacing, cfg.TopY-float64(row)*cfg.Spacing),
				Row:   row,
				Col:   col,
				Alive: true,
			})
		}
	}
	return f
}

// Alive returns the number of aliens still standing.
func (f *Formation) Alive() int {
	n := 0
	for i := range f.Aliens {
		if f.Aliens[i].Alive {
			n++
		}
	}
	return n
}

// Advance adds one tick of credit and reports whether the formation
// stepped. A step either shifts sideways or, when a live alien sits at the
// edge it is heading for, reverses, drops and speeds up.
func (f *Formation) Advance() bool {
	f.counter += f.Speed
	if f.counter < f.cfg.MoveInterval {
		return false
	}
	f.counter = 0

	if f.atEdge() {
		f.Dir = -f.Dir
		f.Speed *= f.cfg.SpeedFactor
		for i := range f.Aliens {
			f.Aliens[i].Pos.Y -= f.cfg.DropDistance
		}
		return true
	}
	for i := range f.Aliens {
		f.Aliens[i].Pos.X += f.cfg.StepSize * f.Dir
	}
	return true
}

func (f *Formation) atEdge() bool {
	for _, a := range f.Aliens {
		if !a.Alive {
			continue
		}
		if (f.Dir > 0 && a.Pos.X >= f.cfg.EdgeX) || (f.Dir < 0 && a.Pos.X <= -f.cfg.EdgeX) {
			return true
		}
	}
	return false
}

// Shooters returns the lowest live alien of each column. The top row is
// never a shooter, so a column whose only survivor is on top stays quiet.
func (f *Formation) Shooters() []*alien {
	lowest := make([]*alien, f.cfg.Cols)
	for i := range f.Aliens {
		a := &f.Aliens[i]
		if !a.Alive || a.Row == 0 {
			continue
		}
		if cur := lowest[a.Col]; cur == nil || a.Row > cur.Row {
			lowest[a.Col] = a
		}
	}
	out := lowest[:0]
	for _, a := range lowest {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

// Volley picks which shooters fire this step.
func (f *Formation) Volley(rng *rand.Rand) []physics.Vec {
	var out []physics.Vec
	for _, a := range f.Shooters() {
		if rng.Float64() < f.cfg.ShootChance {
			out = append(out, a.Pos)
		}
	}
	return out
}

// Lowest returns the lowest y among live aliens.
func (f *Formation) Lowest() (float64, bool) {
	y, ok := 0.0, false
	for _, a := range f.Aliens {
		if a.Alive && (!ok || a.Pos.Y < y) {
			y, ok = a.Pos.Y, true
		}
	}
	return y, ok
}
