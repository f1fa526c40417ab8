package physics

import "math"

// contactEps is how close a body's bottom must be to a surface to count
// as resting on it.
const contactEps = 1e-6

// Body is the moving part of an actor. Pos is the bottom-centre of its box.
type Body struct {
	Pos      Vec
	Vel      Vec
	Size     Vec
	Grounded bool
}

// Box returns the body's current bounding box.
func (b *Body) Box() Box {
	return BoxAt(b.Pos, b.Size)
}

// Contact describes what the body touched during one Step.
type Contact uint8

const (
	Landed   Contact = 1 << iota // came to rest on a platform or the ground this step
	HeadHit                      // rising into a platform's underside
	BlockedX                     // X movement cancelled by a platform
	BlockedZ                     // Z movement cancelled by a platform
)

// Has reports whether c includes flag.
func (c Contact) Has(flag Contact) bool {
	return c&flag != 0
}

// World holds the static collision geometry and constants for a Step.
type World struct {
	Gravity   float64 // downward acceleration, units/s²
	MaxFall   float64 // terminal fall speed; 0 means none
	HasGround bool
	GroundY   float64 // infinite floor half-plane y <= GroundY
	Platforms []Box

	// Bounds clamps X (and Z when Bounds has Z extent). A zero box means unbounded.
	Bounds Box
}

// Step advances b by dt seconds.
//
// Horizontal input is the caller's business: it sets Vel.X/Vel.Z directly
// before calling. The step applies gravity while airborne, integrates Y and
// resolves it against platforms (land when falling, bonk when rising),
// then integrates X and Z independently and cancels only the axis that
// would penetrate. The ground half-plane and the play-field bounds are
// checked last. Grounded is recomputed from contact so it is true exactly
// when the body rests on a surface.
func (w *World) Step(b *Body, dt float64) Contact {
	var c Contact
	wasGrounded := b.Grounded

	if !b.Grounded || b.Vel.Y > 0 {
		b.Vel.Y -= w.Gravity * dt
		if w.MaxFall > 0 && b.Vel.Y < -w.MaxFall {
			b.Vel.Y = -w.MaxFall
		}
	} else if b.Vel.Y < 0 {
		b.Vel.Y = 0
	}

	b.Pos.Y += b.Vel.Y * dt
	if b.Vel.Y <= 0 {
		if top, ok := w.highestOverlap(b.Box()); ok {
			b.Pos.Y = top
			b.Vel.Y = 0
			c |= Landed
		}
	} else if bottom, ok := w.lowestOverlap(b.Box()); ok {
		b.Pos.Y = bottom - b.Size.Y
		b.Vel.Y = 0
		c |= HeadHit
	}

	if b.Vel.X != 0 {
		old := b.Pos.X
		b.Pos.X += b.Vel.X * dt
		if w.overlapsAny(b.Box()) {
			b.Pos.X = old
			b.Vel.X = 0
			c |= BlockedX
		}
	}
	if b.Vel.Z != 0 {
		old := b.Pos.Z
		b.Pos.Z += b.Vel.Z * dt
		if w.overlapsAny(b.Box()) {
			b.Pos.Z = old
			b.Vel.Z = 0
			c |= BlockedZ
		}
	}

	if w.HasGround && b.Pos.Y < w.GroundY {
		b.Pos.Y = w.GroundY
		if b.Vel.Y < 0 {
			b.Vel.Y = 0
		}
		c |= Landed
	}

	w.clamp(b)

	b.Grounded = w.Supported(b)
	if b.Grounded && b.Vel.Y < 0 {
		b.Vel.Y = 0
	}
	if wasGrounded || !b.Grounded {
		c &^= Landed
	}
	return c
}

// Supported reports whether b's bottom rests on the ground or a platform top.
func (w *World) Supported(b *Body) bool {
	if b.Vel.Y > 0 {
		return false
	}
	if w.HasGround && math.Abs(b.Pos.Y-w.GroundY) <= contactEps {
		return true
	}
	box := b.Box()
	probe := Box{
		Min: Vec{box.Min.X, box.Min.Y - 2*contactEps, box.Min.Z},
		Max: Vec{box.Max.X, box.Min.Y, box.Max.Z},
	}
	for _, p := range w.Platforms {
		if math.Abs(p.Max.Y-box.Min.Y) <= contactEps && probe.Overlaps(p) {
			return true
		}
	}
	return false
}

func (w *World) highestOverlap(box Box) (float64, bool) {
	top, found := 0.0, false
	for _, p := range w.Platforms {
		if box.Overlaps(p) && (!found || p.Max.Y > top) {
			top, found = p.Max.Y, true
		}
	}
	return top, found
}

func (w *World) lowestOverlap(box Box) (float64, bool) {
	bottom, found := 0.0, false
	for _, p := range w.Platforms {
		if box.Overlaps(p) && (!found || p.Min.Y < bottom) {
			bottom, found = p.Min.Y, true
		}
	}
	return bottom, found
}

func (w *World) overlapsAny(box Box) bool {
	for _, p := range w.Platforms {
		if box.Overlaps(p) {
			return true
		}
	}
	return false
}

func (w *World) clamp(b *Body) {
	if w.Bounds == (Box{}) {
		return
	}
	half := b.Size.X / 2
	if nx := clampF(b.Pos.X, w.Bounds.Min.X+half, w.Bounds.Max.X-half); nx != b.Pos.X {
		b.Pos.X = nx
		b.Vel.X = 0
	}
	if w.Bounds.flatZ() {
		return
	}
	halfZ := b.Size.Z / 2
	if nz := clampF(b.Pos.Z, w.Bounds.Min.Z+halfZ, w.Bounds.Max.Z-halfZ); nz != b.Pos.Z {
		b.Pos.Z = nz
		b.Vel.Z = 0
	}
}

// ClampX keeps a centre x inside [lo+half, hi-half].
func ClampX(x, half, lo, hi float64) float64 {
	return clampF(x, lo+half, hi-half)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
