package physics

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vec
}

// BoxAt builds a box from its bottom-centre point and size. Size.Z of zero
// gives a box that is infinitely thin on Z, which is how 2D games use it.
func BoxAt(bottom, size Vec) Box {
	return Box{
		Min: Vec{bottom.X - size.X/2, bottom.Y, bottom.Z - size.Z/2},
		Max: Vec{bottom.X + size.X/2, bottom.Y + size.Y, bottom.Z + size.Z/2},
	}
}

// Rect2 builds a box on the XY plane from its left, bottom, width and height.
func Rect2(x, y, w, h float64) Box {
	return Box{Min: Vec{x, y, 0}, Max: Vec{x + w, y + h, 0}}
}

// Overlaps reports whether two boxes intersect. Touching faces do not count.
// Boxes with no Z extent are treated as overlapping on Z.
func (b Box) Overlaps(o Box) bool {
	if b.Min.X >= o.Max.X || o.Min.X >= b.Max.X {
		return false
	}
	if b.Min.Y >= o.Max.Y || o.Min.Y >= b.Max.Y {
		return false
	}
	if b.flatZ() || o.flatZ() {
		return true
	}
	return b.Min.Z < o.Max.Z && o.Min.Z < b.Max.Z
}

func (b Box) flatZ() bool {
	return b.Min.Z == b.Max.Z
}

// Contains reports whether p lies inside the box (Z ignored for flat boxes).
func (b Box) Contains(p Vec) bool {
	if p.X < b.Min.X || p.X > b.Max.X || p.Y < b.Min.Y || p.Y > b.Max.Y {
		return false
	}
	return b.flatZ() || (p.Z >= b.Min.Z && p.Z <= b.Max.Z)
}

// Center returns the box centre.
func (b Box) Center() Vec {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extents.
func (b Box) Size() Vec {
	return b.Max.Sub(b.Min)
}

// Translate returns the box moved by d.
func (b Box) Translate(d Vec) Box {
	return Box{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Collide is the AABB collision policy.
func Collide(a, b Box) bool {
	return a.Overlaps(b)
}
