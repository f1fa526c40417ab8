package physics

import (
	"math"
	"testing"
)

const dt = 1.0 / 60

func TestLandOnPlatformSnapsToTop(t *testing.T) {
	// Falling at -5 with the feet inside a platform whose top is y=2.
	w := World{
		Gravity:   10,
		Platforms: []Box{Rect2(-5, -8, 10, 10)},
	}
	b := Body{Pos: V2(0, 0), Vel: V2(0, -5), Size: V2(1, 2)}

	c := w.Step(&b, dt)

	if b.Pos.Y != 2 {
		t.Errorf("Pos.Y = %v, expected 2", b.Pos.Y)
	}
	if b.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, expected 0", b.Vel.Y)
	}
	if !b.Grounded {
		t.Error("Grounded = false, expected true")
	}
	if !c.Has(Landed) {
		t.Error("contact should report Landed")
	}
}

func TestGroundHalfPlane(t *testing.T) {
	w := World{Gravity: 30, HasGround: true, GroundY: -2}
	b := Body{Pos: V2(0, 3), Size: V2(1, 1)}

	for i := 0; i < 600 && !b.Grounded; i++ {
		w.Step(&b, dt)
		if b.Pos.Y < w.GroundY {
			t.Fatalf("step %d: sank below ground to %v", i, b.Pos.Y)
		}
	}
	if !b.Grounded || b.Pos.Y != -2 {
		t.Fatalf("body should rest on the ground, got y=%v grounded=%v", b.Pos.Y, b.Grounded)
	}

	// Resting stays exact: no sinking, no floating.
	for i := 0; i < 120; i++ {
		w.Step(&b, dt)
		if b.Pos.Y != -2 || !b.Grounded {
			t.Fatalf("rest step %d: y=%v grounded=%v", i, b.Pos.Y, b.Grounded)
		}
	}
}

func TestGroundedIffContact(t *testing.T) {
	ledge := Rect2(-2, -1, 4, 1) // top at y=0, spans x in [-2, 2]
	w := World{Gravity: 20, Platforms: []Box{ledge}}
	b := Body{Pos: V2(0, 0), Size: V2(1, 1), Grounded: true}

	b.Vel.X = 6
	for i := 0; i < 120; i++ {
		w.Step(&b, dt)
		onLedge := b.Pos.Y == 0 && b.Pos.X-0.5 < 2
		if b.Grounded != onLedge {
			t.Fatalf("step %d: grounded=%v but x=%.3f y=%.3f", i, b.Grounded, b.Pos.X, b.Pos.Y)
		}
	}
	if b.Pos.Y >= 0 {
		t.Error("walking off the ledge should fall")
	}
}

func TestJumpLeavesGround(t *testing.T) {
	w := World{Gravity: 20, HasGround: true}
	b := Body{Size: V2(1, 1), Grounded: true}

	b.Vel.Y = 8
	w.Step(&b, dt)
	if b.Grounded {
		t.Error("a rising body is not grounded")
	}
	if b.Pos.Y <= 0 {
		t.Errorf("Pos.Y = %v after jump, expected > 0", b.Pos.Y)
	}
}

func TestHeadHitZeroesVelocity(t *testing.T) {
	w := World{Gravity: 10, Platforms: []Box{Rect2(-5, 1.05, 10, 1)}}
	b := Body{Size: V2(1, 1), Vel: V2(0, 6)}

	c := w.Step(&b, dt)
	if !c.Has(HeadHit) {
		t.Fatal("expected HeadHit")
	}
	if b.Vel.Y != 0 || math.Abs(b.Pos.Y-0.05) > 1e-9 {
		t.Errorf("after bonk y=%v vy=%v, expected y=0.05 vy=0", b.Pos.Y, b.Vel.Y)
	}
}

func TestWallCancelsOnlyOffendingAxis(t *testing.T) {
	wall := Box{Min: Vec{1, 0, -10}, Max: Vec{2, 10, 10}}
	w := World{HasGround: true, Platforms: []Box{wall}}
	b := Body{Pos: Vec{0.45, 0, 0}, Size: Vec{1, 1, 1}, Vel: Vec{6, 0, 3}, Grounded: true}

	c := w.Step(&b, dt)

	if !c.Has(BlockedX) || c.Has(BlockedZ) {
		t.Fatalf("contact = %b, expected only BlockedX", c)
	}
	if b.Pos.X != 0.45 || b.Vel.X != 0 {
		t.Errorf("x should be reverted: x=%v vx=%v", b.Pos.X, b.Vel.X)
	}
	if b.Pos.Z != 3*dt || b.Vel.Z != 3 {
		t.Errorf("z should move freely: z=%v vz=%v", b.Pos.Z, b.Vel.Z)
	}
}

func TestBoundsClampWhateverTheSpeed(t *testing.T) {
	w := World{HasGround: true, Bounds: Rect2(-4, 0, 8, 100)}
	for _, vx := range []float64{1, 100, 1e6, -1e9} {
		b := Body{Size: V2(1, 1), Vel: V2(vx, 0), Grounded: true}
		for i := 0; i < 10; i++ {
			b.Vel.X = vx
			w.Step(&b, dt)
			if b.Pos.X < -3.5 || b.Pos.X > 3.5 {
				t.Fatalf("vx=%v: x=%v escaped bounds", vx, b.Pos.X)
			}
		}
	}
}

func TestHitDistancePolicy(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		want bool
	}{
		{"inside", 0.9, true},
		{"touching", 1.0, true},
		{"outside", 1.1, false},
	}
	for _, tc := range tests {
		if got := Hit(V2(0, 0), V2(tc.d, 0), 0.5, 0.5); got != tc.want {
			t.Errorf("%s: Hit(d=%v) = %v, expected %v", tc.name, tc.d, got, tc.want)
		}
	}
}

func TestBoxOverlaps(t *testing.T) {
	a := BoxAt(Vec{0, 0, 0}, Vec{2, 2, 2})
	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"same", a, true},
		{"touching face", a.Translate(Vec{2, 0, 0}), false},
		{"apart on z", a.Translate(Vec{0, 0, 3}), false},
		{"flat box ignores z", Rect2(-0.5, 0.5, 1, 1), true},
	}
	for _, tc := range tests {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: Overlaps() = %v, expected %v", tc.name, got, tc.want)
		}
	}
}
