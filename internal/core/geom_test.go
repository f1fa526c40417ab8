package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"touching edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"one cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContainsAndCenter(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if !r.Contains(10, 10) {
		t.Error("top-left cell should be inside")
	}
	if r.Contains(30, 25) {
		t.Error("right/bottom edges are exclusive")
	}
	if cx, cy := r.Center(); cx != 20 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (20, 17)", cx, cy)
	}
}

func TestViewportCell(t *testing.T) {
	v := Viewport{OriginX: -10, OriginY: 0, Scale: 1, Height: 20}

	tests := []struct {
		name   string
		wx, wy float64
		cx, cy int
	}{
		{"origin is bottom-left", -10, 0, 0, 19},
		{"y grows up", -10, 5, 0, 14},
		{"x grows right", 0, 0, 10, 19},
		{"fractions floor", -9.5, 0.5, 0, 19},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := v.Cell(tc.wx, tc.wy)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("Cell(%v, %v) = (%d, %d), expected (%d, %d)", tc.wx, tc.wy, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func TestViewportFollow(t *testing.T) {
	v := Viewport{Scale: 2, Height: 10}
	v.Follow(100, 40, 0, 0)
	if v.OriginX != 60 {
		t.Errorf("OriginX = %v, expected 60", v.OriginX)
	}
	if cx, _ := v.Cell(100, 0); cx != 20 {
		t.Errorf("followed point should be mid-screen, got column %d", cx)
	}

	v.Follow(10, 40, 0, 200)
	if v.OriginX != 0 {
		t.Errorf("left edge: OriginX = %v, expected 0", v.OriginX)
	}
	v.Follow(190, 40, 0, 200)
	if v.OriginX != 120 {
		t.Errorf("right edge: OriginX = %v, expected 120", v.OriginX)
	}
}

func TestViewportRowScale(t *testing.T) {
	v := Viewport{Scale: 1, ScaleY: 2, Height: 10}
	if _, cy := v.Cell(0, 4); cy != 7 {
		t.Errorf("row = %d, expected 7 with two units per row", cy)
	}
	if (Viewport{Scale: 3}).RowScale() != 3 {
		t.Error("zero ScaleY should reuse Scale")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
	if got := ClampF(-5.5, -4, 4); got != -4 {
		t.Errorf("ClampF(-5.5, -4, 4) = %v, expected -4", got)
	}
}
