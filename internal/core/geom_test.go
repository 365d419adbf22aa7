package core

import "testing"

func TestScreenBoundsContains(t *testing.T) {
	s := NewScreen(12, 22)
	b := s.Bounds()

	points := []struct {
		x, y int
		in   bool
	}{
		{0, 0, true},
		{11, 21, true},
		{12, 0, false},
		{0, 22, false},
		{-1, 5, false},
		{5, -1, false},
	}
	for _, p := range points {
		if got := b.Contains(p.x, p.y); got != p.in {
			t.Errorf("Bounds().Contains(%d, %d) = %v, want %v", p.x, p.y, got, p.in)
		}
	}
}

func TestWellBoxEdges(t *testing.T) {
	// A 10-wide well with a one-cell border on each side.
	well := NewRect(3, 1, 12, 22)
	if well.Right() != 15 || well.Bottom() != 23 {
		t.Fatalf("edges = (%d, %d), want (15, 23)", well.Right(), well.Bottom())
	}
	if !well.Contains(well.Right()-1, well.Bottom()-1) {
		t.Error("last cell inside the box should be contained")
	}
	if well.Contains(well.Right(), well.Y) {
		t.Error("Right() is one past the box")
	}
}

func TestClampCentersLayout(t *testing.T) {
	const layoutW = 40
	for _, tc := range []struct {
		screenW, want int
	}{
		{80, 20},
		{40, 0},
		{30, 0}, // too narrow: pin to the left edge
	} {
		if got := Clamp((tc.screenW-layoutW)/2, 0, tc.screenW); got != tc.want {
			t.Errorf("screen %d: offset = %d, want %d", tc.screenW, got, tc.want)
		}
	}

	if got := Clamp(9, 0, 4); got != 4 {
		t.Errorf("Clamp(9, 0, 4) = %d, want 4", got)
	}
}
