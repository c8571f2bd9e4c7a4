package glyph

import (
	"math"
	"testing"
)

var iconSizes = []int{16, 32, 48, 128}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPadding(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{16, 1},
		{32, 3},
		{48, 4},
		{128, 12},
		{9, 0},
	}
	for _, tt := range tests {
		if got := Padding(tt.size); got != tt.want {
			t.Errorf("Padding(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestDiscSymmetric(t *testing.T) {
	for _, size := range iconSizes {
		g := For(size)
		p := float64(size / 10)
		if g.Disc.X0 != p || g.Disc.Y0 != p {
			t.Errorf("size %d: disc min = (%v,%v), want (%v,%v)", size, g.Disc.X0, g.Disc.Y0, p, p)
		}
		c := g.Disc.Center()
		half := float64(size) / 2
		if c.X != half || c.Y != half {
			t.Errorf("size %d: disc center = %+v, want (%v,%v)", size, c, half, half)
		}
		if g.Disc.Dx() != g.Disc.Dy() {
			t.Errorf("size %d: disc box is not square: %+v", size, g.Disc)
		}
	}
}

func TestSpeakerScalesLinearly(t *testing.T) {
	pairs := [][2]int{{16, 32}, {24, 48}, {64, 128}}
	for _, p := range pairs {
		small, big := For(p[0]), For(p[1])
		cs, cb := float64(p[0])/2, float64(p[1])/2
		for i := range small.Speaker {
			dx := small.Speaker[i].X - cs
			dy := small.Speaker[i].Y - cs
			bx := big.Speaker[i].X - cb
			by := big.Speaker[i].Y - cb
			if !approx(2*dx, bx) || !approx(2*dy, by) {
				t.Errorf("%d->%d vertex %d: offsets (%v,%v) vs (%v,%v)", p[0], p[1], i, dx, dy, bx, by)
			}
		}
	}
}

func TestSpeakerAtBaseSize(t *testing.T) {
	g := For(BaseSize)
	want := [4]Point{{18, 16}, {18, 32}, {26, 36}, {26, 12}}
	for i := range want {
		if !approx(g.Speaker[i].X, want[i].X) || !approx(g.Speaker[i].Y, want[i].Y) {
			t.Errorf("vertex %d = %+v, want %+v", i, g.Speaker[i], want[i])
		}
	}
}

func TestWavesAtBaseSize(t *testing.T) {
	g := For(BaseSize)
	want := [2]Rect{
		{26, 16, 34, 32},
		{30, 18, 38, 30},
	}
	for i, w := range want {
		a := g.Waves[i]
		if a.Box != w {
			t.Errorf("wave %d box = %+v, want %+v", i, a.Box, w)
		}
		if a.Start != -60 || a.End != 60 {
			t.Errorf("wave %d angles = %v..%v, want -60..60", i, a.Start, a.End)
		}
		if a.Width != 2 {
			t.Errorf("wave %d width = %v, want 2", i, a.Width)
		}
	}
}

func TestStrokeWidthFloor(t *testing.T) {
	for _, size := range []int{1, 4, 8, 16, 32, 48, 128} {
		g := For(size)
		for i, a := range g.Waves {
			if a.Width < 1 {
				t.Errorf("size %d wave %d: width %v < 1", size, i, a.Width)
			}
		}
	}
	if got := For(16).Waves[0].Width; got != 1 {
		t.Errorf("size 16 width = %v, want 1", got)
	}
	if got := For(128).Waves[0].Width; got != 5 {
		t.Errorf("size 128 width = %v, want 5", got)
	}
}

func TestArcPointsDirection(t *testing.T) {
	a := For(BaseSize).Waves[0]
	pts := a.Points(12)
	if len(pts) != 13 {
		t.Fatalf("got %d points, want 13", len(pts))
	}
	c, rx, _ := a.Centerline()
	first, mid, last := pts[0], pts[6], pts[12]
	if first.Y >= c.Y {
		t.Errorf("start point %+v should be above center %v", first, c.Y)
	}
	if last.Y <= c.Y {
		t.Errorf("end point %+v should be below center %v", last, c.Y)
	}
	if !approx(mid.X, c.X+rx) || !approx(mid.Y, c.Y) {
		t.Errorf("mid point %+v, want (%v,%v)", mid, c.X+rx, c.Y)
	}
}

func TestArcStaysInsideBox(t *testing.T) {
	for _, size := range iconSizes {
		for i, a := range For(size).Waves {
			for _, p := range a.Outline(24) {
				if p.X > a.Box.X1+1e-9 || p.Y < a.Box.Y0-1e-9 || p.Y > a.Box.Y1+1e-9 {
					t.Errorf("size %d wave %d: outline point %+v outside %+v", size, i, p, a.Box)
				}
			}
		}
	}
}

func TestOutlineClosesBack(t *testing.T) {
	a := For(BaseSize).Waves[1]
	pts := a.Outline(8)
	if len(pts) != 18 {
		t.Fatalf("got %d outline points, want 18", len(pts))
	}
	c, rx, _ := a.Centerline()
	// last point lies on the inner edge at the start angle
	last := pts[len(pts)-1]
	inner := rx - a.Width/2
	want := c.X + inner*math.Cos(-60*math.Pi/180)
	if !approx(last.X, want) {
		t.Errorf("last outline x = %v, want %v", last.X, want)
	}
}
