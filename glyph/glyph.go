// Package glyph computes the speaker icon geometry for a given pixel size.
// Everything here is a pure function of size; nothing touches pixels.
package glyph

import (
	"image/color"
	"math"
)

// BaseSize is the size at which the glyph offsets are specified (scale 1).
const BaseSize = 48

var (
	Background = color.NRGBA{R: 99, G: 102, B: 241, A: 255}
	Foreground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box given by its min and max corners.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func (r Rect) Center() Point {
	return Point{(r.X0 + r.X1) / 2, (r.Y0 + r.Y1) / 2}
}

func (r Rect) Dx() float64 { return r.X1 - r.X0 }
func (r Rect) Dy() float64 { return r.Y1 - r.Y0 }

// Arc is an elliptical stroke inscribed in Box. Angles are in degrees,
// 0 points right and positive angles turn clockwise on screen.
type Arc struct {
	Box        Rect
	Start, End float64
	Width      float64
}

// Centerline returns the ellipse traced by the middle of the stroke.
// The stroke stays inside Box, so the radii shrink by half the width.
func (a Arc) Centerline() (c Point, rx, ry float64) {
	c = a.Box.Center()
	rx = math.Max(a.Box.Dx()/2-a.Width/2, 0)
	ry = math.Max(a.Box.Dy()/2-a.Width/2, 0)
	return c, rx, ry
}

// Points samples the centreline from Start to End inclusive.
func (a Arc) Points(steps int) []Point {
	return a.offset(0, steps)
}

// Outline returns the closed outline of the stroke: the outer edge from
// Start to End followed by the inner edge back from End to Start.
func (a Arc) Outline(steps int) []Point {
	outer := a.offset(a.Width/2, steps)
	inner := a.offset(-a.Width/2, steps)
	pts := make([]Point, 0, len(outer)+len(inner))
	pts = append(pts, outer...)
	for i := len(inner) - 1; i >= 0; i-- {
		pts = append(pts, inner[i])
	}
	return pts
}

func (a Arc) offset(d float64, steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	c, rx, ry := a.Centerline()
	rx = math.Max(rx+d, 0)
	ry = math.Max(ry+d, 0)
	pts := make([]Point, steps+1)
	for i := range pts {
		deg := a.Start + (a.End-a.Start)*float64(i)/float64(steps)
		rad := deg * math.Pi / 180
		pts[i] = Point{c.X + rx*math.Cos(rad), c.Y + ry*math.Sin(rad)}
	}
	return pts
}

type Geometry struct {
	Size    int
	Disc    Rect
	Speaker [4]Point
	Waves   [2]Arc
}

func Padding(size int) int {
	return size / 10
}

func Scale(size int) float64 {
	return float64(size) / BaseSize
}

// StrokeWidth never drops below one pixel.
func StrokeWidth(scale float64) float64 {
	return math.Max(1, math.Round(2*scale))
}

var waveOffsets = [2]float64{6, 10}

// For returns the icon geometry for a size x size canvas.
func For(size int) Geometry {
	p := float64(Padding(size))
	s := float64(size)
	c := s / 2
	k := Scale(size)

	g := Geometry{
		Size: size,
		Disc: Rect{p, p, s - p, s - p},
		Speaker: [4]Point{
			{c - 6*k, c - 8*k},
			{c - 6*k, c + 8*k},
			{c + 2*k, c + 12*k},
			{c + 2*k, c - 12*k},
		},
	}

	width := StrokeWidth(k)
	for i, off := range waveOffsets {
		x := c + off*k
		h := (8 - float64(i)*2) * k
		g.Waves[i] = Arc{
			Box:   Rect{x - 4*k, c - h, x + 4*k, c + h},
			Start: -60,
			End:   60,
			Width: width,
		}
	}
	return g
}
