//go:build !nodraw

package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"ttsicons/glyph"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

func init() {
	Register(vectorBackend{})
}

type vectorBackend struct{}

func (vectorBackend) Name() string { return "vector" }

func (vectorBackend) NewCanvas(size int) (Canvas, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return &vectorCanvas{
		img: image.NewRGBA(image.Rect(0, 0, size, size)),
		z:   vector.NewRasterizer(size, size),
	}, nil
}

type vectorCanvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func (v *vectorCanvas) Image() image.Image { return v.img }

func (v *vectorCanvas) DrawDisc(box glyph.Rect, c color.Color) {
	ctr := box.Center()
	cx, cy := float32(ctr.X), float32(ctr.Y)
	rx, ry := float32(box.Dx()/2), float32(box.Dy()/2)
	kx, ky := rx*kappa, ry*kappa

	v.reset()
	v.z.MoveTo(cx+rx, cy)
	v.z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	v.z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	v.z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	v.z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	v.z.ClosePath()
	v.fill(c)
}

func (v *vectorCanvas) DrawPolygon(pts []glyph.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	v.reset()
	v.path(pts)
	v.fill(c)
}

func (v *vectorCanvas) DrawArc(a glyph.Arc, c color.Color) {
	v.reset()
	v.path(a.Outline(arcSteps))
	v.fill(c)
}

func (v *vectorCanvas) reset() {
	b := v.img.Bounds()
	v.z.Reset(b.Dx(), b.Dy())
	v.z.DrawOp = draw.Over
}

func (v *vectorCanvas) path(pts []glyph.Point) {
	v.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		v.z.LineTo(float32(p.X), float32(p.Y))
	}
	v.z.ClosePath()
}

func (v *vectorCanvas) fill(c color.Color) {
	v.z.Draw(v.img, v.img.Bounds(), image.NewUniform(c), image.Point{})
}
