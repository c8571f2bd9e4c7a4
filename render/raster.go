//go:build !nodraw

package render

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"ttsicons/glyph"
)

func init() {
	Register(rasterBackend{})
}

type rasterBackend struct{}

func (rasterBackend) Name() string { return "rasterx" }

func (rasterBackend) NewCanvas(size int) (Canvas, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	return &rasterCanvas{
		img:     img,
		filler:  rasterx.NewFiller(size, size, rasterx.NewScannerGV(size, size, img, img.Bounds())),
		stroker: rasterx.NewStroker(size, size, rasterx.NewScannerGV(size, size, img, img.Bounds())),
	}, nil
}

type rasterCanvas struct {
	img     *image.RGBA
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

func (r *rasterCanvas) Image() image.Image { return r.img }

func (r *rasterCanvas) DrawDisc(box glyph.Rect, c color.Color) {
	center := box.Center()
	r.filler.Clear()
	r.filler.SetColor(c)
	rasterx.AddEllipse(center.X, center.Y, box.Dx()/2, box.Dy()/2, 0, r.filler)
	r.filler.Draw()
}

func (r *rasterCanvas) DrawPolygon(pts []glyph.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	r.filler.Clear()
	r.filler.SetColor(c)
	r.filler.Start(toFixed(pts[0]))
	for _, p := range pts[1:] {
		r.filler.Line(toFixed(p))
	}
	r.filler.Stop(true)
	r.filler.Draw()
}

func (r *rasterCanvas) DrawArc(a glyph.Arc, c color.Color) {
	pts := a.Points(arcSteps)
	r.stroker.Clear()
	r.stroker.SetColor(c)
	r.stroker.SetStroke(fixed.Int26_6(a.Width*64), 4<<6, rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round)
	r.stroker.Start(toFixed(pts[0]))
	for _, p := range pts[1:] {
		r.stroker.Line(toFixed(p))
	}
	r.stroker.Stop(false)
	r.stroker.Draw()
}

func toFixed(p glyph.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}
