package render

import (
	"fmt"
	"image"
	"image/color"

	"ttsicons/glyph"
)

// Call is one recorded drawing operation.
type Call struct {
	Op     string // "disc", "polygon" or "arc"
	Box    glyph.Rect
	Points []glyph.Point
	Arc    glyph.Arc
	Color  color.Color
}

// FakeBackend hands out canvases that record calls instead of drawing.
type FakeBackend struct {
	Canvases []*FakeCanvas
}

func NewFake() *FakeBackend { return &FakeBackend{} }

func (f *FakeBackend) Name() string { return "fake" }

func (f *FakeBackend) NewCanvas(size int) (Canvas, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	c := &FakeCanvas{Size: size, img: image.NewRGBA(image.Rect(0, 0, size, size))}
	f.Canvases = append(f.Canvases, c)
	return c, nil
}

type FakeCanvas struct {
	Size  int
	Calls []Call
	img   *image.RGBA
}

func (c *FakeCanvas) DrawDisc(box glyph.Rect, col color.Color) {
	c.Calls = append(c.Calls, Call{Op: "disc", Box: box, Color: col})
}

func (c *FakeCanvas) DrawPolygon(pts []glyph.Point, col color.Color) {
	cp := make([]glyph.Point, len(pts))
	copy(cp, pts)
	c.Calls = append(c.Calls, Call{Op: "polygon", Points: cp, Color: col})
}

func (c *FakeCanvas) DrawArc(a glyph.Arc, col color.Color) {
	c.Calls = append(c.Calls, Call{Op: "arc", Arc: a, Box: a.Box, Color: col})
}

func (c *FakeCanvas) Image() image.Image { return c.img }

func (c *FakeCanvas) Ops() []string {
	ops := make([]string, len(c.Calls))
	for i, call := range c.Calls {
		ops[i] = call.Op
	}
	return ops
}

func (c *FakeCanvas) String() string {
	return fmt.Sprintf("fake canvas %dx%d (%d calls)", c.Size, c.Size, len(c.Calls))
}
