// Package icon draws the speaker icon at a given size using a render backend.
package icon

import (
	"errors"
	"fmt"

	"ttsicons/glyph"
	"ttsicons/render"
)

// Result is either a drawn canvas or, when the backend could not be
// acquired, an unavailable marker with a nil Canvas.
type Result struct {
	Size    int
	Backend string
	Canvas  render.Canvas
}

func (r Result) Available() bool {
	return r.Canvas != nil
}

// Draw renders the icon for size. An unavailable backend is not an error:
// the caller gets a Result with Available() == false and decides to skip.
func Draw(size int, b render.Backend) (Result, error) {
	res := Result{Size: size, Backend: b.Name()}

	c, err := b.NewCanvas(size)
	if errors.Is(err, render.ErrUnavailable) {
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("icon %d: %w", size, err)
	}

	g := glyph.For(size)
	c.DrawDisc(g.Disc, glyph.Background)
	c.DrawPolygon(g.Speaker[:], glyph.Foreground)
	for _, w := range g.Waves {
		c.DrawArc(w, glyph.Foreground)
	}

	res.Canvas = c
	return res, nil
}
