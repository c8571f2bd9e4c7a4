// Package render holds the drawing capability the icon pipeline depends on.
// Concrete backends register themselves by name; a backend that was not
// compiled in is still returned by Lookup but reports ErrUnavailable.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
	"sync"

	"ttsicons/glyph"
)

// DefaultBackend is used when no backend is requested.
const DefaultBackend = "rasterx"

// arcSteps is the number of line segments used to flatten one arc.
const arcSteps = 48

var ErrUnavailable = errors.New("drawing backend unavailable")

// Canvas is a size x size RGBA surface, transparent when created.
type Canvas interface {
	DrawDisc(box glyph.Rect, c color.Color)
	DrawPolygon(pts []glyph.Point, c color.Color)
	DrawArc(a glyph.Arc, c color.Color)
	Image() image.Image
}

type Backend interface {
	Name() string
	NewCanvas(size int) (Canvas, error)
}

var (
	backendsMu sync.Mutex
	backends   = map[string]Backend{}
)

// Register makes b available to Lookup. Registering a name twice panics.
func Register(b Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if _, dup := backends[b.Name()]; dup {
		panic("render: Register called twice for backend " + b.Name())
	}
	backends[b.Name()] = b
}

// Lookup never returns nil: unknown names resolve to Unavailable(name).
func Lookup(name string) Backend {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if b, ok := backends[name]; ok {
		return b
	}
	return Unavailable(name)
}

func Names() []string {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	names := make([]string, 0, len(backends))
	for n := range backends {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type unavailable struct {
	name string
}

// Unavailable returns a backend whose canvases can never be created.
func Unavailable(name string) Backend {
	return unavailable{name: name}
}

func (u unavailable) Name() string { return u.name }

func (u unavailable) NewCanvas(int) (Canvas, error) {
	return nil, fmt.Errorf("%s: %w", u.name, ErrUnavailable)
}

func checkSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("invalid canvas size %d", size)
	}
	return nil
}
