package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"ttsicons/glyph"
)

func TestLookupUnknownIsUnavailable(t *testing.T) {
	b := Lookup("no-such-backend")
	if b == nil {
		t.Fatal("Lookup returned nil")
	}
	if b.Name() != "no-such-backend" {
		t.Errorf("Name() = %q, want no-such-backend", b.Name())
	}
	c, err := b.NewCanvas(16)
	if c != nil {
		t.Error("expected nil canvas")
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate Register")
		}
	}()
	Register(Unavailable("dup-test"))
	Register(Unavailable("dup-test"))
}

func TestFakeRecordsCalls(t *testing.T) {
	f := NewFake()
	c, err := f.NewCanvas(32)
	if err != nil {
		t.Fatal(err)
	}
	g := glyph.For(32)
	c.DrawDisc(g.Disc, glyph.Background)
	c.DrawPolygon(g.Speaker[:], color.White)
	c.DrawArc(g.Waves[0], color.White)

	fc := f.Canvases[0]
	want := []string{"disc", "polygon", "arc"}
	got := fc.Ops()
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, got[i], want[i])
		}
	}
	if fc.Calls[0].Box != g.Disc {
		t.Errorf("disc box = %+v, want %+v", fc.Calls[0].Box, g.Disc)
	}
	if len(fc.Calls[1].Points) != 4 {
		t.Errorf("polygon has %d points, want 4", len(fc.Calls[1].Points))
	}
}

func TestFakeRejectsBadSize(t *testing.T) {
	_, err := NewFake().NewCanvas(0)
	if err == nil {
		t.Fatal("expected error for size 0")
	}
	if errors.Is(err, ErrUnavailable) {
		t.Error("bad size must not look like an unavailable backend")
	}
}

func TestEncodePNGDimensions(t *testing.T) {
	c, err := NewFake().NewCanvas(48)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, c); err != nil {
		t.Fatal(err)
	}
	cfg, format, err := image.DecodeConfig(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if cfg.Width != 48 || cfg.Height != 48 {
		t.Errorf("decoded %dx%d, want 48x48", cfg.Width, cfg.Height)
	}
}

func TestEncodeICO(t *testing.T) {
	var imgs []image.Image
	for _, size := range []int{16, 32} {
		imgs = append(imgs, image.NewRGBA(image.Rect(0, 0, size, size)))
	}
	var buf bytes.Buffer
	if err := EncodeICO(&buf, imgs); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	// ICONDIR: reserved 0, type 1, count 2
	if len(b) < 6 || b[0] != 0 || b[1] != 0 || b[2] != 1 || b[4] != 2 {
		t.Errorf("unexpected ICO header % x", b[:min(len(b), 6)])
	}
}
