// Package batch renders the icon set and writes it to disk.
package batch

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"ttsicons/icon"
	"ttsicons/log"
	"ttsicons/render"
)

// DefaultSizes is the browser-extension icon set, in output order.
var DefaultSizes = []int{16, 32, 48, 128}

type Config struct {
	Dir     string
	Sizes   []int
	Backend render.Backend
	ICO     bool // also bundle every drawn size into icon.ico
}

func DefaultConfig() Config {
	return Config{
		Dir:     "icons",
		Sizes:   DefaultSizes,
		Backend: render.Lookup(render.DefaultBackend),
	}
}

type Output struct {
	Size int // 0 for the .ico bundle
	Path string
}

type Summary struct {
	Created []Output
	Skipped []int
}

// Reporter receives progress as the batch runs.
type Reporter interface {
	Created(out Output)
	Skipped(size int, backend string)
	Done(s Summary)
	Hint(backend string)
}

func PNGPath(dir string, size int) string {
	return filepath.Join(dir, fmt.Sprintf("icon%d.png", size))
}

// Run draws every size in order. A missing backend skips that size;
// filesystem and encoding errors abort the run.
func Run(cfg Config, rep Reporter) (Summary, error) {
	var sum Summary

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return sum, fmt.Errorf("create output directory: %w", err)
	}
	log.RunStart(cfg.Backend.Name(), cfg.Dir, cfg.Sizes)

	var drawn []image.Image
	for _, size := range cfg.Sizes {
		start := time.Now()
		res, err := icon.Draw(size, cfg.Backend)
		if err != nil {
			return sum, err
		}
		if !res.Available() {
			log.IconSkipped(size, res.Backend)
			sum.Skipped = append(sum.Skipped, size)
			rep.Skipped(size, res.Backend)
			continue
		}

		var buf bytes.Buffer
		if err := render.EncodePNG(&buf, res.Canvas); err != nil {
			return sum, fmt.Errorf("encode icon%d.png: %w", size, err)
		}
		path := PNGPath(cfg.Dir, size)
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return sum, fmt.Errorf("write %s: %w", path, err)
		}
		log.IconWritten(size, path, buf.Len(), time.Since(start))

		out := Output{Size: size, Path: path}
		sum.Created = append(sum.Created, out)
		rep.Created(out)
		drawn = append(drawn, res.Canvas.Image())
	}

	if cfg.ICO && len(drawn) > 0 {
		out, err := writeICO(cfg.Dir, drawn)
		if err != nil {
			return sum, err
		}
		sum.Created = append(sum.Created, out)
		rep.Created(out)
	}

	log.RunEnd(len(sum.Created), len(sum.Skipped))
	rep.Done(sum)
	if len(sum.Skipped) > 0 {
		rep.Hint(cfg.Backend.Name())
	}
	return sum, nil
}

func writeICO(dir string, imgs []image.Image) (Output, error) {
	path := filepath.Join(dir, "icon.ico")
	var buf bytes.Buffer
	if err := render.EncodeICO(&buf, imgs); err != nil {
		return Output{}, fmt.Errorf("encode icon.ico: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return Output{}, fmt.Errorf("write %s: %w", path, err)
	}
	return Output{Path: path}, nil
}
