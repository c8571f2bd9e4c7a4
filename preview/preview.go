//go:build gui

// Package preview shows freshly written icons side by side in a window.
package preview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// tileSize is the on-screen edge of every preview tile; small icons are
// magnified with nearest-neighbour scaling so individual pixels show.
const tileSize = 128

type Item struct {
	Size int
	Path string
}

// Run blocks until the preview window is closed.
func Run(items []Item) error {
	if len(items) == 0 {
		return errors.New("no icons to preview")
	}

	a := app.NewWithID("io.ttsicons.preview")
	a.Settings().SetTheme(backdropTheme{})

	largest := items[len(items)-1]
	if data, err := os.ReadFile(largest.Path); err == nil {
		a.SetIcon(fyne.NewStaticResource(filepath.Base(largest.Path), data))
	}

	tiles := make([]fyne.CanvasObject, 0, len(items))
	for _, it := range items {
		img := canvas.NewImageFromFile(it.Path)
		img.FillMode = canvas.ImageFillContain
		img.ScaleMode = canvas.ImageScalePixels
		img.SetMinSize(fyne.NewSize(tileSize, tileSize))

		label := widget.NewLabel(fmt.Sprintf("%dx%d", it.Size, it.Size))
		label.Alignment = fyne.TextAlignCenter
		tiles = append(tiles, container.NewVBox(img, label))
	}

	w := a.NewWindow("ttsicons preview")
	w.SetContent(container.NewPadded(container.NewHBox(tiles...)))
	w.SetFixedSize(true)
	w.ShowAndRun()
	return nil
}
