//go:build gui

package main

import (
	"runtime"

	"ttsicons/batch"
	"ttsicons/preview"
)

func showPreview(sum batch.Summary) error {
	// Fyne/GLFW must own the main OS thread
	runtime.LockOSThread()

	var items []preview.Item
	for _, out := range sum.Created {
		if out.Size == 0 {
			continue
		}
		items = append(items, preview.Item{Size: out.Size, Path: out.Path})
	}
	return preview.Run(items)
}
