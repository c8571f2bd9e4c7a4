//go:build !gui

package main

import (
	"errors"

	"ttsicons/batch"
)

func showPreview(batch.Summary) error {
	return errors.New("built without preview support (rebuild with -tags gui)")
}
