package render

import (
	"image"
	"image/png"
	"io"

	ico "github.com/sergeymakinen/go-ico"
)

func EncodePNG(w io.Writer, c Canvas) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, c.Image())
}

// EncodeICO bundles every image into a single multi-resolution .ico.
func EncodeICO(w io.Writer, imgs []image.Image) error {
	return ico.EncodeAll(w, imgs)
}
