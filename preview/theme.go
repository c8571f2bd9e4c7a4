//go:build gui

package preview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// backdropTheme keeps the window dark so the white glyph and the
// transparent corners of each icon stay visible.
type backdropTheme struct{}

func (backdropTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 28, G: 28, B: 32, A: 255}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 210, G: 210, B: 220, A: 255}
	}
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

func (backdropTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (backdropTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (backdropTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
