package widget

import (
	"github.com/AllenDang/giu"
	"vincit.fi/meme-generator/api/apitype"
)

// CanvasImageWidget shows the canvas at its own size, centered horizontally.
// When the window is too small the canvas is shrunk to fit.
type CanvasImageWidget struct {
	texture *giu.Texture
	size    apitype.Size
}

func CanvasImage(texture *giu.Texture, size apitype.Size) *CanvasImageWidget {
	return &CanvasImageWidget{
		texture: texture,
		size:    size,
	}
}

func (s *CanvasImageWidget) Build() {
	maxW, maxH := giu.GetAvailableRegion()
	if maxW <= 0 || maxH <= 0 {
		return
	}

	newW := float32(s.size.Width())
	newH := float32(s.size.Height())
	if newW > maxW || newH > maxH {
		placement := apitype.FitInside(float64(maxW), float64(maxH), float64(newW), float64(newH))
		newW = float32(placement.Width)
		newH = float32(placement.Height)
	}

	offsetW := (maxW - newW) / 2.0

	var content giu.Widget
	if s.texture == nil {
		content = giu.Dummy(newW, newH)
	} else {
		content = giu.Image(s.texture).Size(newW, newH)
	}

	giu.Row(giu.Dummy(offsetW, newH), content).Build()
}
