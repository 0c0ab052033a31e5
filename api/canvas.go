package api

import (
	"image"

	"vincit.fi/meme-generator/api/apitype"
)

type Canvas interface {
	Size() apitype.Size
	DrawImage(image.Image) (apitype.Placement, error)
	DrawCaption(apitype.Caption) error
	Clear()
	Snapshot() *image.RGBA
}
