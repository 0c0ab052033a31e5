//go:build !linux

package imageloader

import (
	"image"

	"github.com/disintegration/imaging"
	"vincit.fi/meme-generator/api/apitype"
)

func decodeImage(path string, _ *apitype.Size) (image.Image, error) {
	return imaging.Open(path)
}
