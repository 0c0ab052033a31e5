package api

import (
	"image"

	"vincit.fi/meme-generator/api/apitype"
)

type ImageDecodedCommand struct {
	RequestId apitype.RequestId
	Name      string
	Image     image.Image
}

type ImageDecodeFailedCommand struct {
	RequestId apitype.RequestId
	Path      string
	Err       error
}

type ImageLoader interface {
	LoadImageScaled(path string, size apitype.Size) (image.Image, error)
}

// ImageRequester decodes images in the background and publishes the result
// to ImageDecoded or ImageDecodeFailed.
type ImageRequester interface {
	Request(path string) apitype.RequestId
	Latest() apitype.RequestId
}
