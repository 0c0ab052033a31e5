package imageloader

import (
	"fmt"
	"image"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

type Loader struct {
	api.ImageLoader
}

func NewImageLoader() api.ImageLoader {
	return &Loader{}
}

// LoadImageScaled decodes the image so that it is at least the given size
// when the format supports decoding at a lower resolution. Other formats are
// decoded at full size.
func (s *Loader) LoadImageScaled(path string, size apitype.Size) (image.Image, error) {
	return s.load(path, &size)
}

func (s *Loader) load(path string, size *apitype.Size) (image.Image, error) {
	startTime := time.Now()

	orientation, err := LoadExifOrientation(path)
	if err != nil {
		return nil, fmt.Errorf("could not open '%s': %w", path, err)
	}
	rotation, flipped := ExifOrientationToAngleAndFlip(orientation)

	if size != nil && isQuarterTurn(rotation) {
		swapped := apitype.SizeOf(size.Height(), size.Width())
		size = &swapped
	}

	decoded, err := decodeImage(path, size)
	if err != nil {
		return nil, fmt.Errorf("could not decode '%s': %w", path, err)
	}
	if decoded.Bounds().Empty() {
		return nil, fmt.Errorf("could not decode '%s': %w", path, apitype.ErrInvalidImage)
	}

	rotated := ExifRotateImage(decoded, rotation, flipped)

	if logger.IsLogLevel(logger.DEBUG) {
		logger.Debug.Printf("Loaded '%s' (%dx%d, orientation %d) in %s",
			path, rotated.Bounds().Dx(), rotated.Bounds().Dy(), orientation, time.Since(startTime))
	}
	return rotated, nil
}
