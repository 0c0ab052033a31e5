package imageloader

import (
	"errors"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"vincit.fi/meme-generator/common/logger"
)

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true

	exifUnchangedOrientation = 1
)

// LoadExifOrientation reads the EXIF orientation tag. Files without EXIF
// data are reported as unchanged orientation.
func LoadExifOrientation(path string) (int, error) {
	fileForExif, err := os.Open(path)
	if err != nil {
		return exifUnchangedOrientation, err
	}
	defer fileForExif.Close()

	decodedExif, err := exif.Decode(fileForExif)
	if err != nil {
		if errors.Is(err, io.EOF) || exif.IsCriticalError(err) {
			logger.Trace.Printf("No Exif data in '%s': %s", path, err)
			return exifUnchangedOrientation, nil
		}
		logger.Debug.Printf("Partial Exif data in '%s': %s", path, err)
	}
	if decodedExif == nil {
		return exifUnchangedOrientation, nil
	}

	tag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		logger.Trace.Printf("No orientation in '%s'", path)
		return exifUnchangedOrientation, nil
	}
	orientation, err := tag.Int(0)
	if err != nil {
		logger.Warn.Printf("Could not resolve orientation for '%s': %s", path, err)
		return exifUnchangedOrientation, nil
	}
	return orientation, nil
}

func ExifOrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

func ExifRotateImage(loadedImage image.Image, rotation float64, flipped bool) image.Image {
	if rotation != noRotate {
		loadedImage = imaging.Rotate(loadedImage, rotation, color.Black)
	}
	if flipped {
		return imaging.FlipH(loadedImage)
	}
	return loadedImage
}

func isQuarterTurn(rotation float64) bool {
	return rotation == left90 || rotation == right90
}
