package apitype

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var ErrInvalidImage = errors.New("invalid image")

// Placement is the area inside the destination where the source image is drawn.
// StartX and StartY are the top left corner of the drawn image.
type Placement struct {
	Width  float64
	Height float64
	StartX float64
	StartY float64
}

// Fit computes the placement of the source image on the destination.
//
// Portrait sources (aspect ratio below 1) use the full destination height and
// are centered horizontally. Landscape and square sources use the full
// destination width and are centered vertically. On a non-square destination
// the result may overflow, drawing clips it. Inputs are not validated, see
// FitImage.
func Fit(destinationWidth float64, destinationHeight float64, sourceWidth float64, sourceHeight float64) Placement {
	aspectRatio := sourceWidth / sourceHeight

	if aspectRatio < 1 {
		return fullHeight(destinationWidth, destinationHeight, aspectRatio)
	}
	return fullWidth(destinationWidth, destinationHeight, aspectRatio)
}

// FitInside is like Fit but never exceeds the destination: the branch is
// chosen by comparing against the destination aspect ratio instead of 1.
func FitInside(destinationWidth float64, destinationHeight float64, sourceWidth float64, sourceHeight float64) Placement {
	aspectRatio := sourceWidth / sourceHeight

	if aspectRatio < destinationWidth/destinationHeight {
		return fullHeight(destinationWidth, destinationHeight, aspectRatio)
	}
	return fullWidth(destinationWidth, destinationHeight, aspectRatio)
}

func fullHeight(destinationWidth float64, destinationHeight float64, aspectRatio float64) Placement {
	width := destinationHeight * aspectRatio
	return Placement{
		Width:  width,
		Height: destinationHeight,
		StartX: (destinationWidth - width) / 2,
		StartY: 0,
	}
}

func fullWidth(destinationWidth float64, destinationHeight float64, aspectRatio float64) Placement {
	height := destinationWidth / aspectRatio
	return Placement{
		Width:  destinationWidth,
		Height: height,
		StartX: 0,
		StartY: (destinationHeight - height) / 2,
	}
}

// FitImage is Fit for a decoded image. Empty sources return ErrInvalidImage.
func FitImage(destination Size, source image.Rectangle) (Placement, error) {
	if source.Dx() <= 0 || source.Dy() <= 0 {
		return Placement{}, fmt.Errorf("%w: source is %dx%d", ErrInvalidImage, source.Dx(), source.Dy())
	}
	return Fit(
		float64(destination.Width()), float64(destination.Height()),
		float64(source.Dx()), float64(source.Dy())), nil
}

// Rectangle rounds the placement to whole pixels for drawing.
func (s Placement) Rectangle() image.Rectangle {
	x := int(math.Round(s.StartX))
	y := int(math.Round(s.StartY))
	return image.Rect(x, y, x+int(math.Round(s.Width)), y+int(math.Round(s.Height)))
}

func (s Placement) String() string {
	return fmt.Sprintf("Placement{%.2fx%.2f at (%.2f, %.2f)}", s.Width, s.Height, s.StartX, s.StartY)
}
