package canvas

import (
	"image"
	"image/draw"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

const (
	dpi              = 72.0
	captionX         = 10
	topBaseline      = 50
	bottomMargin     = 10
	outlineThickness = 2
)

var (
	backgroundColor = image.Black
	fillColor       = image.White
	outlineColor    = image.Black

	outlineOffsets = []image.Point{
		{-outlineThickness, -outlineThickness}, {0, -outlineThickness}, {outlineThickness, -outlineThickness},
		{-outlineThickness, 0}, {outlineThickness, 0},
		{-outlineThickness, outlineThickness}, {0, outlineThickness}, {outlineThickness, outlineThickness},
	}
)

// Canvas is the fixed size drawing surface. The base layer holds the black
// background and the fitted image; captions are drawn over a copy of it so
// that generating again replaces the previous captions.
type Canvas struct {
	size     apitype.Size
	font     *truetype.Font
	fontSize float64
	base     *image.RGBA
	surface  *image.RGBA
	mux      sync.Mutex

	api.Canvas
}

func NewCanvas(size apitype.Size, captionFont *truetype.Font, fontSize float64) *Canvas {
	return &Canvas{
		size:     size,
		font:     captionFont,
		fontSize: fontSize,
		base:     nil,
		surface:  image.NewRGBA(size.Rectangle()),
	}
}

func (s *Canvas) Size() apitype.Size {
	return s.size
}

func (s *Canvas) DrawImage(source image.Image) (apitype.Placement, error) {
	placement, err := apitype.FitImage(s.size, source.Bounds())
	if err != nil {
		return placement, err
	}

	base := image.NewRGBA(s.size.Rectangle())
	draw.Draw(base, base.Bounds(), backgroundColor, image.Point{}, draw.Src)

	target := placement.Rectangle()
	if target.Empty() {
		logger.Warn.Printf("Image too small to draw with %s", placement)
	} else {
		scaled := imaging.Resize(source, target.Dx(), target.Dy(), imaging.Lanczos)
		draw.Draw(base, target, scaled, scaled.Bounds().Min, draw.Over)
	}
	logger.Debug.Printf("Drew %dx%d image with %s", source.Bounds().Dx(), source.Bounds().Dy(), placement)

	s.mux.Lock()
	defer s.mux.Unlock()
	s.base = base
	s.surface = copyOf(base)
	return placement, nil
}

func (s *Canvas) DrawCaption(caption apitype.Caption) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	var surface *image.RGBA
	if s.base != nil {
		surface = copyOf(s.base)
	} else {
		surface = image.NewRGBA(s.size.Rectangle())
	}

	if caption.IsEmpty() {
		logger.Debug.Printf("No captions to draw")
		s.surface = surface
		return nil
	}

	c := freetype.NewContext()
	c.SetDPI(dpi)
	c.SetFont(s.font)
	c.SetFontSize(s.fontSize)
	c.SetClip(surface.Bounds())
	c.SetDst(surface)
	c.SetHinting(font.HintingFull)

	if err := drawOutlined(c, caption.Top, image.Pt(captionX, topBaseline)); err != nil {
		return err
	}
	if err := drawOutlined(c, caption.Bottom, image.Pt(captionX, s.size.Height()-bottomMargin)); err != nil {
		return err
	}

	s.surface = surface
	return nil
}

func drawOutlined(c *freetype.Context, text string, at image.Point) error {
	if text == "" {
		return nil
	}

	c.SetSrc(outlineColor)
	for _, offset := range outlineOffsets {
		target := at.Add(offset)
		if _, err := c.DrawString(text, freetype.Pt(target.X, target.Y)); err != nil {
			logger.Warn.Printf("Error drawing outline part at offset %v: %v", offset, err)
		}
	}

	c.SetSrc(fillColor)
	_, err := c.DrawString(text, freetype.Pt(at.X, at.Y))
	return err
}

// Clear empties the surface including the image.
func (s *Canvas) Clear() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.base = nil
	s.surface = image.NewRGBA(s.size.Rectangle())
}

func (s *Canvas) Snapshot() *image.RGBA {
	s.mux.Lock()
	defer s.mux.Unlock()
	return copyOf(s.surface)
}

func copyOf(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
