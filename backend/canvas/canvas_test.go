package canvas

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vincit.fi/meme-generator/api/apitype"
)

var red = color.RGBA{R: 255, A: 255}

func newTestCanvas(t *testing.T, width int, height int) *Canvas {
	captionFont, err := LoadFont("")
	require.Nil(t, err)
	return NewCanvas(apitype.SizeOf(width, height), captionFont, 30)
}

func solidImage(width int, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func isTransparent(c color.Color) bool {
	_, _, _, alpha := c.RGBA()
	return alpha == 0
}

func isBlack(c color.Color) bool {
	r, g, b, alpha := c.RGBA()
	return r == 0 && g == 0 && b == 0 && alpha == 0xffff
}

func countWhite(img *image.RGBA, area image.Rectangle) int {
	count := 0
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R > 200 && c.G > 200 && c.B > 200 {
				count++
			}
		}
	}
	return count
}

func TestNewCanvas_IsBlank(t *testing.T) {
	a := assert.New(t)
	canvas := newTestCanvas(t, 40, 30)

	snapshot := canvas.Snapshot()

	a.Equal(image.Rect(0, 0, 40, 30), snapshot.Bounds())
	a.True(isTransparent(snapshot.At(0, 0)))
	a.True(isTransparent(snapshot.At(39, 29)))
}

func TestCanvas_DrawImage_Portrait(t *testing.T) {
	a := assert.New(t)
	canvas := newTestCanvas(t, 400, 400)

	placement, err := canvas.DrawImage(solidImage(50, 200, red))
	require.Nil(t, err)

	a.Equal(apitype.Placement{Width: 100, Height: 400, StartX: 150, StartY: 0}, placement)
	snapshot := canvas.Snapshot()
	a.True(isBlack(snapshot.At(10, 200)), "left bar is black")
	a.True(isBlack(snapshot.At(390, 200)), "right bar is black")
	a.Equal(red, snapshot.RGBAAt(200, 200))
	a.Equal(red, snapshot.RGBAAt(151, 1))
}

func TestCanvas_DrawImage_Landscape(t *testing.T) {
	a := assert.New(t)
	canvas := newTestCanvas(t, 400, 400)

	placement, err := canvas.DrawImage(solidImage(400, 200, red))
	require.Nil(t, err)

	a.Equal(apitype.Placement{Width: 400, Height: 200, StartX: 0, StartY: 100}, placement)
	snapshot := canvas.Snapshot()
	a.True(isBlack(snapshot.At(200, 50)))
	a.True(isBlack(snapshot.At(200, 350)))
	a.Equal(red, snapshot.RGBAAt(200, 200))
}

func TestCanvas_DrawImage_SquareOnWideCanvasIsClipped(t *testing.T) {
	a := assert.New(t)
	canvas := newTestCanvas(t, 200, 100)

	placement, err := canvas.DrawImage(solidImage(50, 50, red))
	require.Nil(t, err)

	a.Equal(apitype.Placement{Width: 200, Height: 200, StartX: 0, StartY: -50}, placement)
	snapshot := canvas.Snapshot()
	a.Equal(image.Rect(0, 0, 200, 100), snapshot.Bounds())
	a.Equal(red, snapshot.RGBAAt(0, 0))
	a.Equal(red, snapshot.RGBAAt(199, 99))
}

func TestCanvas_DrawImage_InvalidImageKeepsSurface(t *testing.T) {
	a := assert.New(t)
	canvas := newTestCanvas(t, 100, 100)
	_, err := canvas.DrawImage(solidImage(10, 10, red))
	require.Nil(t, err)
	before := canvas.Snapshot()

	_, err = canvas.DrawImage(image.NewRGBA(image.Rect(0, 0, 0, 10)))

	a.True(errors.Is(err, apitype.ErrInvalidImage))
	a.Equal(before, canvas.Snapshot())
}

func TestCanvas_DrawCaption(t *testing.T) {
	a := assert.New(t)
	canvas := newTestCanvas(t, 400, 400)
	_, err := canvas.DrawImage(solidImage(400, 400, color.RGBA{B: 255, A: 255}))
	require.Nil(t, err)

	err = canvas.DrawCaption(apitype.Caption{Top: "HELLO", Bottom: "WORLD"})
	require.Nil(t, err)

	snapshot := canvas.Snapshot()
	a.Greater(countWhite(snapshot, image.Rect(0, 20, 400, 52)), 0, "top caption drawn")
	a.Greater(countWhite(snapshot, image.Rect(0, 360, 400, 392)), 0, "bottom caption drawn")
	a.Equal(0, countWhite(snapshot, image.Rect(0, 150, 400, 250)), "middle untouched")
}

func TestCanvas_DrawCaption_ReplacesPreviousCaption(t *testing.T) {
	a := assert.New(t)
	canvas := newTestCanvas(t, 200, 200)
	_, err := canvas.DrawImage(solidImage(100, 100, red))
	require.Nil(t, err)
	base := canvas.Snapshot()

	require.Nil(t, canvas.DrawCaption(apitype.Caption{Top: "FIRST", Bottom: "ONE"}))
	a.NotEqual(base, canvas.Snapshot())

	require.Nil(t, canvas.DrawCaption(apitype.Caption{}))
	a.Equal(base, canvas.Snapshot(), "empty caption leaves only the image")
}

func TestCanvas_DrawCaption_WithoutImage(t *testing.T) {
	a := assert.New(t)
	canvas := newTestCanvas(t, 200, 200)

	require.Nil(t, canvas.DrawCaption(apitype.Caption{Top: "ONLY TEXT"}))

	snapshot := canvas.Snapshot()
	a.True(isTransparent(snapshot.At(199, 199)))
	a.Greater(countWhite(snapshot, image.Rect(0, 20, 200, 52)), 0)
}

func TestCanvas_Clear(t *testing.T) {
	a := assert.New(t)
	canvas := newTestCanvas(t, 50, 50)
	_, err := canvas.DrawImage(solidImage(10, 10, red))
	require.Nil(t, err)

	canvas.Clear()

	snapshot := canvas.Snapshot()
	a.True(isTransparent(snapshot.At(0, 0)))
	a.True(isTransparent(snapshot.At(25, 25)))

	require.Nil(t, canvas.DrawCaption(apitype.Caption{}))
	a.True(isTransparent(canvas.Snapshot().At(25, 25)), "image is gone after clear")
}

func TestCanvas_SnapshotIsCopy(t *testing.T) {
	a := assert.New(t)
	canvas := newTestCanvas(t, 10, 10)

	snapshot := canvas.Snapshot()
	snapshot.Set(5, 5, red)

	a.True(isTransparent(canvas.Snapshot().At(5, 5)))
}

func TestLoadFont_MissingFile(t *testing.T) {
	_, err := LoadFont("/no/such/font.ttf")
	assert.NotNil(t, err)
}
