package widget

import (
	"image"
	"image/color"

	"github.com/AllenDang/giu"
	"vincit.fi/meme-generator/api/apitype"
)

const (
	barWidth   = 4
	barSpacing = 2
	barStep    = 5
)

var (
	activeBarColor   = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	inactiveBarColor = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	mutedColor       = color.RGBA{R: 200, G: 40, B: 40, A: 255}
)

// VolumeIconWidget draws the volume level as three bars, crossed out when
// muted.
type VolumeIconWidget struct {
	level apitype.VolumeLevel
}

func VolumeIcon(level apitype.VolumeLevel) *VolumeIconWidget {
	return &VolumeIconWidget{level: level}
}

func (s *VolumeIconWidget) Build() {
	const bars = int(apitype.VolumeHigh)
	width := float32(bars*(barWidth+barSpacing) + barSpacing)
	height := float32(bars*barStep + barSpacing)

	pos := giu.GetCursorScreenPos()
	canvas := giu.GetCanvas()
	for i := 0; i < bars; i++ {
		barColor := inactiveBarColor
		if i < int(s.level) {
			barColor = activeBarColor
		}
		x := pos.X + barSpacing + i*(barWidth+barSpacing)
		top := pos.Y + int(height) - (i+1)*barStep
		canvas.AddRectFilled(
			image.Pt(x, top),
			image.Pt(x+barWidth, pos.Y+int(height)),
			barColor, 0, giu.DrawFlagsNone)
	}
	if s.level == apitype.VolumeMuted {
		canvas.AddLine(pos, pos.Add(image.Pt(int(width), int(height))), mutedColor, 2)
	}

	giu.Dummy(width, height).Build()
}
