package api

import (
	"image"

	"vincit.fi/meme-generator/api/apitype"
)

type ErrorCommand struct {
	Message string
}

type SelectImageCommand struct {
	Path string
}

type CaptionCommand struct {
	Caption apitype.Caption
}

type VolumeCommand struct {
	SliderValue int
}

type SelectVoiceCommand struct {
	Name string
}

type UpdateCanvasCommand struct {
	Image *image.RGBA
}

type UpdateControlsCommand struct {
	ResetEnabled bool
	ReadEnabled  bool
}

type UpdateVolumeCommand struct {
	Level apitype.VolumeLevel
}

type UpdateVoicesCommand struct {
	Voices   []*apitype.Voice
	Selected string
}

type Gui interface {
	SetCanvas(*UpdateCanvasCommand)
	SetControls(*UpdateControlsCommand)
	SetVolume(*UpdateVolumeCommand)
	SetVoices(*UpdateVoicesCommand)
	ShowError(*ErrorCommand)
	Run()
}
