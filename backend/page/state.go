package page

import (
	"vincit.fi/meme-generator/api/apitype"
)

// State is everything the page remembers during a session.
type State struct {
	volume        apitype.VolumeLevel
	voices        []*apitype.Voice
	selectedVoice *apitype.Voice
	caption       apitype.Caption
	imageName     string
	resetEnabled  bool
	readEnabled   bool
}

func NewState() *State {
	return &State{
		volume: apitype.DefaultVolume,
	}
}

func (s State) Volume() apitype.VolumeLevel {
	return s.volume
}

func (s State) Voices() []*apitype.Voice {
	return s.voices
}

func (s State) SelectedVoice() *apitype.Voice {
	return s.selectedVoice
}

func (s State) Caption() apitype.Caption {
	return s.caption
}

func (s State) ImageName() string {
	return s.imageName
}

func (s State) ResetEnabled() bool {
	return s.resetEnabled
}

func (s State) ReadEnabled() bool {
	return s.readEnabled
}

func (s State) selectedVoiceName() string {
	if s.selectedVoice == nil {
		return ""
	}
	return s.selectedVoice.Name
}
