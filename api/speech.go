package api

import (
	"context"

	"vincit.fi/meme-generator/api/apitype"
)

type Utterance struct {
	Id     string
	Text   string
	Voice  *apitype.Voice
	Volume apitype.VolumeLevel
}

type Synthesizer interface {
	Voices(ctx context.Context) ([]*apitype.Voice, error)
	Speak(ctx context.Context, utterance *Utterance) error
}
