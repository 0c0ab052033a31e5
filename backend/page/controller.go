package page

import (
	"context"
	"errors"
	"sync"
	"time"

	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/backend/speech"
	"vincit.fi/meme-generator/common/logger"
)

var ErrNoVoiceSelected = errors.New("no voice selected")

const (
	speakTimeout  = 2 * time.Minute
	voicesTimeout = 15 * time.Second
)

// Controller handles the commands of the meme page. Handlers are called from
// broker goroutines so all state access is behind the mutex.
type Controller struct {
	sender      api.Sender
	images      api.ImageRequester
	canvas      api.Canvas
	synthesizer api.Synthesizer
	state       *State
	mux         sync.Mutex
	speaking    sync.WaitGroup
}

func NewController(sender api.Sender, images api.ImageRequester, canvas api.Canvas, synthesizer api.Synthesizer) *Controller {
	return &Controller{
		sender:      sender,
		images:      images,
		canvas:      canvas,
		synthesizer: synthesizer,
		state:       NewState(),
	}
}

func (s *Controller) ImageSelected(command *api.SelectImageCommand) {
	if command.Path == "" {
		logger.Debug.Printf("No image selected")
		return
	}
	s.images.Request(command.Path)
}

func (s *Controller) ImageDecoded(command *api.ImageDecodedCommand) {
	s.mux.Lock()
	if s.isStale(command.RequestId) {
		s.mux.Unlock()
		logger.Debug.Printf("Ignoring superseded image request %d", command.RequestId)
		return
	}
	placement, err := s.canvas.DrawImage(command.Image)
	if err == nil {
		s.state.imageName = command.Name
	}
	s.mux.Unlock()

	if err != nil {
		s.sender.SendError("Could not show image '"+command.Name+"'", err)
		return
	}
	logger.Info.Printf("Showing '%s' with %s", command.Name, placement)
	s.sendCanvas()
}

func (s *Controller) ImageDecodeFailed(command *api.ImageDecodeFailedCommand) {
	s.mux.Lock()
	stale := s.isStale(command.RequestId)
	s.mux.Unlock()

	if stale {
		logger.Debug.Printf("Ignoring failure of superseded image request %d", command.RequestId)
		return
	}
	s.sender.SendError("Could not open image '"+command.Path+"'", command.Err)
}

// isStale must be called with s.mux held so that a newer image can not be
// drawn between the check and the draw.
func (s *Controller) isStale(requestId apitype.RequestId) bool {
	return requestId < s.images.Latest()
}

func (s *Controller) Generate(command *api.CaptionCommand) {
	s.mux.Lock()
	if err := s.canvas.DrawCaption(command.Caption); err != nil {
		s.mux.Unlock()
		s.sender.SendError("Could not draw captions", err)
		return
	}
	s.state.caption = command.Caption
	s.state.resetEnabled = true
	s.state.readEnabled = true
	s.mux.Unlock()

	s.sendCanvas()
	s.sendControls()
}

func (s *Controller) Reset() {
	s.mux.Lock()
	s.canvas.Clear()
	s.state.imageName = ""
	s.state.resetEnabled = false
	s.state.readEnabled = false
	s.mux.Unlock()

	s.sendCanvas()
	s.sendControls()
}

// ReadAloud speaks the given captions in the background with the selected
// voice and current volume.
func (s *Controller) ReadAloud(command *api.CaptionCommand) {
	s.mux.Lock()
	if !s.state.readEnabled {
		s.mux.Unlock()
		logger.Debug.Printf("Read aloud is disabled")
		return
	}
	voice := s.state.selectedVoice
	volume := s.state.volume
	s.mux.Unlock()

	if voice == nil {
		s.sender.SendError("Could not read captions", ErrNoVoiceSelected)
		return
	}

	utterance := speech.NewUtterance(command.Caption.SpeechText(), voice, volume)
	s.speaking.Add(1)
	go func() {
		defer s.speaking.Done()
		ctx, cancel := context.WithTimeout(context.Background(), speakTimeout)
		defer cancel()
		if err := s.synthesizer.Speak(ctx, utterance); err != nil {
			s.sender.SendError("Could not read captions", err)
		}
	}()
}

func (s *Controller) VolumeChanged(command *api.VolumeCommand) {
	level := apitype.VolumeFromSlider(command.SliderValue)

	s.mux.Lock()
	s.state.volume = level
	s.mux.Unlock()

	logger.Debug.Printf("Volume %d: %s (%.2f)", command.SliderValue, level, level.Gain())
	s.sender.SendCommandToTopic(api.VolumeUpdated, &api.UpdateVolumeCommand{Level: level})
}

// RefreshVoices loads the voice list. Without a working synthesizer the
// list is empty.
func (s *Controller) RefreshVoices() {
	ctx, cancel := context.WithTimeout(context.Background(), voicesTimeout)
	defer cancel()

	voices, err := s.synthesizer.Voices(ctx)
	if err != nil {
		logger.Warn.Printf("No voices available: %s", err)
		voices = []*apitype.Voice{}
	}

	s.mux.Lock()
	s.state.voices = voices
	s.state.selectedVoice = apitype.DefaultVoice(voices)
	selected := s.state.selectedVoiceName()
	s.mux.Unlock()

	s.sender.SendCommandToTopic(api.VoicesUpdated, &api.UpdateVoicesCommand{
		Voices:   voices,
		Selected: selected,
	})
}

func (s *Controller) VoiceSelected(command *api.SelectVoiceCommand) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.state.selectedVoice = apitype.FindVoice(s.state.voices, command.Name)
	if s.state.selectedVoice == nil {
		logger.Warn.Printf("Unknown voice '%s'", command.Name)
	}
}

// State returns a copy of the current state.
func (s *Controller) State() State {
	s.mux.Lock()
	defer s.mux.Unlock()
	return *s.state
}

// Wait blocks until utterances started by ReadAloud have finished.
func (s *Controller) Wait() {
	s.speaking.Wait()
}

func (s *Controller) sendCanvas() {
	s.sender.SendCommandToTopic(api.CanvasUpdated, &api.UpdateCanvasCommand{Image: s.canvas.Snapshot()})
}

func (s *Controller) sendControls() {
	s.mux.Lock()
	command := &api.UpdateControlsCommand{
		ResetEnabled: s.state.resetEnabled,
		ReadEnabled:  s.state.readEnabled,
	}
	s.mux.Unlock()
	s.sender.SendCommandToTopic(api.ControlsUpdated, command)
}
