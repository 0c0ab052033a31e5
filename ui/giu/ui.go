package gui

import (
	"errors"
	"sync"
	"time"

	"github.com/AllenDang/giu"
	"github.com/OpenDiablo2/dialog"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common"
	"vincit.fi/meme-generator/common/logger"
	"vincit.fi/meme-generator/ui/giu/widget"
)

const (
	windowPadding = 40
	controlsWidth = 480
	controlHeight = 110
	buttonWidth   = 120
	buttonHeight  = 24
)

type Ui struct {
	win        *giu.MasterWindow
	sender     api.Sender
	canvasSize apitype.Size
	imagePath  string

	// Guarded by mux. Widgets write these while the frame is built, so the
	// whole frame runs with mux held.
	canvasTexture *giu.Texture
	topText       string
	bottomText    string
	voices        []*apitype.Voice
	voiceLabels   []string
	selectedVoice int32
	volume        int32
	volumeLevel   apitype.VolumeLevel
	resetEnabled  bool
	readEnabled   bool
	mux           sync.Mutex

	api.Gui
}

func NewUi(params *common.Params, broker api.Sender) *Ui {
	canvasSize := apitype.SizeOf(params.CanvasWidth(), params.CanvasHeight())
	width := maxInt(canvasSize.Width(), controlsWidth) + windowPadding
	height := canvasSize.Height() + controlHeight + windowPadding

	return &Ui{
		win:         giu.NewMasterWindow("Meme Generator", width, height, 0),
		sender:      broker,
		canvasSize:  canvasSize,
		imagePath:   params.ImagePath(),
		volume:      apitype.SliderMax,
		volumeLevel: apitype.DefaultVolume,
	}
}

func (s *Ui) Run() {
	s.sender.SendToTopic(api.VoicesRequestRefresh)
	if s.imagePath != "" {
		s.sender.SendCommandToTopic(api.ImageSelected, &api.SelectImageCommand{Path: s.imagePath})
	}

	s.win.Run(func() {
		renderStart := time.Now()
		s.mux.Lock()
		giu.SingleWindow().Layout(s.layout()...)
		s.mux.Unlock()

		renderTime := time.Since(renderStart)
		if renderTime >= time.Millisecond && logger.IsLogLevel(logger.TRACE) {
			logger.Trace.Printf("Rendered UI in %s", renderTime)
		} else if renderTime >= 10*time.Millisecond {
			logger.Debug.Printf("Rendered UI in %s", renderTime)
		}
	})
}

func (s *Ui) layout() giu.Layout {
	openButton := giu.Button("Open image...").OnClick(s.openImage).Size(buttonWidth, buttonHeight)
	generateButton := giu.Button("Generate").OnClick(func() {
		s.sender.SendCommandToTopic(api.MemeGenerate, &api.CaptionCommand{Caption: s.caption()})
	}).Size(buttonWidth, buttonHeight)
	resetButton := giu.Button("Clear").OnClick(func() {
		s.sender.SendToTopic(api.MemeReset)
	}).Disabled(!s.resetEnabled).Size(buttonWidth, buttonHeight)
	readButton := giu.Button("Read text").OnClick(func() {
		s.sender.SendCommandToTopic(api.MemeReadAloud, &api.CaptionCommand{Caption: s.caption()})
	}).Disabled(!s.readEnabled).Size(buttonWidth, buttonHeight)

	voicePreview := ""
	if int(s.selectedVoice) < len(s.voiceLabels) {
		voicePreview = s.voiceLabels[s.selectedVoice]
	}
	voiceCombo := giu.Combo("##voice", voicePreview, s.voiceLabels, &s.selectedVoice).
		OnChange(s.voiceChanged).
		Size(260)
	volumeSlider := giu.SliderInt(&s.volume, apitype.SliderMin, apitype.SliderMax).
		Label("##volume").
		OnChange(func() {
			s.sender.SendCommandToTopic(api.VolumeChanged, &api.VolumeCommand{SliderValue: int(s.volume)})
		}).
		Size(120)

	return giu.Layout{
		giu.Row(
			openButton,
			giu.InputText(&s.topText).Hint("Top text").Size(160),
			giu.InputText(&s.bottomText).Hint("Bottom text").Size(160),
		),
		giu.Row(generateButton, resetButton, readButton),
		giu.Row(
			voiceCombo,
			widget.VolumeIcon(s.volumeLevel),
			volumeSlider,
		),
		giu.Separator(),
		widget.CanvasImage(s.canvasTexture, s.canvasSize),
		giu.PrepareMsgbox(),
	}
}

func (s *Ui) caption() apitype.Caption {
	return apitype.Caption{Top: s.topText, Bottom: s.bottomText}
}

// voiceChanged is called by the combo during the frame, with mux held.
func (s *Ui) voiceChanged() {
	if s.selectedVoice >= 0 && int(s.selectedVoice) < len(s.voices) {
		s.sender.SendCommandToTopic(api.VoiceSelected, &api.SelectVoiceCommand{
			Name: s.voices[s.selectedVoice].Name,
		})
	}
}

func (s *Ui) openImage() {
	go func() {
		path, err := dialog.File().
			Title("Select image").
			Filter("Images", "jpg", "jpeg", "png", "gif", "bmp", "tif", "tiff", "webp").
			Load()
		if errors.Is(err, dialog.ErrCancelled) {
			logger.Debug.Printf("Image selection cancelled")
			return
		} else if err != nil {
			s.sender.SendError("Could not select image", err)
			return
		}
		s.sender.SendCommandToTopic(api.ImageSelected, &api.SelectImageCommand{Path: path})
	}()
}

func (s *Ui) SetCanvas(command *api.UpdateCanvasCommand) {
	texture, err := giu.NewTextureFromRgba(command.Image)
	if err != nil {
		logger.Error.Print(err)
		return
	}
	s.mux.Lock()
	s.canvasTexture = texture
	s.mux.Unlock()
}

func (s *Ui) SetControls(command *api.UpdateControlsCommand) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.resetEnabled = command.ResetEnabled
	s.readEnabled = command.ReadEnabled
}

func (s *Ui) SetVolume(command *api.UpdateVolumeCommand) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.volumeLevel = command.Level
	logger.Trace.Printf("Volume icon '%s'", command.Level.IconName())
}

func (s *Ui) SetVoices(command *api.UpdateVoicesCommand) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.voices = command.Voices
	s.voiceLabels = make([]string, 0, len(command.Voices))
	s.selectedVoice = 0
	for i, voice := range command.Voices {
		s.voiceLabels = append(s.voiceLabels, voice.Label())
		if voice.Name == command.Selected {
			s.selectedVoice = int32(i)
		}
	}
}

func (s *Ui) ShowError(command *api.ErrorCommand) {
	logger.Error.Printf("Error: %s", command.Message)
	giu.Msgbox("Error", command.Message)
}

func maxInt(a int, b int) int {
	if a > b {
		return a
	}
	return b
}
