package backend

import (
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/backend/canvas"
	"vincit.fi/meme-generator/backend/imageloader"
	"vincit.fi/meme-generator/backend/page"
	"vincit.fi/meme-generator/backend/speech"
	"vincit.fi/meme-generator/common"
	"vincit.fi/meme-generator/common/event"
	"vincit.fi/meme-generator/common/logger"
)

type Services struct {
	ImageLoader  api.ImageLoader
	ImageService *imageloader.Service
	Canvas       *canvas.Canvas
	Synthesizer  api.Synthesizer
	Controller   *page.Controller
}

func InitializeEventBroker(eventBusQueueSize int) *event.Broker {
	logger.Debug.Printf("Initialize event broker...")
	broker := event.InitBus(eventBusQueueSize)
	logger.Debug.Printf("Event broker initialized")
	return broker
}

func InitializeServices(params *common.Params, broker *event.Broker) (*Services, error) {
	logger.Debug.Printf("Initialize services...")
	captionFont, err := canvas.LoadFont(params.FontPath())
	if err != nil {
		return nil, err
	}

	canvasSize := apitype.SizeOf(params.CanvasWidth(), params.CanvasHeight())
	imageLoader := imageloader.NewImageLoader()
	imageService := imageloader.NewImageService(broker, imageLoader, canvasSize)
	memeCanvas := canvas.NewCanvas(canvasSize, captionFont, params.FontSize())
	synthesizer := speech.NewCommandSynthesizer(params.SpeechBinary())

	services := &Services{
		ImageLoader:  imageLoader,
		ImageService: imageService,
		Canvas:       memeCanvas,
		Synthesizer:  synthesizer,
		Controller:   page.NewController(broker, imageService, memeCanvas, synthesizer),
	}
	logger.Debug.Printf("Services initialized")
	return services, nil
}

func ConnectBackend(broker *event.Broker, services *Services) {
	controller := services.Controller

	broker.Subscribe(api.ImageSelected, controller.ImageSelected)
	broker.Subscribe(api.ImageDecoded, controller.ImageDecoded)
	broker.Subscribe(api.ImageDecodeFailed, controller.ImageDecodeFailed)

	broker.Subscribe(api.MemeGenerate, controller.Generate)
	broker.Subscribe(api.MemeReset, controller.Reset)
	broker.Subscribe(api.MemeReadAloud, controller.ReadAloud)

	broker.Subscribe(api.VolumeChanged, controller.VolumeChanged)
	broker.Subscribe(api.VoicesRequestRefresh, controller.RefreshVoices)
	broker.Subscribe(api.VoiceSelected, controller.VoiceSelected)
}

func ConnectGui(broker *event.Broker, gui api.Gui) {
	broker.ConnectToGui(api.CanvasUpdated, gui.SetCanvas)
	broker.ConnectToGui(api.ControlsUpdated, gui.SetControls)
	broker.ConnectToGui(api.VolumeUpdated, gui.SetVolume)
	broker.ConnectToGui(api.VoicesUpdated, gui.SetVoices)
	broker.ConnectToGui(api.ShowError, gui.ShowError)
}
