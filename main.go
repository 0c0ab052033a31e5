package main

import (
	"github.com/AllenDang/giu"
	"vincit.fi/meme-generator/backend"
	"vincit.fi/meme-generator/common"
	"vincit.fi/meme-generator/common/logger"
	gui "vincit.fi/meme-generator/ui/giu"
)

const eventBusQueueSize = 100

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))
	if configPath := params.ConfigPath(); configPath != "" {
		logger.Info.Printf("Using settings from '%s'", configPath)
	}

	broker := backend.InitializeEventBroker(eventBusQueueSize)
	services, err := backend.InitializeServices(params, broker)
	if err != nil {
		logger.Error.Fatal("Could not initialize: ", err)
	}
	backend.ConnectBackend(broker, services)

	ui := gui.NewUi(params, broker)
	broker.SetGuiRefresh(giu.Update)
	backend.ConnectGui(broker, ui)

	ui.Run()
}
