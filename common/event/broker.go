package event

import (
	"fmt"
	"reflect"

	messagebus "github.com/vardius/message-bus"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

type Broker struct {
	bus        messagebus.MessageBus
	guiRefresh func()

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus:        messagebus.New(queueSize),
		guiRefresh: func() {},
	}
}

// SetGuiRefresh sets the function called after each GUI callback so that
// the window redraws with the new state.
func (s *Broker) SetGuiRefresh(refresh func()) {
	s.guiRefresh = refresh
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	err := s.bus.Subscribe(string(topic), fn)
	if err != nil {
		logger.Error.Panicf("Could not subscribe to '%s': %s", topic, err)
	}
}

func (s *Broker) ConnectToGui(topic api.Topic, callback interface{}) {
	cb := func(params ...interface{}) {
		args := make([]reflect.Value, 0, len(params))
		for _, param := range params {
			args = append(args, reflect.ValueOf(param))
		}
		logger.Trace.Printf("Calling topic '%s' with: %s", topic, params)
		reflect.ValueOf(callback).Call(args)
		s.guiRefresh()
	}
	err := s.bus.Subscribe(string(topic), cb)
	if err != nil {
		logger.Error.Panicf("Could not subscribe to '%s': %s", topic, err)
	}
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}
