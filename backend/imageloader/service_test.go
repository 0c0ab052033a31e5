package imageloader

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
)

type MockSender struct {
	api.Sender
	mock.Mock
}

type MockImageLoader struct {
	api.ImageLoader
	mock.Mock
}

func (s *MockSender) SendToTopic(topic api.Topic) {
	s.Called(topic)
}

func (s *MockSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.Called(topic, command)
}

func (s *MockSender) SendError(message string, err error) {
	s.Called(message, err)
}

func (s *MockImageLoader) LoadImageScaled(path string, size apitype.Size) (image.Image, error) {
	args := s.Called(path, size)
	img, _ := args.Get(0).(image.Image)
	return img, args.Error(1)
}

func TestService_Request(t *testing.T) {
	a := assert.New(t)
	size := apitype.SizeOf(400, 400)
	decoded := image.NewRGBA(image.Rect(0, 0, 10, 20))

	done := make(chan *api.ImageDecodedCommand, 1)
	sender := new(MockSender)
	sender.On("SendCommandToTopic", api.ImageDecoded, mock.Anything).Run(func(args mock.Arguments) {
		done <- args.Get(1).(*api.ImageDecodedCommand)
	}).Return()
	loader := new(MockImageLoader)
	loader.On("LoadImageScaled", "/images/cat.png", size).Return(decoded, nil)

	service := NewImageService(sender, loader, size)
	requestId := service.Request("/images/cat.png")

	a.Equal(apitype.RequestId(1), requestId)
	a.Equal(requestId, service.Latest())
	select {
	case command := <-done:
		a.Equal(requestId, command.RequestId)
		a.Equal("cat.png", command.Name)
		a.Equal(image.Image(decoded), command.Image)
	case <-time.After(time.Second):
		a.Fail("decode result not sent")
	}
}

func TestService_RequestFailure(t *testing.T) {
	a := assert.New(t)
	size := apitype.SizeOf(400, 400)
	decodeErr := errors.New("unknown format")

	done := make(chan *api.ImageDecodeFailedCommand, 1)
	sender := new(MockSender)
	sender.On("SendCommandToTopic", api.ImageDecodeFailed, mock.Anything).Run(func(args mock.Arguments) {
		done <- args.Get(1).(*api.ImageDecodeFailedCommand)
	}).Return()
	loader := new(MockImageLoader)
	loader.On("LoadImageScaled", "broken.gif", size).Return(nil, decodeErr)

	service := NewImageService(sender, loader, size)
	requestId := service.Request("broken.gif")

	select {
	case command := <-done:
		a.Equal(requestId, command.RequestId)
		a.Equal("broken.gif", command.Path)
		a.Equal(decodeErr, command.Err)
	case <-time.After(time.Second):
		a.Fail("decode failure not sent")
	}
}

func TestService_RequestIdsIncrease(t *testing.T) {
	a := assert.New(t)
	size := apitype.SizeOf(1, 1)

	sender := new(MockSender)
	sender.On("SendCommandToTopic", mock.Anything, mock.Anything).Return()
	loader := new(MockImageLoader)
	loader.On("LoadImageScaled", mock.Anything, size).Return(nil, errors.New("nope"))

	service := NewImageService(sender, loader, size)
	first := service.Request("a.png")
	second := service.Request("b.png")
	third := service.Request("c.png")

	a.Less(uint64(first), uint64(second))
	a.Less(uint64(second), uint64(third))
	a.Equal(third, service.Latest())
}
