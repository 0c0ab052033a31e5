package imageloader

import (
	"path/filepath"
	"sync/atomic"

	"vincit.fi/meme-generator/api"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

// Service decodes selected images in the background. Every request gets a
// new id that is larger than any earlier one, so receivers can drop results
// of requests that were superseded while decoding.
type Service struct {
	sender      api.Sender
	imageLoader api.ImageLoader
	targetSize  apitype.Size
	latest      uint64

	api.ImageRequester
}

func NewImageService(sender api.Sender, imageLoader api.ImageLoader, targetSize apitype.Size) *Service {
	return &Service{
		sender:      sender,
		imageLoader: imageLoader,
		targetSize:  targetSize,
	}
}

func (s *Service) Request(path string) apitype.RequestId {
	requestId := apitype.RequestId(atomic.AddUint64(&s.latest, 1))
	logger.Debug.Printf("Image request %d: '%s'", requestId, path)

	go s.decode(requestId, path)
	return requestId
}

func (s *Service) Latest() apitype.RequestId {
	return apitype.RequestId(atomic.LoadUint64(&s.latest))
}

func (s *Service) decode(requestId apitype.RequestId, path string) {
	decoded, err := s.imageLoader.LoadImageScaled(path, s.targetSize)
	if err != nil {
		logger.Warn.Printf("Image request %d failed: %s", requestId, err)
		s.sender.SendCommandToTopic(api.ImageDecodeFailed, &api.ImageDecodeFailedCommand{
			RequestId: requestId,
			Path:      path,
			Err:       err,
		})
		return
	}

	s.sender.SendCommandToTopic(api.ImageDecoded, &api.ImageDecodedCommand{
		RequestId: requestId,
		Name:      filepath.Base(path),
		Image:     decoded,
	})
}
