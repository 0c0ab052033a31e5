package imageloader

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pixiv/go-libjpeg/jpeg"
	"vincit.fi/meme-generator/api/apitype"
	"vincit.fi/meme-generator/common/logger"
)

var options = &jpeg.DecoderOptions{}

func decodeImage(path string, size *apitype.Size) (image.Image, error) {
	if isJpeg(path) {
		if decoded, err := decodeJpeg(path, size); err == nil {
			return decoded, nil
		} else {
			logger.Debug.Printf("libjpeg could not decode '%s', falling back: %s", path, err)
		}
	}
	return imaging.Open(path)
}

func decodeJpeg(path string, size *apitype.Size) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoderOptions := options
	if size != nil {
		decoderOptions = &jpeg.DecoderOptions{ScaleTarget: size.Rectangle()}
	}
	return jpeg.Decode(file, decoderOptions)
}

func isJpeg(path string) bool {
	extension := strings.ToLower(filepath.Ext(path))
	return extension == ".jpg" || extension == ".jpeg"
}
