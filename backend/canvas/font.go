package canvas

import (
	"fmt"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFont parses the TrueType font at path. An empty path gives the bundled
// Go Regular font.
func LoadFont(path string) (*truetype.Font, error) {
	fontBytes := goregular.TTF
	if path != "" {
		var err error
		if fontBytes, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", path, err)
		}
	}

	loadedFont, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return loadedFont, nil
}
