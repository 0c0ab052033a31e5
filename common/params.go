package common

import (
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultCanvasWidth  = 400
	defaultCanvasHeight = 400
	defaultFontSize     = 30
	defaultSpeechBinary = "espeak-ng"
	defaultLogLevel     = "INFO"
)

type Params struct {
	canvasWidth  int
	canvasHeight int
	fontPath     string
	fontSize     float64
	speechBinary string
	logLevel     string
	configPath   string
	imagePath    string
}

// settingsFile is the optional TOML file given with -config. Flags given on
// the command line win over values in the file.
type settingsFile struct {
	Canvas struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
	} `toml:"canvas"`
	Font struct {
		Path string  `toml:"path"`
		Size float64 `toml:"size"`
	} `toml:"font"`
	Speech struct {
		Binary string `toml:"binary"`
	} `toml:"speech"`
	LogLevel string `toml:"log_level"`
}

func NewEmptyParams() *Params {
	return &Params{
		canvasWidth:  defaultCanvasWidth,
		canvasHeight: defaultCanvasHeight,
		fontPath:     "",
		fontSize:     defaultFontSize,
		speechBinary: defaultSpeechBinary,
		logLevel:     defaultLogLevel,
		configPath:   "",
		imagePath:    "",
	}
}

func ParseParams() *Params {
	params, err := ParseParamsFrom(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return params
}

func ParseParamsFrom(args []string) (*Params, error) {
	flags := flag.NewFlagSet("meme-generator", flag.ContinueOnError)
	canvasWidth := flags.Int("width", defaultCanvasWidth, "Canvas width in pixels")
	canvasHeight := flags.Int("height", defaultCanvasHeight, "Canvas height in pixels")
	fontPath := flags.String("font", "", "TrueType font for captions. Uses Go Regular if empty")
	fontSize := flags.Float64("fontSize", defaultFontSize, "Caption font size in pixels")
	speechBinary := flags.String("speech", defaultSpeechBinary, "Speech synthesizer command (espeak-ng compatible)")
	logLevel := flags.String("logLevel", defaultLogLevel, "Log level: ERROR, WARN, INFO, DEBUG, Trace")
	configPath := flags.String("config", "", "Optional TOML settings file")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	params := &Params{
		canvasWidth:  *canvasWidth,
		canvasHeight: *canvasHeight,
		fontPath:     *fontPath,
		fontSize:     *fontSize,
		speechBinary: *speechBinary,
		logLevel:     *logLevel,
		configPath:   *configPath,
		imagePath:    flags.Arg(0),
	}

	if params.configPath != "" {
		explicit := map[string]bool{}
		flags.Visit(func(f *flag.Flag) {
			explicit[f.Name] = true
		})
		if err := params.applySettingsFile(params.configPath, explicit); err != nil {
			return nil, err
		}
	}

	if params.canvasWidth <= 0 || params.canvasHeight <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", params.canvasWidth, params.canvasHeight)
	}
	if params.fontSize <= 0 {
		return nil, fmt.Errorf("invalid font size %.1f", params.fontSize)
	}
	return params, nil
}

func (s *Params) applySettingsFile(path string, explicit map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read settings '%s': %w", path, err)
	}
	settings := settingsFile{}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("could not parse settings '%s': %w", path, err)
	}

	if settings.Canvas.Width != 0 && !explicit["width"] {
		s.canvasWidth = settings.Canvas.Width
	}
	if settings.Canvas.Height != 0 && !explicit["height"] {
		s.canvasHeight = settings.Canvas.Height
	}
	if settings.Font.Path != "" && !explicit["font"] {
		s.fontPath = settings.Font.Path
	}
	if settings.Font.Size != 0 && !explicit["fontSize"] {
		s.fontSize = settings.Font.Size
	}
	if settings.Speech.Binary != "" && !explicit["speech"] {
		s.speechBinary = settings.Speech.Binary
	}
	if settings.LogLevel != "" && !explicit["logLevel"] {
		s.logLevel = settings.LogLevel
	}
	return nil
}

func (s *Params) CanvasWidth() int {
	return s.canvasWidth
}

func (s *Params) CanvasHeight() int {
	return s.canvasHeight
}

func (s *Params) FontPath() string {
	return s.fontPath
}

func (s *Params) FontSize() float64 {
	return s.fontSize
}

func (s *Params) SpeechBinary() string {
	return s.speechBinary
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) ConfigPath() string {
	return s.configPath
}

// ImagePath is the optional image given as the first argument. It is opened
// on start up.
func (s *Params) ImagePath() string {
	return s.imagePath
}
