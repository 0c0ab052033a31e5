package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParamsFrom_Defaults(t *testing.T) {
	a := assert.New(t)

	params, err := ParseParamsFrom([]string{})

	require.Nil(t, err)
	a.Equal(400, params.CanvasWidth())
	a.Equal(400, params.CanvasHeight())
	a.Equal("", params.FontPath())
	a.Equal(30.0, params.FontSize())
	a.Equal("espeak-ng", params.SpeechBinary())
	a.Equal("INFO", params.LogLevel())
	a.Equal("", params.ImagePath())
	a.Equal("", params.ConfigPath())
}

func TestParseParamsFrom_Flags(t *testing.T) {
	a := assert.New(t)

	params, err := ParseParamsFrom([]string{"-width", "640", "-height", "480", "-logLevel", "DEBUG", "cat.jpg"})

	require.Nil(t, err)
	a.Equal(640, params.CanvasWidth())
	a.Equal(480, params.CanvasHeight())
	a.Equal("DEBUG", params.LogLevel())
	a.Equal("cat.jpg", params.ImagePath())
}

func TestParseParamsFrom_SettingsFile(t *testing.T) {
	a := assert.New(t)
	path := filepath.Join(t.TempDir(), "settings.toml")
	err := os.WriteFile(path, []byte(`
log_level = "TRACE"

[canvas]
width = 800
height = 600

[font]
path = "/usr/share/fonts/impact.ttf"
size = 42

[speech]
binary = "espeak"
`), 0644)
	require.Nil(t, err)

	params, err := ParseParamsFrom([]string{"-config", path, "-height", "300"})

	require.Nil(t, err)
	a.Equal(800, params.CanvasWidth())
	a.Equal(300, params.CanvasHeight(), "flag wins over the file")
	a.Equal("/usr/share/fonts/impact.ttf", params.FontPath())
	a.Equal(42.0, params.FontSize())
	a.Equal("espeak", params.SpeechBinary())
	a.Equal("TRACE", params.LogLevel())
	a.Equal(path, params.ConfigPath())
}

func TestParseParamsFrom_Errors(t *testing.T) {
	a := assert.New(t)

	_, err := ParseParamsFrom([]string{"-width", "0"})
	a.NotNil(err)

	_, err = ParseParamsFrom([]string{"-fontSize", "-1"})
	a.NotNil(err)

	_, err = ParseParamsFrom([]string{"-config", filepath.Join(t.TempDir(), "missing.toml")})
	a.NotNil(err)

	broken := filepath.Join(t.TempDir(), "broken.toml")
	require.Nil(t, os.WriteFile(broken, []byte("[canvas\nwidth="), 0644))
	_, err = ParseParamsFrom([]string{"-config", broken})
	a.NotNil(err)
}
