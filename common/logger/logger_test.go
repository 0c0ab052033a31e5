package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToLogLevel(t *testing.T) {
	a := assert.New(t)

	a.Equal(ERROR, StringToLogLevel("ERROR"))
	a.Equal(WARN, StringToLogLevel("warn"))
	a.Equal(DEBUG, StringToLogLevel("Debug"))
	a.Equal(TRACE, StringToLogLevel("trace"))
	a.Equal(INFO, StringToLogLevel("nonsense"))
}

func TestInitialize_WritesOnlyEnabledLevels(t *testing.T) {
	a := assert.New(t)
	defer initialize(ERROR, os.Stderr, os.Stdout)

	errBuf := &bytes.Buffer{}
	outBuf := &bytes.Buffer{}
	initialize(WARN, errBuf, outBuf)

	Error.Print("broken")
	Warn.Print("careful")
	Info.Print("hidden")
	Debug.Print("hidden")

	a.Contains(errBuf.String(), "ERROR: ")
	a.Contains(errBuf.String(), "broken")
	a.Contains(outBuf.String(), "careful")
	a.NotContains(outBuf.String(), "hidden")

	a.True(IsLogLevel(ERROR))
	a.True(IsLogLevel(WARN))
	a.False(IsLogLevel(INFO))
	a.False(IsLogLevel(TRACE))
}
