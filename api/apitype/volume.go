package apitype

import "fmt"

type VolumeLevel int

const (
	VolumeMuted VolumeLevel = iota
	VolumeLow
	VolumeMedium
	VolumeHigh
)

const (
	SliderMin = 0
	SliderMax = 100

	DefaultVolume = VolumeHigh
)

var gains = map[VolumeLevel]float64{
	VolumeMuted:  0,
	VolumeLow:    0.33,
	VolumeMedium: 0.66,
	VolumeHigh:   1.0,
}

// VolumeFromSlider maps a 0-100 slider value to one of the four volume levels.
// Values outside of the range are clamped.
func VolumeFromSlider(value int) VolumeLevel {
	switch {
	case value <= SliderMin:
		return VolumeMuted
	case value <= 33:
		return VolumeLow
	case value <= 66:
		return VolumeMedium
	default:
		return VolumeHigh
	}
}

func (s VolumeLevel) Gain() float64 {
	return gains[s]
}

// IconName is the name of the icon shown next to the slider for the level
func (s VolumeLevel) IconName() string {
	return fmt.Sprintf("volume-level-%d", int(s))
}

func (s VolumeLevel) String() string {
	switch s {
	case VolumeMuted:
		return "Muted"
	case VolumeLow:
		return "Low"
	case VolumeMedium:
		return "Medium"
	case VolumeHigh:
		return "High"
	}
	return "UNKNOWN"
}
